package shared

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"piecework/internal/domain/payroll"
)

type validationIssue struct {
	field string
	err   error
}

// Validator collects every field problem of a submission before the caller rejects it.
type Validator struct {
	issues []validationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]validationIssue, 0, 4)}
}

func (v *Validator) add(field string, err error) {
	if v == nil || err == nil {
		return
	}
	v.issues = append(v.issues, validationIssue{
		field: strings.TrimSpace(field),
		err:   err,
	})
}

// Number parses raw as a finite, non-negative decimal real. A blank optional field yields 0.
// Thousands separators, decimal commas and hex-float literals are rejected.
func (v *Validator) Number(field, raw string, required bool) float64 {
	value := strings.TrimSpace(raw)
	if value == "" {
		if required {
			v.add(field, payroll.ErrNotNumeric)
		}
		return 0
	}
	if strings.ContainsAny(value, "xX,_") {
		v.add(field, payroll.ErrNotNumeric)
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		v.add(field, payroll.ErrNotNumeric)
		return 0
	}
	if parsed < 0 {
		v.add(field, payroll.ErrNegativeValue)
		return 0
	}
	return parsed
}

func (v *Validator) hasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) sortedIssues() []validationIssue {
	out := make([]validationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].field < out[j].field
	})
	return out
}

// Err joins all issues into one error that still matches the payroll sentinels via errors.Is.
func (v *Validator) Err() error {
	if !v.hasIssues() {
		return nil
	}
	errs := make([]error, 0, len(v.issues))
	for _, issue := range v.sortedIssues() {
		errs = append(errs, fmt.Errorf("%s: %w", issue.field, issue.err))
	}
	return errors.Join(errs...)
}
