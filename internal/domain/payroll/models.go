package payroll

import (
	"fmt"
	"math"
)

// WageInput is one submitted piecework calculation. Deduction and Bonus default to zero.
type WageInput struct {
	Units     float64 `json:"units"`
	Rate      float64 `json:"rate"`
	Deduction float64 `json:"deduction"`
	Bonus     float64 `json:"bonus"`
}

type WageResult struct {
	Units     float64  `json:"units"`
	Rate      float64  `json:"rate"`
	Gross     float64  `json:"gross"`
	Bonus     float64  `json:"bonus"`
	Deduction float64  `json:"deduction"`
	Taxable   float64  `json:"taxable"`
	TaxRate   float64  `json:"taxRate"`
	Tax       float64  `json:"tax"`
	Net       float64  `json:"net"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Validate rejects the whole input if any field is not a finite, non-negative number.
func (in WageInput) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{FieldUnits, in.Units},
		{FieldRate, in.Rate},
		{FieldDeduction, in.Deduction},
		{FieldBonus, in.Bonus},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s: %w", f.name, ErrNotNumeric)
		}
		if f.value < 0 {
			return fmt.Errorf("%s: %w", f.name, ErrNegativeValue)
		}
	}
	return nil
}

func (r WageResult) HasWarning(code string) bool {
	for _, w := range r.Warnings {
		if w == code {
			return true
		}
	}
	return false
}
