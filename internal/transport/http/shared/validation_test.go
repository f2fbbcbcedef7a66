package shared

import (
	"errors"
	"testing"

	"piecework/internal/domain/payroll"
)

func TestNumberParsesValues(t *testing.T) {
	cases := map[string]float64{
		"10":      10,
		" 2.5 ":   2.5,
		"1e3":     1000,
		"0":       0,
		"12.75":   12.75,
		"0.00001": 0.00001,
	}
	for raw, want := range cases {
		v := NewValidator()
		got := v.Number("units", raw, true)
		if err := v.Err(); err != nil {
			t.Fatalf("%q: unexpected error %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", raw, want, got)
		}
	}
}

func TestNumberOptionalBlankDefaultsToZero(t *testing.T) {
	v := NewValidator()
	if got := v.Number("bonus", "  ", false); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if err := v.Err(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNumberRejections(t *testing.T) {
	cases := []struct {
		raw      string
		required bool
		want     error
	}{
		{"abc", true, payroll.ErrNotNumeric},
		{"", true, payroll.ErrNotNumeric},
		{"NaN", false, payroll.ErrNotNumeric},
		{"Inf", false, payroll.ErrNotNumeric},
		{"1.5.2", false, payroll.ErrNotNumeric},
		{"1,000", true, payroll.ErrNotNumeric},
		{"2,500", true, payroll.ErrNotNumeric},
		{"12,75", true, payroll.ErrNotNumeric},
		{"0x1p-2", true, payroll.ErrNotNumeric},
		{"0X10", true, payroll.ErrNotNumeric},
		{"1_000", true, payroll.ErrNotNumeric},
		{"-1", true, payroll.ErrNegativeValue},
		{"-0.01", false, payroll.ErrNegativeValue},
	}
	for _, tc := range cases {
		v := NewValidator()
		if got := v.Number("rate", tc.raw, tc.required); got != 0 {
			t.Fatalf("%q: expected 0 on rejection, got %v", tc.raw, got)
		}
		if !errors.Is(v.Err(), tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.raw, tc.want, v.Err())
		}
	}
}

func TestIssuesSortedByField(t *testing.T) {
	v := NewValidator()
	v.Number("units", "x", true)
	v.Number("bonus", "-3", false)
	issues := v.sortedIssues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].field != "bonus" || issues[1].field != "units" {
		t.Fatalf("unexpected order %+v", issues)
	}
	if !errors.Is(v.Err(), payroll.ErrNegativeValue) || !errors.Is(v.Err(), payroll.ErrNotNumeric) {
		t.Fatalf("expected joined error to match both kinds, got %v", v.Err())
	}
}

func TestNilValidator(t *testing.T) {
	var v *Validator
	if v.hasIssues() || v.Err() != nil {
		t.Fatal("expected nil validator to report nothing")
	}
}
