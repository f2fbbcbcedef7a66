package payroll

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateWithoutBonusOrDeduction(t *testing.T) {
	result := Calculate(WageInput{Units: 10, Rate: 100})
	if result.Gross != 1000 {
		t.Fatalf("expected gross 1000, got %v", result.Gross)
	}
	if !almostEqual(result.Tax, 130) {
		t.Fatalf("expected tax 130, got %v", result.Tax)
	}
	if !almostEqual(result.Net, 870) {
		t.Fatalf("expected net 870, got %v", result.Net)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestCalculateWithBonusAndDeduction(t *testing.T) {
	result := Calculate(WageInput{Units: 5, Rate: 200, Deduction: 50, Bonus: 100})
	if result.Gross != 1000 {
		t.Fatalf("expected gross 1000, got %v", result.Gross)
	}
	if result.Taxable != 1050 {
		t.Fatalf("expected taxable 1050, got %v", result.Taxable)
	}
	if !almostEqual(result.Tax, 136.5) {
		t.Fatalf("expected tax 136.5, got %v", result.Tax)
	}
	if !almostEqual(result.Net, 913.5) {
		t.Fatalf("expected net 913.5, got %v", result.Net)
	}
	if result.Bonus != 100 || result.Deduction != 50 {
		t.Fatalf("expected bonus and deduction echoed, got %+v", result)
	}
}

func TestCalculateFormulaHolds(t *testing.T) {
	cases := []WageInput{
		{Units: 0, Rate: 0},
		{Units: 1, Rate: 0.5},
		{Units: 37, Rate: 12.75, Bonus: 3.3},
		{Units: 1250, Rate: 7.1, Deduction: 410.25, Bonus: 99},
		{Units: 0.5, Rate: 1e6, Deduction: 1},
	}
	for _, in := range cases {
		result := Calculate(in)
		if result.Gross != in.Units*in.Rate {
			t.Fatalf("%+v: gross %v != units*rate", in, result.Gross)
		}
		taxable := result.Gross + in.Bonus - in.Deduction
		if result.Taxable != taxable {
			t.Fatalf("%+v: taxable %v != %v", in, result.Taxable, taxable)
		}
		if result.Tax != taxable*TaxRate {
			t.Fatalf("%+v: tax %v != %v", in, result.Tax, taxable*TaxRate)
		}
		if result.Net != result.Taxable-result.Tax {
			t.Fatalf("%+v: net %v != taxable-tax", in, result.Net)
		}
		if result.TaxRate != TaxRate {
			t.Fatalf("expected tax rate %v, got %v", TaxRate, result.TaxRate)
		}
	}
}

func TestCalculateNegativeTaxableIsFlagged(t *testing.T) {
	result := Calculate(WageInput{Units: 1, Rate: 100, Deduction: 300})
	if result.Taxable != -200 {
		t.Fatalf("expected taxable -200, got %v", result.Taxable)
	}
	if result.Net >= 0 {
		t.Fatalf("expected negative net, got %v", result.Net)
	}
	if !result.HasWarning(WarningNegativeTaxable) {
		t.Fatalf("expected %s warning, got %v", WarningNegativeTaxable, result.Warnings)
	}
}

func TestValidateRejectsNegativeFields(t *testing.T) {
	cases := map[string]WageInput{
		FieldUnits:     {Units: -1, Rate: 1},
		FieldRate:      {Units: 1, Rate: -0.01},
		FieldDeduction: {Units: 1, Rate: 1, Deduction: -5},
		FieldBonus:     {Units: 1, Rate: 1, Bonus: -5},
	}
	for field, in := range cases {
		err := in.Validate()
		if !errors.Is(err, ErrNegativeValue) {
			t.Fatalf("%s: expected ErrNegativeValue, got %v", field, err)
		}
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	for _, in := range []WageInput{
		{Units: math.NaN(), Rate: 1},
		{Units: 1, Rate: math.Inf(1)},
		{Units: 1, Rate: 1, Bonus: math.Inf(-1)},
	} {
		if err := in.Validate(); !errors.Is(err, ErrNotNumeric) {
			t.Fatalf("%+v: expected ErrNotNumeric, got %v", in, err)
		}
	}
}

func TestValidateAcceptsZero(t *testing.T) {
	if err := (WageInput{}).Validate(); err != nil {
		t.Fatalf("expected zero input to be valid, got %v", err)
	}
}
