package payroll

// TaxRate is the flat income tax withheld from taxable income.
const TaxRate = 0.13

const (
	FieldUnits     = "units"
	FieldRate      = "rate"
	FieldDeduction = "deduction"
	FieldBonus     = "bonus"

	WarningNegativeTaxable = "negative_taxable"
)
