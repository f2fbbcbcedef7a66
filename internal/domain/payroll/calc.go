package payroll

// Calculate assumes in has already passed Validate. A deduction larger than gross plus bonus
// yields negative taxable income, tax and net; the result is flagged but not clamped.
func Calculate(in WageInput) WageResult {
	gross := in.Units * in.Rate
	taxable := gross + in.Bonus - in.Deduction
	tax := taxable * TaxRate
	net := taxable - tax

	result := WageResult{
		Units:     in.Units,
		Rate:      in.Rate,
		Gross:     gross,
		Bonus:     in.Bonus,
		Deduction: in.Deduction,
		Taxable:   taxable,
		TaxRate:   TaxRate,
		Tax:       tax,
		Net:       net,
	}
	if taxable < 0 {
		result.Warnings = append(result.Warnings, WarningNegativeTaxable)
	}
	return result
}
