package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const ReportFilename = "report.pdf"

type ReportRow struct {
	Label  string
	Amount float64
}

// ReportRows lists the lines of a wage breakdown in display order.
func ReportRows(result WageResult) []ReportRow {
	return []ReportRow{
		{"Units produced", result.Units},
		{"Rate per unit", result.Rate},
		{"Gross salary", result.Gross},
		{"Bonus", result.Bonus},
		{"Deduction", result.Deduction},
		{"Taxable income", result.Taxable},
		{fmt.Sprintf("Tax (%.0f%%)", result.TaxRate*100), result.Tax},
		{"Net salary", result.Net},
	}
}

// RenderReport draws result as a two-column table on a single A4 page and returns the PDF bytes.
func RenderReport(result WageResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Piecework wage report", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Piecework wage report")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 9, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 9, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	rows := ReportRows(result)
	for i, row := range rows {
		if i == len(rows)-1 {
			pdf.SetFont("Helvetica", "B", 12)
		}
		pdf.CellFormat(100, 8, row.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, fmt.Sprintf("%.2f", row.Amount), "1", 1, "R", false, 0, "")
	}

	if result.HasWarning(WarningNegativeTaxable) {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(160, 6, "Deduction exceeds gross salary plus bonus: taxable income and net salary are negative.", "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
