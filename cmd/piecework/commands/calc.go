package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"piecework/internal/domain/payroll"
)

// calc --units N --rate R [--deduction D] [--bonus B] [--pdf FILE]
func calcCmd() *cobra.Command {
	var (
		in      payroll.WageInput
		pdfPath string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a piecework wage and print the breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := payroll.NewService(nil, 0)

			var (
				result payroll.WageResult
				report []byte
				err    error
			)
			if pdfPath != "" {
				result, report, err = svc.Report(cmd.Context(), in)
			} else {
				result, err = svc.Calculate(cmd.Context(), in)
			}
			if err != nil {
				return fmt.Errorf("invalid values: %w", err)
			}

			if err := printResult(cmd, result); err != nil {
				return err
			}
			if pdfPath != "" {
				if err := os.WriteFile(pdfPath, report, 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", pdfPath)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&in.Units, payroll.FieldUnits, 0, "units produced")
	cmd.Flags().Float64Var(&in.Rate, payroll.FieldRate, 0, "payment per unit")
	cmd.Flags().Float64Var(&in.Deduction, payroll.FieldDeduction, 0, "deduction")
	cmd.Flags().Float64Var(&in.Bonus, payroll.FieldBonus, 0, "bonus")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the PDF report to this file")
	_ = cmd.MarkFlagRequired(payroll.FieldUnits)
	_ = cmd.MarkFlagRequired(payroll.FieldRate)
	return cmd
}

func printResult(cmd *cobra.Command, result payroll.WageResult) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range payroll.ReportRows(result) {
		fmt.Fprintf(tw, "%s\t%.2f\t\n", row.Label, row.Amount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if result.HasWarning(payroll.WarningNegativeTaxable) {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: deduction exceeds gross salary plus bonus; net salary is negative")
	}
	return nil
}
