package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/report"
	"github.com/iwvelando/interest-calculator/internal/session"
	"github.com/iwvelando/interest-calculator/pkg/output"
	"github.com/spf13/cobra"
)

func calculateCmd(app *application) *cobra.Command {
	var (
		form    calculator.Form
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate simple interest, compound interest or a monthly EMI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("kind") {
				form.Kind = app.conf.Defaults.Kind
			}
			return runCalculate(cmd.OutOrStdout(), app, app.conf.ApplyDefaults(form), pdfPath)
		},
	}

	cmd.Flags().StringVar(&form.Principal, "principal", "", "principal amount")
	cmd.Flags().StringVar(&form.Rate, "rate", "", "annual interest rate in percent")
	cmd.Flags().StringVar(&form.Time, "time", "", "duration in years")
	cmd.Flags().StringVar(&form.Currency, "currency", "", "currency symbol (₹, $, €, £)")
	cmd.Flags().StringVar(&form.Kind, "kind", "", "calculation type: Simple, Compound, EMI (default from configuration)")
	cmd.Flags().StringVar(&form.Frequency, "frequency", "", "compounding frequency: Annually, Semi-Annually, Quarterly, Monthly")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "export the result to this PDF path")
	return cmd
}

func runCalculate(w io.Writer, app *application, form calculator.Form, pdfPath string) error {
	sess := app.newSession()

	res, calcErr := sess.Calculate(form)
	if calcErr == nil {
		if err := output.Write(w, app.outputFormat, res); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "Error: %s\n", calcErr)
	}

	if pdfPath != "" {
		if err := exportSession(w, sess, pdfPath); err != nil {
			return err
		}
	}
	return calcErr
}

// exportSession writes the held result and reports the outcome on w. The
// no-result case is a warning and returns nil.
func exportSession(w io.Writer, sess *session.Session, path string) error {
	err := sess.Export(path)
	if errors.Is(err, session.ErrNoResult) {
		fmt.Fprintf(w, "Warning: %s\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Exported to %s\n", report.DocumentPath(path))
	return nil
}
