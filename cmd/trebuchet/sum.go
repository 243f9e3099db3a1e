package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/curtis3389/advent-2023/pkg/total"
)

type sumJSON struct {
	Total    uint32             `json:"total"`
	Lines    int                `json:"lines"`
	Parsed   int                `json:"parsed"`
	Skipped  int                `json:"skipped"`
	Results  []total.LineResult `json:"results,omitempty"`
	Failures []sumFailureJSON   `json:"failures,omitempty"`
}

type sumFailureJSON struct {
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Error string `json:"error"`
}

func newSumJSON(r *total.Report) sumJSON {
	out := sumJSON{
		Total:   r.Total,
		Lines:   r.Lines,
		Parsed:  r.Parsed,
		Skipped: r.Skipped,
		Results: r.Results,
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, sumFailureJSON{
			Line:  f.Line,
			Text:  f.Text,
			Error: f.Err.Error(),
		})
	}
	return out
}

func NewSumCommand() *cobra.Command {
	var (
		flags   sumFlags
		verbose bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:     "sum <file>",
		GroupID: gBasic,
		Short:   "Print the sum of the calibration values of every line",
		Long: `Print the sum of the calibration values of every line of a file.

Use "-" as the file to read from standard input. By default the first line
without a calibration value aborts the run and nothing is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			opts.Record = verbose || asJSON

			report, err := sumInput(cmd.InOrStdin(), args[0], opts)
			if report == nil {
				return fmt.Errorf("failed to sum %s: %w", args[0], err)
			}
			logrus.WithFields(logrus.Fields{
				"lines":   report.Lines,
				"parsed":  report.Parsed,
				"skipped": report.Skipped,
				"failed":  len(report.Failures),
			}).Debug("summed input")

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				b, jerr := json.MarshalIndent(newSumJSON(report), "", "  ")
				if jerr != nil {
					return fmt.Errorf("failed to encode report: %w", jerr)
				}
				fmt.Fprintln(out, string(b))
			case verbose:
				printReport(out, report)
			default:
				fmt.Fprintln(out, report.Total)
			}

			if err != nil {
				// Only collected line failures come back with a report.
				if !asJSON {
					printFailures(cmd.ErrOrStderr(), report.Failures)
				}
				return fmt.Errorf("%d of %d lines failed: %w", len(report.Failures), report.Lines, total.ErrLinesFailed)
			}
			return nil
		},
	}

	flags.register(cmd)
	f := cmd.Flags()
	f.BoolVarP(&verbose, "verbose", "v", false, "print the value of every line before the total")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.MarkFlagsMutuallyExclusive("verbose", "json")

	return cmd
}

func printReport(w io.Writer, r *total.Report) {
	for _, res := range r.Results {
		fmt.Fprintf(w, "%5d  %s  %s\n", res.Line, color.New(color.Bold, color.FgGreen).Sprintf("%02d", res.Value), res.Text)
	}
	fmt.Fprintf(w, "Lines: %d  Parsed: %d  Skipped: %d  Failed: %d\n", r.Lines, r.Parsed, r.Skipped, len(r.Failures))
	fmt.Fprintf(w, "Total: %s\n", bold("%d", r.Total))
}

func printFailures(w io.Writer, failures []*total.LineError) {
	for _, f := range failures {
		fmt.Fprintf(w, "%5d  %s  %q: %v\n", f.Line, color.RedString("--"), f.Text, f.Err)
	}
}
