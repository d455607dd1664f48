package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"megone/internal/logging"
	"megone/internal/pdftext"
	"megone/internal/report"
	"megone/internal/tabular"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		input        string
		contactsPath string
		output       string
		period       string
		preview      int
	)

	cmd := &cobra.Command{
		Use:   "run <kind>",
		Short: "Run a reconciliation report",
		Long: "Run one reconciliation report. The kind selects the pipeline; " +
			"use `megone kinds` for the list and the inputs each one expects.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := report.ParseKind(args[0])
			if err != nil {
				return err
			}
			if input == "" {
				return fmt.Errorf("--input is required for %s", kind)
			}
			if output == "" {
				return fmt.Errorf("--output is required")
			}
			if kind.NeedsContacts() && contactsPath == "" {
				return fmt.Errorf("--contacts is required for %s", kind)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}

			// One writer per output file at a time.
			lockPath := output + ".lock"
			lock := flock.New(lockPath)
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("lock output %s: %w", output, err)
			}
			if !locked {
				return fmt.Errorf("another run is already writing %s", output)
			}
			defer func() {
				_ = lock.Unlock()
				_ = os.Remove(lockPath)
			}()

			sampler := logging.NewProgressSampler(0.05)
			runner := report.NewRunner(report.Options{
				Tables: tabular.XLSXStore{},
				Writer: tabular.XLSXStore{},
				Docs:   pdftext.Reader{},
				Log: report.LogFunc(func(message string) {
					logger.Info(message)
				}),
				Progress: report.ProgressFunc(func(fraction float64) {
					if sampler.ShouldLog(fraction) {
						logger.Info("progress", "fraction", fraction)
					}
				}),
				Logger:         logger,
				FuzzyThreshold: cfg.Matching.FuzzyThreshold,
				TasksDir:       cfg.Tasks.OutputDir,
				TasksExt:       cfg.Tasks.FileExtension,
			})

			start := time.Now()
			rows, err := runner.Run(cmd.Context(), report.Request{
				Kind:     kind,
				Input:    input,
				Contacts: contactsPath,
				Output:   output,
				Period:   period,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Report", "Rows", "Output", "Duration"},
				[][]string{{
					kind.String(),
					strconv.Itoa(rows),
					output,
					time.Since(start).Round(time.Millisecond).String(),
				}},
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight},
			))

			if preview > 0 {
				if err := printPreview(cmd, output, preview); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "PDF folder, PDF file, or base/origin spreadsheet")
	cmd.Flags().StringVar(&contactsPath, "contacts", "", "Contacts spreadsheet (code, name, contact, group)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output spreadsheet path")
	cmd.Flags().StringVar(&period, "period", "", "Accounting period MM/YYYY (DomBot_GMS only; empty uses the current month)")
	cmd.Flags().IntVar(&preview, "preview", 0, "Render the first N output rows after the run")
	return cmd
}

// printPreview reads the freshly written report back and renders its first
// n rows as a terminal table.
func printPreview(cmd *cobra.Command, path string, n int) error {
	written, err := tabular.XLSXStore{}.ReadTable(path)
	if err != nil {
		return fmt.Errorf("read output for preview: %w", err)
	}
	rows := make([][]string, 0, n)
	for i, row := range written.Rows {
		if i >= n {
			break
		}
		cells := make([]string, len(written.Header))
		for j := range written.Header {
			cells[j] = row.At(j).String()
		}
		rows = append(rows, cells)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(written.Header, rows, nil))
	return nil
}
