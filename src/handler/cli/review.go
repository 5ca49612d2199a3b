package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"review-bot/src/controller"
	"review-bot/src/util"
)

func (h *Handler) reviewCmd() *cobra.Command {
	var (
		language  string
		outputDir string
		format    string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "review [files...]",
		Short: "Review source files for quality issues",
		Long:  "Runs static analysis on the listed files and generates a report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			util.Info("Reviewing %d files (timeout: %v)", len(args), timeout)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			reviewCtrl := controller.NewReviewController(h.cfg)
			report, err := reviewCtrl.Review(ctx, controller.ReviewRequest{
				Paths:    args,
				Language: language,
			})
			if err != nil {
				util.Error("Review failed: %v", err)
				return fmt.Errorf("review failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(report)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "json"
				}

				output, err := reportCtrl.GenerateToString(report, outputFormat)
				if err != nil {
					data, _ := json.MarshalIndent(report, "", "  ")
					fmt.Println(string(data))
				} else {
					fmt.Println(output)
				}
			}

			fmt.Fprintf(os.Stderr, "\nReview complete:\n")
			fmt.Fprintf(os.Stderr, "  Files reviewed: %d\n", report.FilesReviewed)
			fmt.Fprintf(os.Stderr, "  Total issues: %d\n", report.Summary.TotalIssues)
			fmt.Fprintf(os.Stderr, "  Quality score: %.1f/100\n", report.Summary.QualityScore)

			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Force source language (python, go)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, html, sarif)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 2*time.Minute, "Review timeout")

	return cmd
}
