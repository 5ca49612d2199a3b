package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"review-bot/src/config"
	"review-bot/src/model"
	"review-bot/src/service/report"
	"review-bot/src/util"
)

// ReportController handles report generation and writing
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports writes reports in all configured formats and returns the
// output paths.
func (c *ReportController) GenerateReports(reviewReport *model.ReviewReport) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	generator := report.NewGenerator(c.cfg.Output)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		output, err := generator.Generate(reviewReport, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(reviewReport.GeneratedAt, format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			return nil, fmt.Errorf("writing report to %s: %w", outputPath, err)
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string
func (c *ReportController) GenerateToString(reviewReport *model.ReviewReport, format string) (string, error) {
	generator := report.NewGenerator(c.cfg.Output)
	return generator.Generate(reviewReport, format)
}

func (c *ReportController) getOutputPath(generatedAt time.Time, format string) string {
	ext := format
	switch format {
	case "markdown":
		ext = "md"
	}

	filename := fmt.Sprintf("code_review_%s.%s", generatedAt.Format("20060102_150405"), ext)
	return filepath.Join(c.cfg.Output.OutputDir, filename)
}
