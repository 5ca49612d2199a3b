// Package report renders review reports to their output formats.
package report

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"review-bot/src/config"
	"review-bot/src/model"
	"review-bot/src/util"
)

const toolInfoURI = "https://github.com/armchr/review-bot"

// Generator generates reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate generates a report in the specified format
func (g *Generator) Generate(report *model.ReviewReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d files)", format, report.FilesReviewed)
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report), nil
	case "html":
		return g.generateHTML(report), nil
	case "sarif":
		return g.generateSARIF(report)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.ReviewReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(report *model.ReviewReport) string {
	var sb strings.Builder

	sb.WriteString("# Code Review Report\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Files Reviewed:** %d\n", report.FilesReviewed))
	sb.WriteString(fmt.Sprintf("- **Total Issues:** %d\n", report.Summary.TotalIssues))
	sb.WriteString(fmt.Sprintf("- **Quality Score:** %.1f/100\n\n", report.Summary.QualityScore))

	sb.WriteString("### Issues by Severity\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, sev := range []model.Severity{model.SeverityError, model.SeverityHigh, model.SeverityMedium, model.SeverityLow} {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, report.Summary.BySeverity[sev]))
	}
	sb.WriteString("\n")

	sb.WriteString("### Issues by Category\n\n")
	sb.WriteString("| Category | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, cat := range model.Categories {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", cat, report.Summary.ByCategory[cat]))
	}
	sb.WriteString("\n")

	if len(report.Summary.HotspotFiles) > 0 {
		sb.WriteString("### Hotspot Files\n\n")
		sb.WriteString("| File | Issue Count |\n")
		sb.WriteString("|------|-------------|\n")
		for _, hs := range report.Summary.HotspotFiles {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", hs.FilePath, hs.IssueCount))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Files\n\n")
	for _, file := range report.Files {
		sb.WriteString(fmt.Sprintf("### %s\n\n", file.Path))

		if g.cfg.IncludeMetrics {
			g.writeMetrics(&sb, file.Result.Metrics)
		}

		if len(file.Result.Issues) > 0 {
			sb.WriteString("#### Issues\n\n")
			for _, issue := range file.Result.Issues {
				if issue.Line > 0 {
					sb.WriteString(fmt.Sprintf("- [%s] Line %d: %s\n", issue.Severity, issue.Line, issue.Message))
				} else {
					sb.WriteString(fmt.Sprintf("- [%s] %s\n", issue.Severity, issue.Message))
				}
			}
			sb.WriteString("\n")
		}

		if g.cfg.IncludePatterns && len(file.Result.PatternsFound) > 0 {
			sb.WriteString("#### Pattern Findings\n\n")
			for _, cat := range model.Categories {
				for _, finding := range file.Result.PatternsFound[cat] {
					sb.WriteString(fmt.Sprintf("- %s: line %d: %s\n", cat, finding.Line, finding.Description))
				}
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (g *Generator) writeMetrics(sb *strings.Builder, m model.Metrics) {
	sb.WriteString("#### Metrics\n\n")
	sb.WriteString("```\n")
	if m.Degraded() {
		sb.WriteString("unparseable: all metrics unavailable\n")
	} else {
		sb.WriteString(fmt.Sprintf("cyclomatic_complexity: %d\n", m.CyclomaticComplexity))
		sb.WriteString(fmt.Sprintf("cognitive_complexity: %d\n", m.CognitiveComplexity))
		sb.WriteString(fmt.Sprintf("maintainability_index: %.1f\n", m.MaintainabilityIndex))
		sb.WriteString(fmt.Sprintf("lines_of_code: %d\n", m.LinesOfCode))
		sb.WriteString(fmt.Sprintf("comment_ratio: %.2f\n", m.CommentRatio))
	}
	sb.WriteString("```\n\n")
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Code Review Report</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; max-width: 1200px; margin: 0 auto; padding: 20px; }
h1 { color: #2c3e50; border-bottom: 2px solid #eee; }
h2 { color: #34495e; margin-top: 30px; }
h3 { color: #7f8c8d; }
pre { background: #f8f9fa; padding: 15px; border-radius: 5px; }
</style>
</head>
<body>
<pre>%s</pre>
</body>
</html>
`

// generateHTML wraps the markdown rendering in a minimal standalone page.
func (g *Generator) generateHTML(report *model.ReviewReport) string {
	return fmt.Sprintf(htmlTemplate, html.EscapeString(g.generateMarkdown(report)))
}

func (g *Generator) generateSARIF(report *model.ReviewReport) (string, error) {
	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return "", fmt.Errorf("creating SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("review-bot", toolInfoURI)

	for _, file := range report.Files {
		for _, issue := range file.Result.Issues {
			ruleID := "review-bot/" + string(issue.Category)
			if issue.Category == "" {
				ruleID = "review-bot/parse"
			}

			run.AddRule(ruleID).
				WithDescription(string(issue.Category)).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: sarifLevel(issue.Severity),
				})

			region := sarif.NewRegion()
			if issue.Line > 0 {
				region = region.WithStartLine(issue.Line)
			} else {
				region = region.WithStartLine(1)
			}

			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(file.Path)).
					WithRegion(region),
			)

			result := sarif.NewRuleResult(ruleID).
				WithMessage(sarif.NewTextMessage(issue.Message)).
				WithLevel(sarifLevel(issue.Severity)).
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}

	sarifReport.AddRun(run)

	var sb strings.Builder
	if err := sarifReport.PrettyWrite(&sb); err != nil {
		return "", fmt.Errorf("writing SARIF report: %w", err)
	}
	return sb.String(), nil
}

func sarifLevel(s model.Severity) string {
	switch s {
	case model.SeverityError, model.SeverityHigh:
		return "error"
	case model.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
