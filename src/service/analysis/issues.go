package analysis

import (
	"fmt"

	"review-bot/src/model"
)

// DefaultComplexityThreshold is the cyclomatic complexity above which a
// synthetic maintainability issue is emitted.
const DefaultComplexityThreshold = 10

// collectIssues merges pattern findings and the complexity threshold check
// into the ordered issue list. Pattern issues come first, grouped by
// category in catalog-declaration order with matches in document order;
// security findings rank high, everything else medium. A single synthetic
// issue is appended when the cyclomatic complexity exceeds the threshold,
// regardless of by how much.
func collectIssues(found map[model.Category][]model.Finding, cyclomatic, threshold int) []model.Issue {
	var issues []model.Issue

	for _, category := range model.Categories {
		severity := model.SeverityMedium
		if category == model.CategorySecurity {
			severity = model.SeverityHigh
		}
		for _, finding := range found[category] {
			issues = append(issues, model.Issue{
				Line:     finding.Line,
				Category: category,
				Severity: severity,
				Message:  finding.Description,
			})
		}
	}

	if cyclomatic > threshold {
		issues = append(issues, model.Issue{
			Category: model.CategoryMaintainability,
			Severity: model.SeverityMedium,
			Message:  fmt.Sprintf("High cyclomatic complexity: %d", cyclomatic),
		})
	}

	return issues
}

// degradedResult is the uniform result for unparseable source: sentinel
// metrics, exactly one error-severity issue with no line, and an empty
// findings map.
func degradedResult() model.AnalysisResult {
	return model.AnalysisResult{
		Metrics: model.DegradedMetrics(),
		Issues: []model.Issue{{
			Severity: model.SeverityError,
			Message:  "invalid syntax",
		}},
		PatternsFound: map[model.Category][]model.Finding{},
	}
}
