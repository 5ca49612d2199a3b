package model

// Severity represents the severity level of an issue
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"

	// SeverityError marks the single issue attached to a degraded result;
	// it is never emitted for a successfully parsed file.
	SeverityError Severity = "error"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe)
func SeverityRank(s Severity) int {
	switch s {
	case SeverityError:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Category represents the category of a pattern rule or issue
type Category string

const (
	CategorySecurity        Category = "security"
	CategoryPerformance     Category = "performance"
	CategoryMaintainability Category = "maintainability"
)

// Categories lists all categories in catalog-declaration order.
// Issue ordering and report sections rely on this order.
var Categories = []Category{
	CategorySecurity,
	CategoryPerformance,
	CategoryMaintainability,
}

// Finding is a single pattern match located by 1-based line number.
// The category is carried by the PatternsFound map key.
type Finding struct {
	Line        int    `json:"line"`
	Description string `json:"description"`
}

// Metrics contains the structural quality metrics for one source file.
// All fields are -1 when the file could not be parsed; a mix of real and
// sentinel values never occurs.
type Metrics struct {
	CyclomaticComplexity int     `json:"cyclomatic_complexity"`
	MaintainabilityIndex float64 `json:"maintainability_index"`
	CognitiveComplexity  int     `json:"cognitive_complexity"`
	LinesOfCode          int     `json:"lines_of_code"`
	CommentRatio         float64 `json:"comment_ratio"`
}

// DegradedMetrics returns the uniform sentinel metrics for unparseable input
func DegradedMetrics() Metrics {
	return Metrics{
		CyclomaticComplexity: -1,
		MaintainabilityIndex: -1,
		CognitiveComplexity:  -1,
		LinesOfCode:          -1,
		CommentRatio:         -1,
	}
}

// Degraded reports whether the metrics carry the parse-failure sentinel
func (m Metrics) Degraded() bool {
	return m.CyclomaticComplexity == -1
}

// Issue is a single actionable problem derived from a pattern finding or a
// metric threshold. Line 0 means the issue applies to the whole file.
type Issue struct {
	Line     int      `json:"line,omitempty"`
	Category Category `json:"category,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// AnalysisResult is the complete output of analyzing one source file.
// It is a plain value owned by the caller; the engine keeps no reference
// to it and no state between calls.
type AnalysisResult struct {
	Metrics       Metrics                `json:"metrics"`
	Issues        []Issue                `json:"issues"`
	PatternsFound map[Category][]Finding `json:"patterns_found"`
}
