package model

import "time"

// FileReview contains the analysis of a single reviewed file
type FileReview struct {
	Path     string         `json:"path"`
	Language string         `json:"language"`
	Result   AnalysisResult `json:"result"`
}

// ReviewReport represents the complete review output for a set of files
type ReviewReport struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	FilesReviewed int           `json:"files_reviewed"`
	Files         []FileReview  `json:"files"`
	Summary       ReportSummary `json:"summary"`
}

// ReportSummary contains aggregated statistics across all reviewed files
type ReportSummary struct {
	TotalIssues  int              `json:"total_issues"`
	BySeverity   map[Severity]int `json:"by_severity"`
	ByCategory   map[Category]int `json:"by_category"`
	HotspotFiles []FileHotspot    `json:"hotspot_files"`
	QualityScore float64          `json:"quality_score"`
}

// FileHotspot represents a file with many issues
type FileHotspot struct {
	FilePath   string `json:"file_path"`
	IssueCount int    `json:"issue_count"`
}
