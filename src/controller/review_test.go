package controller

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-bot/src/config"
	"review-bot/src/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReview_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.py", "def add(a, b):\n    return a + b\n")
	risky := writeFile(t, dir, "risky.py", "eval(\"data\")\n")
	broken := writeFile(t, dir, "broken.py", "def broken(:\n    pass\n")

	ctrl := NewReviewController(config.DefaultConfig())
	report, err := ctrl.Review(context.Background(), ReviewRequest{
		Paths: []string{clean, risky, broken},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, report.FilesReviewed)

	// Report ordering follows request ordering regardless of which
	// goroutine finished first.
	require.Len(t, report.Files, 3)
	assert.Equal(t, clean, report.Files[0].Path)
	assert.Equal(t, risky, report.Files[1].Path)
	assert.Equal(t, broken, report.Files[2].Path)

	assert.Empty(t, report.Files[0].Result.Issues)
	require.Len(t, report.Files[1].Result.Issues, 1)
	assert.Equal(t, model.SeverityHigh, report.Files[1].Result.Issues[0].Severity)

	// The unparseable sibling degrades alone.
	assert.True(t, report.Files[2].Result.Metrics.Degraded())
	assert.False(t, report.Files[1].Result.Metrics.Degraded())

	assert.Equal(t, 2, report.Summary.TotalIssues)
	assert.Equal(t, 1, report.Summary.BySeverity[model.SeverityHigh])
	assert.Equal(t, 1, report.Summary.BySeverity[model.SeverityError])
}

func TestReview_ExcludesConfiguredPatterns(t *testing.T) {
	dir := t.TempDir()
	code := writeFile(t, dir, "main.py", "x = 1\n")
	notes := writeFile(t, dir, "notes.md", "# notes\n")

	ctrl := NewReviewController(config.DefaultConfig())
	report, err := ctrl.Review(context.Background(), ReviewRequest{
		Paths: []string{code, notes},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.FilesReviewed)
	assert.Equal(t, code, report.Files[0].Path)
}

func TestReview_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "script.xyz", "x = 1\n")

	ctrl := NewReviewController(config.DefaultConfig())
	_, err := ctrl.Review(context.Background(), ReviewRequest{Paths: []string{path}})

	assert.Error(t, err)
}

func TestReview_DefaultLanguageFallback(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "script.xyz", "x = 1\n")

	cfg := config.DefaultConfig()
	cfg.Analysis.DefaultLanguage = "python"

	ctrl := NewReviewController(cfg)
	report, err := ctrl.Review(context.Background(), ReviewRequest{Paths: []string{path}})

	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "python", report.Files[0].Language)
}

func TestReview_ForcedLanguage(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "snippet.py", "package main\n\nfunc main() {}\n")

	ctrl := NewReviewController(config.DefaultConfig())
	report, err := ctrl.Review(context.Background(), ReviewRequest{
		Paths:    []string{path},
		Language: "go",
	})

	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "go", report.Files[0].Language)
	assert.False(t, report.Files[0].Result.Metrics.Degraded())
}

func TestReview_MissingFile(t *testing.T) {
	ctrl := NewReviewController(config.DefaultConfig())
	_, err := ctrl.Review(context.Background(), ReviewRequest{
		Paths: []string{filepath.Join(t.TempDir(), "nope.py")},
	})

	assert.Error(t, err)
}

func TestReview_QualityScore(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.py", "x = 1\n")

	ctrl := NewReviewController(config.DefaultConfig())
	report, err := ctrl.Review(context.Background(), ReviewRequest{Paths: []string{clean}})

	require.NoError(t, err)
	assert.Equal(t, 100.0, report.Summary.QualityScore)
}

func TestReview_Hotspots(t *testing.T) {
	dir := t.TempDir()
	noisy := writeFile(t, dir, "noisy.py", "eval(\"a\")\nos.system(\"ls\")\n")
	quiet := writeFile(t, dir, "quiet.py", "x = 1\n")

	ctrl := NewReviewController(config.DefaultConfig())
	report, err := ctrl.Review(context.Background(), ReviewRequest{Paths: []string{quiet, noisy}})

	require.NoError(t, err)
	require.NotEmpty(t, report.Summary.HotspotFiles)
	assert.Equal(t, noisy, report.Summary.HotspotFiles[0].FilePath)
	assert.Equal(t, 2, report.Summary.HotspotFiles[0].IssueCount)
}
