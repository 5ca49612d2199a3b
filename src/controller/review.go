package controller

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"sync"
	"time"

	"review-bot/src/config"
	"review-bot/src/model"
	"review-bot/src/service/analysis"
	"review-bot/src/service/syntax"
	"review-bot/src/util"
)

// ReviewController orchestrates the review of a set of files. Each file is
// an independent unit of work: a degraded result for one file never affects
// its siblings.
type ReviewController struct {
	cfg *config.Config
}

// NewReviewController creates a new review controller
func NewReviewController(cfg *config.Config) *ReviewController {
	return &ReviewController{cfg: cfg}
}

// ReviewRequest represents a request to review a list of files
type ReviewRequest struct {
	Paths    []string
	Language string // Optional: overrides per-file extension detection
}

// Review analyzes every requested file and assembles the report. Files are
// analyzed in parallel up to the configured limit; report ordering follows
// the request ordering regardless of completion order.
func (c *ReviewController) Review(ctx context.Context, req ReviewRequest) (*model.ReviewReport, error) {
	startTime := time.Now()
	util.Info("Starting review of %d files", len(req.Paths))

	exclusions := util.NewExclusionMatcher(c.cfg.Exclusions)

	var paths []string
	for _, path := range req.Paths {
		if exclusions.Matches(path) {
			util.Debug("Skipping excluded file: %s", path)
			continue
		}
		paths = append(paths, path)
	}

	maxParallel := c.cfg.Concurrency.MaxParallelFiles
	if maxParallel <= 0 {
		maxParallel = 1
	}

	var (
		reviews = make([]model.FileReview, len(paths))
		wg      sync.WaitGroup
		errChan = make(chan error, len(paths))
		sem     = make(chan struct{}, maxParallel)
	)

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			review, err := c.reviewFile(ctx, path, req.Language)
			if err != nil {
				errChan <- err
				return
			}
			reviews[i] = review
		}(i, path)
	}

	wg.Wait()
	close(errChan)

	if err, ok := <-errChan; ok {
		util.Error("Review aborted: %v", err)
		return nil, err
	}

	report := &model.ReviewReport{
		GeneratedAt:   time.Now().UTC(),
		FilesReviewed: len(reviews),
		Files:         reviews,
		Summary:       c.generateSummary(reviews),
	}

	util.Info("Review complete: %d files, %d issues, quality score %.1f (took %v)",
		len(reviews), report.Summary.TotalIssues, report.Summary.QualityScore, time.Since(startTime))

	return report, nil
}

// reviewFile reads one file, resolves its language, and runs the engine.
// Read, language-resolution, and cancellation failures are real errors;
// malformed source is not, it degrades instead.
func (c *ReviewController) reviewFile(ctx context.Context, path, forcedLanguage string) (model.FileReview, error) {
	lang, err := c.resolveLanguage(path, forcedLanguage)
	if err != nil {
		return model.FileReview{}, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return model.FileReview{}, fmt.Errorf("reading %s: %w", path, err)
	}

	analyzer := analysis.NewAnalyzer(lang, c.cfg.Analysis)
	result, err := analyzer.Analyze(ctx, string(source))
	if err != nil {
		return model.FileReview{}, fmt.Errorf("analyzing %s: %w", path, err)
	}

	if result.Metrics.Degraded() {
		util.Warn("File %s could not be parsed; reporting degraded result", path)
	} else {
		util.Debug("Analyzed %s: CC=%d, MI=%.1f, %d issues",
			path, result.Metrics.CyclomaticComplexity,
			result.Metrics.MaintainabilityIndex, len(result.Issues))
	}

	return model.FileReview{
		Path:     path,
		Language: lang.Name,
		Result:   result,
	}, nil
}

func (c *ReviewController) resolveLanguage(path, forced string) (*syntax.Language, error) {
	if forced != "" {
		return syntax.ForName(forced)
	}
	lang, err := syntax.ForPath(path)
	if err != nil && c.cfg.Analysis.DefaultLanguage != "" {
		return syntax.ForName(c.cfg.Analysis.DefaultLanguage)
	}
	return lang, err
}

func (c *ReviewController) generateSummary(reviews []model.FileReview) model.ReportSummary {
	bySeverity := make(map[model.Severity]int)
	byCategory := make(map[model.Category]int)
	byFile := make(map[string]int)
	total := 0

	for _, review := range reviews {
		for _, issue := range review.Result.Issues {
			total++
			bySeverity[issue.Severity]++
			if issue.Category != "" {
				byCategory[issue.Category]++
			}
			byFile[review.Path]++
		}
	}

	return model.ReportSummary{
		TotalIssues:  total,
		BySeverity:   bySeverity,
		ByCategory:   byCategory,
		HotspotFiles: c.findHotspots(byFile),
		QualityScore: c.calculateQualityScore(reviews),
	}
}

func (c *ReviewController) findHotspots(byFile map[string]int) []model.FileHotspot {
	hotspots := make([]model.FileHotspot, 0, len(byFile))
	for path, count := range byFile {
		hotspots = append(hotspots, model.FileHotspot{FilePath: path, IssueCount: count})
	}

	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].IssueCount != hotspots[j].IssueCount {
			return hotspots[i].IssueCount > hotspots[j].IssueCount
		}
		return hotspots[i].FilePath < hotspots[j].FilePath
	})

	topN := c.cfg.Output.HotspotsTopN
	if topN <= 0 || topN > len(hotspots) {
		topN = len(hotspots)
	}
	return hotspots[:topN]
}

// calculateQualityScore produces a [0,100] score: 100 minus a weighted
// penalty per issue, with unparseable files weighing heaviest.
func (c *ReviewController) calculateQualityScore(reviews []model.FileReview) float64 {
	if len(reviews) == 0 {
		return 100
	}

	weights := map[model.Severity]float64{
		model.SeverityLow:    1,
		model.SeverityMedium: 3,
		model.SeverityHigh:   7,
		model.SeverityError:  15,
	}

	var penalty float64
	for _, review := range reviews {
		for _, issue := range review.Result.Issues {
			penalty += weights[issue.Severity]
		}
	}

	score := 100 - penalty/float64(len(reviews))
	return math.Min(100, math.Max(0, score))
}
