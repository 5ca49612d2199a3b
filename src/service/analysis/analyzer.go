// Package analysis implements the static code-quality engine: structural
// metrics from the syntax tree, regex-based risk pattern findings from the
// raw text, and the merged, severity-ranked issue list.
package analysis

import (
	"context"
	"errors"

	"review-bot/src/config"
	"review-bot/src/model"
	"review-bot/src/service/syntax"
)

// Analyzer analyzes source text for one language. It holds only immutable
// state (the language definition and the shared pattern catalog), so a
// single Analyzer may be used from multiple goroutines.
type Analyzer struct {
	lang      *syntax.Language
	catalog   []PatternRule
	threshold int
}

// NewAnalyzer creates an analyzer for the given language
func NewAnalyzer(lang *syntax.Language, cfg config.AnalysisConfig) *Analyzer {
	threshold := cfg.ComplexityThreshold
	if threshold <= 0 {
		threshold = DefaultComplexityThreshold
	}
	return &Analyzer{
		lang:      lang,
		catalog:   CatalogFor(lang),
		threshold: threshold,
	}
}

// Language returns the analyzer's language name
func (a *Analyzer) Language() string {
	return a.lang.Name
}

// Analyze runs the full engine over one file's source text. Malformed
// source yields the degraded result, never an error; the error return is
// reserved for context cancellation, which says nothing about the input.
// Two calls with identical input produce identical results. Metrics and
// pattern scanning are independent of each other; only the issue list
// depends on both.
func (a *Analyzer) Analyze(ctx context.Context, source string) (model.AnalysisResult, error) {
	tree, err := syntax.Parse(ctx, a.lang, []byte(source))
	switch {
	case errors.Is(err, syntax.ErrInvalidSyntax):
		return degradedResult(), nil
	case err != nil:
		return model.AnalysisResult{}, err
	}

	metrics := calculateMetrics(tree, source, a.lang)
	found := findPatterns(a.catalog, source)

	return model.AnalysisResult{
		Metrics:       metrics,
		Issues:        collectIssues(found, metrics.CyclomaticComplexity, a.threshold),
		PatternsFound: found,
	}, nil
}
