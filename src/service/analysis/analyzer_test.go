package analysis

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-bot/src/config"
	"review-bot/src/model"
	"review-bot/src/service/syntax"
)

func newPythonAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return NewAnalyzer(syntax.Python(), config.AnalysisConfig{})
}

func analyze(t *testing.T, a *Analyzer, src string) model.AnalysisResult {
	t.Helper()
	result, err := a.Analyze(context.Background(), src)
	require.NoError(t, err)
	return result
}

func TestAnalyze_SimpleCode(t *testing.T) {
	a := newPythonAnalyzer(t)

	result := analyze(t, a, "def hello():\n    return 1\n")

	require.False(t, result.Metrics.Degraded())
	assert.Equal(t, 1, result.Metrics.CyclomaticComplexity)
	assert.Equal(t, 0, result.Metrics.CognitiveComplexity)
	assert.Equal(t, 2, result.Metrics.LinesOfCode)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.PatternsFound)
}

func TestAnalyze_MetricsAlwaysInRange(t *testing.T) {
	a := newPythonAnalyzer(t)

	sources := []string{
		"x = 1\n",
		"# only a comment\nx = 1\n",
		"def f(a, b):\n    if a and b or not a:\n        return a\n    return b\n",
		"for i in range(10):\n    if i % 2 == 0:\n        x = i * i + 1\n",
	}

	for _, src := range sources {
		result := analyze(t, a, src)
		require.False(t, result.Metrics.Degraded(), "source: %q", src)
		assert.GreaterOrEqual(t, result.Metrics.CyclomaticComplexity, 1)
		assert.GreaterOrEqual(t, result.Metrics.MaintainabilityIndex, 0.0)
		assert.LessOrEqual(t, result.Metrics.MaintainabilityIndex, 100.0)
		assert.GreaterOrEqual(t, result.Metrics.CognitiveComplexity, 0)
	}
}

func TestAnalyze_InvalidSyntax(t *testing.T) {
	a := newPythonAnalyzer(t)

	result := analyze(t, a, "def broken(:\n    pass\n")

	// The degraded result is uniform: all sentinels, one error issue, no
	// pattern findings.
	assert.Equal(t, model.DegradedMetrics(), result.Metrics)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, model.SeverityError, result.Issues[0].Severity)
	assert.Equal(t, "invalid syntax", result.Issues[0].Message)
	assert.Zero(t, result.Issues[0].Line)
	assert.Empty(t, result.PatternsFound)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	a := newPythonAnalyzer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Cancellation is not a verdict on the input: it surfaces as an error,
	// never as the invalid-syntax degraded result.
	result, err := a.Analyze(ctx, "x = 1\n")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, result.Metrics.Degraded())
	assert.Empty(t, result.Issues)
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := newPythonAnalyzer(t)
	src := "import os\n\neval(\"x\")\nif a and b:\n    os.system(\"ls\")\n"

	first := analyze(t, a, src)
	second := analyze(t, a, src)

	assert.Equal(t, first, second)
}

func TestAnalyze_ComplexityThreshold(t *testing.T) {
	// 11 independent branches: cyclomatic 1 + 11 = 12, above the default
	// threshold of 10, so exactly one synthetic issue reports the value.
	var sb strings.Builder
	sb.WriteString("def check(x):\n")
	for i := 1; i <= 11; i++ {
		fmt.Fprintf(&sb, "    if x == %d:\n        x = %d\n", i, i)
	}

	a := newPythonAnalyzer(t)
	result := analyze(t, a, sb.String())

	assert.Equal(t, 12, result.Metrics.CyclomaticComplexity)
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, model.SeverityMedium, issue.Severity)
	assert.Equal(t, model.CategoryMaintainability, issue.Category)
	assert.Contains(t, issue.Message, "12")
	assert.Zero(t, issue.Line)
}

func TestAnalyze_ConfiguredThreshold(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("def check(x):\n")
	for i := 1; i <= 11; i++ {
		fmt.Fprintf(&sb, "    if x == %d:\n        x = %d\n", i, i)
	}

	a := NewAnalyzer(syntax.Python(), config.AnalysisConfig{ComplexityThreshold: 20})
	result := analyze(t, a, sb.String())

	assert.Equal(t, 12, result.Metrics.CyclomaticComplexity)
	assert.Empty(t, result.Issues)
}

func TestAnalyze_SecurityPatternOrdering(t *testing.T) {
	src := "import os\nx = 1\n\neval(\"x\")\nos.system(\"ls\")\n"

	a := newPythonAnalyzer(t)
	result := analyze(t, a, src)

	findings := result.PatternsFound[model.CategorySecurity]
	require.Len(t, findings, 2)
	assert.Equal(t, 4, findings[0].Line)
	assert.Equal(t, 5, findings[1].Line)

	require.Len(t, result.Issues, 2)
	for i, issue := range result.Issues {
		assert.Equal(t, model.SeverityHigh, issue.Severity, "issue %d", i)
		assert.Equal(t, model.CategorySecurity, issue.Category, "issue %d", i)
	}
	assert.Equal(t, 4, result.Issues[0].Line)
	assert.Equal(t, 5, result.Issues[1].Line)
}

func TestAnalyze_CognitiveDivergesOnNesting(t *testing.T) {
	a := newPythonAnalyzer(t)

	nested := "for i in items:\n    if a:\n        if b:\n            x = 1\n"
	flat := "for i in items:\n    x = 1\nif a:\n    x = 2\nif b:\n    x = 3\n"

	nestedResult := analyze(t, a, nested)
	flatResult := analyze(t, a, flat)

	// Same three decision points either way.
	assert.Equal(t, 4, nestedResult.Metrics.CyclomaticComplexity)
	assert.Equal(t, 4, flatResult.Metrics.CyclomaticComplexity)

	// Nesting is what separates the two metrics: 1 + 2 + 3 when nested,
	// 1 + 1 + 1 when flat.
	assert.Equal(t, 6, nestedResult.Metrics.CognitiveComplexity)
	assert.Equal(t, 3, flatResult.Metrics.CognitiveComplexity)
}

func TestAnalyze_BooleanCombinators(t *testing.T) {
	a := newPythonAnalyzer(t)

	// a and b and c collapses to two combinator nodes: +2 decisions.
	result := analyze(t, a, "y = a and b and c\n")

	assert.Equal(t, 3, result.Metrics.CyclomaticComplexity)
	assert.Equal(t, 0, result.Metrics.CognitiveComplexity)
}

func TestAnalyze_GoSource(t *testing.T) {
	a := NewAnalyzer(syntax.Go(), config.AnalysisConfig{})

	src := "package main\n\nfunc pick(a, b bool) int {\n\tif a && b {\n\t\treturn 1\n\t}\n\treturn 0\n}\n"
	result := analyze(t, a, src)

	require.False(t, result.Metrics.Degraded())
	// 1 baseline + if + &&.
	assert.Equal(t, 3, result.Metrics.CyclomaticComplexity)
	assert.Equal(t, 1, result.Metrics.CognitiveComplexity)
}
