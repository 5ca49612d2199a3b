package analysis

import (
	"math"
	"regexp"
	"strings"

	"review-bot/src/model"
	"review-bot/src/service/syntax"
)

var (
	operatorChars    = regexp.MustCompile(`[+\-*/%=<>!&|^~]`)
	identifierTokens = regexp.MustCompile(`\b[a-zA-Z_]\w*\b`)
)

// calculateMetrics computes all metrics for a successfully parsed file.
// It is a pure function of the tree and the raw text.
func calculateMetrics(tree *syntax.Tree, source string, lang *syntax.Language) model.Metrics {
	cyclomatic := cyclomaticComplexity(tree)
	loc, commentRatio := lineMetrics(source, lang.CommentMarker)

	return model.Metrics{
		CyclomaticComplexity: cyclomatic,
		MaintainabilityIndex: maintainabilityIndex(source, cyclomatic, loc, commentRatio),
		CognitiveComplexity:  cognitiveComplexity(tree),
		LinesOfCode:          loc,
		CommentRatio:         commentRatio,
	}
}

// cyclomaticComplexity counts decision points plus one. The metric is a
// tree-wide sum, so traversal order does not matter. Boolean combinators
// add one decision per operand beyond the first.
func cyclomaticComplexity(tree *syntax.Tree) int {
	complexity := 1
	tree.Walk(func(n *syntax.Node) {
		switch n.Category {
		case syntax.Branch, syntax.Loop, syntax.ExceptionHandler,
			syntax.ScopeEntry, syntax.Assertion:
			complexity++
		case syntax.BooleanCombinator:
			if n.Operands > 1 {
				complexity += n.Operands - 1
			}
		}
	}, nil)
	return complexity
}

// cognitiveComplexity is the nesting-weighted variant: each branch, loop, or
// exception handler costs 1 plus the nesting depth it sits at, and deepens
// the nesting for its own subtree. Scope entries and boolean combinators do
// not contribute.
func cognitiveComplexity(tree *syntax.Tree) int {
	total := 0
	nesting := 0

	nests := func(n *syntax.Node) bool {
		switch n.Category {
		case syntax.Branch, syntax.Loop, syntax.ExceptionHandler:
			return true
		}
		return false
	}

	tree.Walk(
		func(n *syntax.Node) {
			if nests(n) {
				total += 1 + nesting
				nesting++
			}
		},
		func(n *syntax.Node) {
			if nests(n) {
				nesting--
			}
		},
	)

	return total
}

// maintainabilityIndex approximates the classic MI on a [0,100] scale.
// Halstead volume is approximated from distinct operator characters and
// distinct identifier-shaped tokens; it is floored at 1 so the logarithm
// argument can never be zero.
func maintainabilityIndex(source string, cyclomatic, loc int, commentRatio float64) float64 {
	uniqueOperators := distinctMatches(operatorChars, source)
	uniqueOperands := distinctMatches(identifierTokens, source)

	logLOC := math.Log(math.Max(float64(loc), 1))
	volume := float64(uniqueOperators+uniqueOperands) * logLOC
	if volume < 1 {
		volume = 1
	}

	mi := 171 - 5.2*math.Log(volume) - 0.23*float64(cyclomatic)
	mi += 50 * commentRatio

	return math.Min(100, math.Max(0, mi))
}

// lineMetrics counts non-blank lines and the fraction of them that are
// single-line comments for the language's marker.
func lineMetrics(source, commentMarker string) (loc int, commentRatio float64) {
	comments := 0
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		loc++
		if strings.HasPrefix(trimmed, commentMarker) {
			comments++
		}
	}
	if loc > 0 {
		commentRatio = float64(comments) / float64(loc)
	}
	return loc, commentRatio
}

func distinctMatches(re *regexp.Regexp, source string) int {
	seen := make(map[string]struct{})
	for _, m := range re.FindAllString(source, -1) {
		seen[m] = struct{}{}
	}
	return len(seen)
}
