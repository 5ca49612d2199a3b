package analysis

import (
	"regexp"
	"strings"

	"review-bot/src/model"
	"review-bot/src/service/syntax"
)

// PatternRule is a single text-level risk check. Rules are intentionally
// shallow regex heuristics, not semantic analysis.
type PatternRule struct {
	Category    model.Category
	Name        string
	Regex       *regexp.Regexp
	Description string
}

// The catalogs are process-wide read-only tables built once at init and
// never mutated. Rules within a category keep their declaration order;
// findings within a rule keep document order.
var pythonCatalog = []PatternRule{
	{
		Category:    model.CategorySecurity,
		Name:        "eval-exec",
		Regex:       regexp.MustCompile(`(eval|exec)\s*\(`),
		Description: "Use of eval() or exec()",
	},
	{
		Category:    model.CategorySecurity,
		Name:        "shell-injection",
		Regex:       regexp.MustCompile(`(os\.system|subprocess\.(call|run|Popen))`),
		Description: "Shell invocation with possibly untrusted input",
	},
	{
		Category:    model.CategorySecurity,
		Name:        "sql-injection",
		Regex:       regexp.MustCompile(`execute\s*\(\s*['"][^'"]*%[^'"]*['"]\s*%`),
		Description: "String-interpolated SQL query",
	},
	{
		Category:    model.CategoryPerformance,
		Name:        "index-iteration",
		Regex:       regexp.MustCompile(`for\s+\w+\s+in\s+range\(len\(`),
		Description: "Index-based iteration where direct iteration suffices",
	},
	{
		Category:    model.CategoryPerformance,
		Name:        "redundant-copy",
		Regex:       regexp.MustCompile(`\.copy\(\)`),
		Description: "Possibly redundant container copy",
	},
	{
		Category:    model.CategoryPerformance,
		Name:        "infinite-loop",
		Regex:       regexp.MustCompile(`while\s+True\s*:`),
		Description: "Unconditional infinite loop",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "bare-except",
		Regex:       regexp.MustCompile(`except\s*:`),
		Description: "Bare exception handler",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "global-binding",
		Regex:       regexp.MustCompile(`(?m)^\s*global\s+\w+`),
		Description: "Global mutable binding",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "debug-print",
		Regex:       regexp.MustCompile(`\bprint\s*\(`),
		Description: "Debug print statement",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "long-function",
		Regex:       regexp.MustCompile(`(?m)^[ \t]*def\s+\w+[^\n]*:[ \t]*(?:\n(?:[ \t]+[^\n]*)?){50,}`),
		Description: "Overlong function body",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "mixed-bool-ops",
		Regex:       regexp.MustCompile(`if\s[^\n]*\band\b[^\n]*\bor\b[^\n]*:`),
		Description: "AND/OR mixed in one condition without parentheses",
	},
}

var goCatalog = []PatternRule{
	{
		Category:    model.CategorySecurity,
		Name:        "exec-command",
		Regex:       regexp.MustCompile(`exec\.Command(Context)?\s*\(`),
		Description: "Shell command invocation with possibly untrusted input",
	},
	{
		Category:    model.CategorySecurity,
		Name:        "reflect-call",
		Regex:       regexp.MustCompile(`reflect\.ValueOf\([^\n)]*\)\.(Call|MethodByName)`),
		Description: "Reflection-driven dynamic call dispatch",
	},
	{
		Category:    model.CategorySecurity,
		Name:        "sql-sprintf",
		Regex:       regexp.MustCompile(`Sprintf\s*\([^\n)]*(?i:select|insert|update|delete)[^\n)]*%[sv]`),
		Description: "String-interpolated SQL query",
	},
	{
		Category:    model.CategoryPerformance,
		Name:        "index-iteration",
		Regex:       regexp.MustCompile(`for\s+\w+\s*:=\s*0\s*;\s*\w+\s*<\s*len\(`),
		Description: "Index-based iteration where range suffices",
	},
	{
		Category:    model.CategoryPerformance,
		Name:        "spread-copy",
		Regex:       regexp.MustCompile(`append\(\w+(\[:0:0\])?,\s*\w+\.\.\.\)`),
		Description: "Possibly redundant slice copy via append spread",
	},
	{
		Category:    model.CategoryPerformance,
		Name:        "infinite-loop",
		Regex:       regexp.MustCompile(`(?m)for\s*\{\s*$`),
		Description: "Unconditional infinite loop",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "blanket-recover",
		Regex:       regexp.MustCompile(`\brecover\s*\(\s*\)`),
		Description: "Blanket recover masking panics",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "global-binding",
		Regex:       regexp.MustCompile(`(?m)^var\s+\w+`),
		Description: "Package-level mutable binding",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "debug-print",
		Regex:       regexp.MustCompile(`fmt\.Print(ln|f)?\s*\(`),
		Description: "Debug print statement",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "long-function",
		Regex:       regexp.MustCompile(`(?m)^func\s[^\n]*\{[ \t]*(?:\n(?:[ \t]+[^\n]*)?){80,}`),
		Description: "Overlong function body",
	},
	{
		Category:    model.CategoryMaintainability,
		Name:        "mixed-bool-ops",
		Regex:       regexp.MustCompile(`if\s[^\n{]*&&[^\n{]*\|\|`),
		Description: "AND/OR mixed in one condition without parentheses",
	},
}

// CatalogFor returns the fixed pattern catalog for a language. The returned
// slice is shared and must not be modified.
func CatalogFor(lang *syntax.Language) []PatternRule {
	switch lang.Name {
	case "go":
		return goCatalog
	default:
		return pythonCatalog
	}
}

// findPatterns scans the full source text against every rule in the catalog
// and groups the findings by category. Categories without matches are absent
// from the returned map. Line numbers count newlines strictly before the
// match start, plus 1.
func findPatterns(catalog []PatternRule, source string) map[model.Category][]model.Finding {
	found := make(map[model.Category][]model.Finding)

	for _, rule := range catalog {
		for _, loc := range rule.Regex.FindAllStringIndex(source, -1) {
			line := strings.Count(source[:loc[0]], "\n") + 1
			found[rule.Category] = append(found[rule.Category], model.Finding{
				Line:        line,
				Description: rule.Description,
			})
		}
	}

	return found
}
