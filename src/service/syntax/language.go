package syntax

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrUnknownLanguage indicates that no registered language handles the
// requested name or file extension.
var ErrUnknownLanguage = errors.New("unknown language")

// Language bundles a tree-sitter grammar with the language-specific facts
// the engine needs: file extensions, the single-line comment marker, and the
// node classifier that tags concrete tree-sitter node types with a
// NodeCategory during normalization.
type Language struct {
	Name          string
	Extensions    []string
	CommentMarker string

	grammar  *sitter.Language
	classify func(n *sitter.Node) (NodeCategory, int)
}

// Python returns the Python language definition
func Python() *Language {
	return &Language{
		Name:          "python",
		Extensions:    []string{".py", ".pyw"},
		CommentMarker: "#",
		grammar:       python.GetLanguage(),
		classify:      classifyPython,
	}
}

// Go returns the Go language definition
func Go() *Language {
	return &Language{
		Name:          "go",
		Extensions:    []string{".go"},
		CommentMarker: "//",
		grammar:       golang.GetLanguage(),
		classify:      classifyGo,
	}
}

// classifyPython maps tree-sitter Python node types to categories. Both the
// try statement and each except clause count as an ExceptionHandler, matching
// per-handler decision counting. elif clauses are separate nodes in the
// grammar and classify as Branch like the if they extend.
func classifyPython(n *sitter.Node) (NodeCategory, int) {
	switch n.Type() {
	case "if_statement", "elif_clause":
		return Branch, 0
	case "for_statement", "while_statement":
		return Loop, 0
	case "try_statement", "except_clause":
		return ExceptionHandler, 0
	case "with_statement":
		return ScopeEntry, 0
	case "assert_statement":
		return Assertion, 0
	case "boolean_operator":
		// and/or are binary in the grammar; chained operators nest, so a
		// k-operand chain yields k-1 combinator nodes of arity 2.
		return BooleanCombinator, 2
	default:
		return Other, 0
	}
}

// classifyGo maps tree-sitter Go node types to categories. Go has no
// exception handlers, scope-entry statements, or assertions; switch and
// select case clauses classify as Branch.
func classifyGo(n *sitter.Node) (NodeCategory, int) {
	switch n.Type() {
	case "if_statement", "expression_case", "type_case", "communication_case":
		return Branch, 0
	case "for_statement":
		return Loop, 0
	case "binary_expression":
		if op := n.ChildByFieldName("operator"); op != nil {
			switch op.Type() {
			case "&&", "||":
				return BooleanCombinator, 2
			}
		}
		return Other, 0
	default:
		return Other, 0
	}
}

// languages lists all registered language definitions
func languages() []*Language {
	return []*Language{Python(), Go()}
}

// ForName returns the language registered under the given name
func ForName(name string) (*Language, error) {
	for _, lang := range languages() {
		if lang.Name == strings.ToLower(name) {
			return lang, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

// ForPath returns the language matching the file's extension
func ForPath(path string) (*Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, lang := range languages() {
		for _, e := range lang.Extensions {
			if e == ext {
				return lang, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no language registered for %q", ErrUnknownLanguage, ext)
}

// Names returns the names of all registered languages
func Names() []string {
	var names []string
	for _, lang := range languages() {
		names = append(names, lang.Name)
	}
	return names
}
