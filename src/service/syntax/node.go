// Package syntax turns raw source text into a normalized syntax tree whose
// nodes are tagged with the small set of control-flow categories the metrics
// engine cares about. The concrete parsing is done by tree-sitter; nothing
// outside this package depends on language-specific node type identity.
package syntax

// NodeCategory classifies a syntax node by its relevance to complexity
// scoring. Everything that is not a decision point is Other.
type NodeCategory uint8

const (
	Other NodeCategory = iota
	Branch
	Loop
	ExceptionHandler
	ScopeEntry
	Assertion
	BooleanCombinator
)

// String returns the category name
func (c NodeCategory) String() string {
	switch c {
	case Branch:
		return "branch"
	case Loop:
		return "loop"
	case ExceptionHandler:
		return "exception_handler"
	case ScopeEntry:
		return "scope_entry"
	case Assertion:
		return "assertion"
	case BooleanCombinator:
		return "boolean_combinator"
	default:
		return "other"
	}
}

// Node is a normalized syntax tree node. Operands is the operand arity for
// BooleanCombinator nodes and 0 for every other category.
type Node struct {
	Category NodeCategory
	Operands int
	Children []*Node
}

// Tree is a normalized syntax tree. It holds no reference to the underlying
// tree-sitter tree, so it is safe to retain and share across goroutines.
type Tree struct {
	Root *Node
}

// Walk performs a depth-first traversal, invoking enter before a node's
// subtree and exit after it. Either hook may be nil.
func (t *Tree) Walk(enter, exit func(*Node)) {
	if t == nil || t.Root == nil {
		return
	}
	var visit func(*Node)
	visit = func(n *Node) {
		if enter != nil {
			enter(n)
		}
		for _, child := range n.Children {
			visit(child)
		}
		if exit != nil {
			exit(n)
		}
	}
	visit(t.Root)
}
