package syntax

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrInvalidSyntax indicates that the source text could not be parsed into a
// well-formed tree. It is deterministic for a given input.
var ErrInvalidSyntax = errors.New("invalid syntax")

// Parse builds a normalized syntax tree from raw source text. A fresh
// tree-sitter parser is created per call, so concurrent parses of distinct
// files need no synchronization. The returned Tree is fully detached from
// tree-sitter memory.
func Parse(ctx context.Context, lang *Language, source []byte) (*Tree, error) {
	// tree-sitter observes cancellation via a flag that may lose the race
	// on small inputs; an already-done context must not parse at all.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang.grammar)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s source: %w", lang.Name, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, ErrInvalidSyntax
	}

	return &Tree{Root: normalize(lang, root)}, nil
}

// normalize tags each named node with its category in a single pass over the
// tree-sitter tree. Unnamed nodes (punctuation, keywords) carry no structure
// the engine needs and are skipped.
func normalize(lang *Language, n *sitter.Node) *Node {
	category, operands := lang.classify(n)
	node := &Node{Category: category, Operands: operands}

	count := int(n.NamedChildCount())
	if count > 0 {
		node.Children = make([]*Node, 0, count)
		for i := 0; i < count; i++ {
			node.Children = append(node.Children, normalize(lang, n.NamedChild(i)))
		}
	}

	return node
}
