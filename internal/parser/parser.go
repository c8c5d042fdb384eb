package parser

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// File is a parsed Java source file. Close must be called to release the
// underlying tree.
type File struct {
	Source []byte
	tree   *sitter.Tree
}

// Parse parses Java source text into a syntax tree.
func Parse(source []byte) (*File, error) {
	p := sitter.NewParser()
	defer p.Close()

	lang := sitter.NewLanguage(java.Language())
	if err := p.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set java language: %w", err)
	}

	tree := p.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse java source")
	}

	return &File{Source: source, tree: tree}, nil
}

// Root returns the root node of the syntax tree.
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Close releases the parse tree.
func (f *File) Close() {
	f.tree.Close()
}

// PackageName returns the declared package name, or "" when the file has no
// package clause.
func (f *File) PackageName() string {
	var name string
	Walk(f.Root(), func(n *sitter.Node) bool {
		if n.Kind() == "package_declaration" {
			id := FindChildByKind(n, "scoped_identifier")
			if id == nil {
				id = FindChildByKind(n, "identifier")
			}
			if id != nil {
				name = NodeText(id, f.Source)
			}
			return false
		}
		return true
	})
	return name
}

// NodeText extracts the text content of a node.
func NodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// FindChildByKind finds the first child node with the given kind.
func FindChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// Walk recursively walks the tree and calls the visitor for each node.
// Returning false from the visitor stops descent into that node's children.
func Walk(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visitor(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		Walk(node.Child(uint(i)), visitor)
	}
}

// Doc returns the documentation comment attached to a declaration: the
// immediately preceding block comment starting with "/**". Returns "" when
// the declaration has none.
func Doc(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	prev := node.PrevNamedSibling()
	if prev == nil || prev.Kind() != "block_comment" {
		return ""
	}
	text := NodeText(prev, source)
	if !strings.HasPrefix(text, "/**") {
		return ""
	}
	return text
}
