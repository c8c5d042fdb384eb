package parser

import (
	"testing"

	sitter "github.com/tree-sitter/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the parser wrapper:
// - Parse produces a tree rooted at a program node
// - PackageName resolves scoped and simple package clauses, "" when absent
// - Doc returns the preceding javadoc comment, and only javadoc
// - Node helpers navigate by kind and extract raw text

func mustParse(t *testing.T, src string) *File {
	t.Helper()
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	t.Cleanup(f.Close)
	return f
}

func TestParse_Root(t *testing.T) {
	t.Parallel()

	f := mustParse(t, "class A {}")
	assert.Equal(t, "program", f.Root().Kind())
}

func TestPackageName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "com.example.deep", mustParse(t, "package com.example.deep;\nclass A {}").PackageName())
	assert.Equal(t, "single", mustParse(t, "package single;\nclass A {}").PackageName())
	assert.Equal(t, "", mustParse(t, "class A {}").PackageName())
}

func TestDoc_Javadoc(t *testing.T) {
	t.Parallel()

	f := mustParse(t, `package p;

/**
 * The widget.
 */
class Widget {}
`)
	cls := FindChildByKind(f.Root(), "class_declaration")
	require.NotNil(t, cls)
	assert.Contains(t, Doc(cls, f.Source), "The widget.")
}

func TestDoc_NonJavadocIgnored(t *testing.T) {
	t.Parallel()

	f := mustParse(t, `/* plain block */
class A {}
`)
	cls := FindChildByKind(f.Root(), "class_declaration")
	require.NotNil(t, cls)
	assert.Empty(t, Doc(cls, f.Source))

	g := mustParse(t, `// line comment
class B {}
`)
	cls = FindChildByKind(g.Root(), "class_declaration")
	require.NotNil(t, cls)
	assert.Empty(t, Doc(cls, g.Source))
}

func TestDoc_NoPrecedingComment(t *testing.T) {
	t.Parallel()

	f := mustParse(t, "class A {}")
	cls := FindChildByKind(f.Root(), "class_declaration")
	require.NotNil(t, cls)
	assert.Empty(t, Doc(cls, f.Source))
}

func TestNodeHelpers(t *testing.T) {
	t.Parallel()

	f := mustParse(t, "package p;\nclass Name {}")

	cls := FindChildByKind(f.Root(), "class_declaration")
	require.NotNil(t, cls)
	assert.Equal(t, "Name", NodeText(cls.ChildByFieldName("name"), f.Source))
	assert.Empty(t, NodeText(nil, f.Source))
	assert.Nil(t, FindChildByKind(f.Root(), "no_such_kind"))

	var kinds []string
	Walk(f.Root(), func(n *sitter.Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != "class_declaration"
	})
	assert.Contains(t, kinds, "package_declaration")
	assert.Contains(t, kinds, "class_declaration")
	assert.NotContains(t, kinds, "class_body")
}
