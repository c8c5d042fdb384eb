package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for boundary extraction:
// - Body scan starts at the first line containing '{' and stops when the
//   brace balance returns to zero
// - Single-line bodies terminate on their own line
// - Single-line comments are kept only when they contain a CJK rune
// - Block comments spanning lines are dropped; inline block comments are
//   stripped with the remaining code kept and counted
// - Unterminated block comments suppress everything through EOF
// - Methods without a body yield an empty string
// - Declaration scan re-synchronizes a normalized rendering against raw text
// - Both extractions are deterministic on identical input

func TestExtractBody_BraceBalance(t *testing.T) {
	t.Parallel()

	src := []string{
		"public int bar() {",
		"    if (x) {",
		"        x++;",
		"    }",
		"    return x;",
		"}",
		"// trailing, never reached",
	}

	body := ExtractBody(src, 0)

	lines := strings.Split(body, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "public int bar() {", lines[0])
	assert.Equal(t, "}", lines[5])
	assert.NotContains(t, body, "trailing")

	delta := strings.Count(body, "{") - strings.Count(body, "}")
	assert.Zero(t, delta)
}

func TestExtractBody_SingleLine(t *testing.T) {
	t.Parallel()

	src := []string{
		"int bar() { return 1; }",
		"int baz() { return 2; }",
	}

	body := ExtractBody(src, 0)
	assert.Equal(t, "int bar() { return 1; }", body)
}

func TestExtractBody_CJKCommentKept(t *testing.T) {
	t.Parallel()

	src := []string{
		"public void f() {",
		"    // 计算余额",
		"    // plain english note",
		"    balance += delta;",
		"}",
	}

	body := ExtractBody(src, 0)
	assert.Contains(t, body, "// 计算余额")
	assert.NotContains(t, body, "plain english note")
	assert.Contains(t, body, "balance += delta;")
}

func TestExtractBody_CJKRanges(t *testing.T) {
	t.Parallel()

	src := []string{
		"void f() {",
		"    // ハンドラ登録",
		"    // 핸들러 등록",
		"    // handler registration",
		"    register();",
		"}",
	}

	body := ExtractBody(src, 0)
	assert.Contains(t, body, "ハンドラ登録")
	assert.Contains(t, body, "핸들러 등록")
	assert.NotContains(t, body, "handler registration")
}

func TestExtractBody_InlineBlockCommentStripped(t *testing.T) {
	t.Parallel()

	src := []string{
		"void f() {",
		"    doWork(); /* explanation */",
		"    /* whole line comment */",
		"}",
	}

	body := ExtractBody(src, 0)
	assert.Contains(t, body, "doWork(); ")
	assert.NotContains(t, body, "explanation")
	assert.NotContains(t, body, "whole line comment")
	assert.Contains(t, body, "}")
}

func TestExtractBody_InlineCommentBraceCounted(t *testing.T) {
	t.Parallel()

	// The closing brace after the stripped comment must still count.
	src := []string{
		"void f() {",
		"    run(); /* note */ }",
		"unreached();",
	}

	body := ExtractBody(src, 0)
	assert.NotContains(t, body, "note")
	assert.NotContains(t, body, "unreached")
	assert.Contains(t, body, "run();  }")
}

func TestExtractBody_BlockCommentSpanningLines(t *testing.T) {
	t.Parallel()

	src := []string{
		"void f() {",
		"    before();",
		"    /* first",
		"       second }{",
		"       third */ after();",
		"}",
	}

	body := ExtractBody(src, 0)
	assert.Contains(t, body, "before();")
	assert.NotContains(t, body, "first")
	assert.NotContains(t, body, "second")
	assert.NotContains(t, body, "third")
	assert.Contains(t, body, " after();")
	assert.Contains(t, body, "}")
}

func TestExtractBody_UnterminatedCommentSuppressesToEOF(t *testing.T) {
	t.Parallel()

	src := []string{
		"void f() {",
		"    a();",
		"    /* never closed",
		"    b();",
		"}",
	}

	body := ExtractBody(src, 0)
	assert.Contains(t, body, "a();")
	assert.NotContains(t, body, "b();")
	assert.NotContains(t, body, "never closed")
}

func TestExtractBody_NoBody(t *testing.T) {
	t.Parallel()

	src := []string{
		"void qux();",
		"void other();",
	}

	assert.Empty(t, ExtractBody(src, 0))
}

func TestExtractBody_StartPastEOF(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ExtractBody([]string{"void f() {}"}, 5))
	assert.Equal(t, "void f() {}", ExtractBody([]string{"void f() {}"}, -3))
}

func TestExtractDeclaration_SingleLine(t *testing.T) {
	t.Parallel()

	lines := []string{
		"    public int bar() {",
		"        return 1;",
	}

	decl := ExtractDeclaration(lines, 0, 4, "public int bar()")
	// A declaration confined to one line keeps the whole tail of that line.
	assert.Equal(t, "public int bar() {", decl)
}

func TestExtractDeclaration_MultiLine(t *testing.T) {
	t.Parallel()

	lines := []string{
		"    public static String join(String a,",
		"                              String b) throws IOException {",
		"        return a + b;",
	}
	rendered := "public static String join(String a, String b) throws IOException"

	decl := ExtractDeclaration(lines, 0, 4, rendered)
	assert.Equal(t, "public static String join(String a,\n                              String b) throws IOException", decl)
}

func TestExtractDeclaration_SourceExhausted(t *testing.T) {
	t.Parallel()

	lines := []string{"void f("}
	decl := ExtractDeclaration(lines, 0, 0, "void f(int x)")
	assert.Equal(t, "void f(", decl)

	assert.Empty(t, ExtractDeclaration(lines, 3, 0, "void f()"))
}

func TestBoundaryExtraction_Deterministic(t *testing.T) {
	t.Parallel()

	lines := []string{
		"public void f() {",
		"    // 说明",
		"    g(); /* x */",
		"}",
	}

	first := ExtractBody(lines, 0)
	second := ExtractBody(lines, 0)
	assert.Equal(t, first, second)

	d1 := ExtractDeclaration(lines, 0, 0, "public void f()")
	d2 := ExtractDeclaration(lines, 0, 0, "public void f()")
	assert.Equal(t, d1, d2)
}

func TestContainsCJK(t *testing.T) {
	t.Parallel()

	assert.True(t, containsCJK("余额"))
	assert.True(t, containsCJK("カタカナ"))
	assert.True(t, containsCJK("한국어"))
	assert.False(t, containsCJK("ascii only"))
	assert.False(t, containsCJK(""))
}
