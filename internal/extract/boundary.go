package extract

import (
	"strings"
	"unicode"
)

// bodyState tracks where the line scanner is relative to the method body.
type bodyState int

const (
	outsideMethod bodyState = iota
	inBody
	inBlockComment
)

// ExtractBody reconstructs a method body from raw source lines, starting at
// the method's 0-based start line. Kept lines are the structural ones (those
// contributing to brace balance) plus single-line comments containing at
// least one CJK rune. Lines inside block comments are dropped; a block
// comment opened and closed on one line is stripped from it and any
// remaining code retained.
//
// Scanning stops once the running brace balance returns to zero after the
// opening brace line has been seen. A method with no `{` (abstract or
// interface method) yields "". An unterminated block comment suppresses all
// remaining lines through end of file.
func ExtractBody(lines []string, startLine int) string {
	if startLine < 0 {
		startLine = 0
	}

	state := outsideMethod
	braces := 0
	opened := false
	var kept []string

	for i := startLine; i < len(lines); i++ {
		text := lines[i]

		if state == outsideMethod {
			if !strings.Contains(text, "{") {
				continue
			}
			state = inBody
		}

		if state == inBlockComment {
			idx := strings.Index(text, "*/")
			if idx < 0 {
				continue
			}
			text = text[idx+2:]
			state = inBody
		}

		// Strip block comments opened and closed on this line; an opener
		// with no closer drops the rest of the line and enters the comment.
		for {
			open := strings.Index(text, "/*")
			if open < 0 {
				break
			}
			rest := text[open+2:]
			end := strings.Index(rest, "*/")
			if end < 0 {
				text = ""
				state = inBlockComment
				break
			}
			text = text[:open] + rest[end+2:]
		}

		trimmed := strings.TrimSpace(text)
		switch {
		case strings.HasPrefix(trimmed, "//"):
			if containsCJK(strings.TrimSpace(trimmed[2:])) {
				kept = append(kept, text)
			}
		case trimmed != "":
			kept = append(kept, text)
			braces += strings.Count(text, "{") - strings.Count(text, "}")
			if strings.Contains(text, "{") {
				opened = true
			}
		}

		if opened && braces == 0 {
			break
		}
	}

	return strings.Join(kept, "\n")
}

// ExtractDeclaration returns the raw-text span of a method declaration. The
// scan starts at the method's 0-based (startLine, startCol) and advances one
// raw character at a time, wrapping across lines, consuming the rendered
// declaration string: a matching raw character advances both cursors, a
// mismatch advances only the raw cursor. The span runs from the start
// position through the final raw position reached.
//
// This is a best-effort re-synchronization between a whitespace-normalized
// structural rendering and the original formatted text; it can over- or
// under-match when the two diverge.
func ExtractDeclaration(lines []string, startLine, startCol int, rendered string) string {
	if startLine < 0 {
		startLine = 0
	}
	if startCol < 0 {
		startCol = 0
	}
	if startLine >= len(lines) {
		return ""
	}

	endLine, endCol := startLine, startCol
	ri := 0
	for ri < len(rendered) {
		if endCol >= len(lines[endLine]) {
			endCol = 0
			endLine++
			if endLine >= len(lines) {
				break
			}
			continue
		}
		if lines[endLine][endCol] == rendered[ri] {
			ri++
		}
		endCol++
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
		endCol = len(lines[endLine])
	}

	var parts []string
	for i := startLine; i <= endLine; i++ {
		switch {
		case i == startLine:
			col := startCol
			if col > len(lines[i]) {
				col = len(lines[i])
			}
			parts = append(parts, lines[i][col:])
		case i == endLine:
			if endCol <= len(lines[i]) {
				parts = append(parts, lines[i][:endCol])
			}
		default:
			parts = append(parts, lines[i])
		}
	}
	return strings.Join(parts, "\n")
}

// containsCJK reports whether s contains at least one Chinese, Japanese or
// Korean rune.
func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hangul, r) ||
			unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) {
			return true
		}
	}
	return false
}
