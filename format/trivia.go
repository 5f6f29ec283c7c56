// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package format

import "strings"

type triviaKind int

const (
	triviaNewline triviaKind = iota
	triviaLineComment
	triviaBlockComment
)

type triviaTok struct {
	kind triviaKind
	text string
}

// tokenizeTrivia splits a raw decor string into newlines and comments,
// discarding plain whitespace runs (the caller re-supplies indentation).
// Bare '\r' bytes are dropped; formatted output always uses LF.
func tokenizeTrivia(s string) []triviaTok {
	var toks []triviaTok
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '\n':
			toks = append(toks, triviaTok{triviaNewline, "\n"})
			i++
		case s[i] == '\r' || s[i] == ' ' || s[i] == '\t':
			i++
		case s[i] == '#':
			j := i
			for j < len(s) && s[j] != '\n' {
				j++
			}
			toks = append(toks, triviaTok{triviaLineComment, strings.TrimRight(s[i:j], " \t")})
			i = j
		case s[i] == '/' && i+1 < len(s) && s[i+1] == '/':
			j := i
			for j < len(s) && s[j] != '\n' {
				j++
			}
			toks = append(toks, triviaTok{triviaLineComment, strings.TrimRight(s[i:j], " \t")})
			i = j
		case s[i] == '/' && i+1 < len(s) && s[i+1] == '*':
			j := i + 2
			for j+1 < len(s) && !(s[j] == '*' && s[j+1] == '/') {
				j++
			}
			end := j + 2
			if end > len(s) {
				end = len(s)
			}
			toks = append(toks, triviaTok{triviaBlockComment, s[i:end]})
			i = end
		default:
			i++
		}
	}
	return toks
}

// reindentTrivia rebuilds old's comments at indent, collapsing any run of
// blank lines to at most one and dropping bare whitespace. The result
// always ends with indent, ready to prefix whatever follows (a structure,
// or a closing brace).
func reindentTrivia(old string, indent string) string {
	toks := tokenizeTrivia(old)
	var out strings.Builder
	blank := 0
	lineOpen := false
	for _, t := range toks {
		switch t.kind {
		case triviaNewline:
			if lineOpen {
				out.WriteByte('\n')
				lineOpen = false
			} else {
				blank++
			}
		case triviaLineComment, triviaBlockComment:
			if blank > 0 {
				out.WriteByte('\n')
			}
			blank = 0
			out.WriteString(indent)
			out.WriteString(t.text)
			lineOpen = true
		}
	}
	if lineOpen {
		out.WriteByte('\n')
	} else if blank > 0 {
		out.WriteByte('\n')
	}
	out.WriteString(indent)
	return out.String()
}

// reindentOwnLine is reindentTrivia plus a forced leading newline, for
// collection elements that always start their own line in multi-line
// layout regardless of whether the source already had a newline there.
func reindentOwnLine(old string, indent string) string {
	trimmed := strings.TrimLeft(old, " \t\r")
	trimmed = strings.TrimPrefix(trimmed, "\n")
	return "\n" + reindentTrivia(trimmed, indent)
}

// normalizeInline collapses old to def, except any inline block comment
// it contains is preserved, single-space padded on both sides.
func normalizeInline(old string, def string) string {
	toks := tokenizeTrivia(old)
	var out strings.Builder
	any := false
	for _, t := range toks {
		if t.kind != triviaBlockComment {
			continue
		}
		out.WriteByte(' ')
		out.WriteString(t.text)
		any = true
	}
	if !any {
		return def
	}
	out.WriteByte(' ')
	return out.String()
}

// isMultiline reports whether s (as already captured, pre-format) spans
// more than one line — the signal used to decide array/object/call
// layout.
func isMultiline(s string) bool {
	return strings.Contains(s, "\n")
}
