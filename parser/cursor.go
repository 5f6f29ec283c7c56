// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

// Package parser turns HCL source bytes into a spanned, decorated CST.
// It is a hand-rolled recursive-descent parser over a byte cursor: a
// trivia stage for whitespace/comments, a structural stage for bodies,
// attributes and blocks, a Pratt-style precedence climb for binary
// expressions, and dedicated sub-parsers for strings, numbers, and
// templates (quoted, heredoc and bare).
package parser

import (
	"unicode/utf8"

	"github.com/terramate-io/hclcst/repr"
)

// cursor is a read-only, position-tracking view over the bytes being
// parsed. It never copies: every captured lexeme becomes a repr.Span
// until despan promotes it to owned text.
type cursor struct {
	src []byte
	pos int
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) byteAt(pos int) (byte, bool) {
	if pos < 0 || pos >= len(c.src) {
		return 0, false
	}
	return c.src[pos], true
}

func (c *cursor) peek() (byte, bool) {
	return c.byteAt(c.pos)
}

func (c *cursor) peekN(n int) (byte, bool) {
	return c.byteAt(c.pos + n)
}

func (c *cursor) advance() {
	c.pos++
}

func (c *cursor) advanceN(n int) {
	c.pos += n
}

// peekRune decodes the rune starting at the cursor without consuming it.
func (c *cursor) peekRune() (rune, int) {
	if c.eof() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(c.src[c.pos:])
}

// consumeByte advances past b if it is next, reporting success.
func (c *cursor) consumeByte(b byte) bool {
	got, ok := c.peek()
	if !ok || got != b {
		return false
	}
	c.advance()
	return true
}

// consumeLiteral advances past s if it matches verbatim at the cursor.
func (c *cursor) consumeLiteral(s string) bool {
	if c.pos+len(s) > len(c.src) {
		return false
	}
	if string(c.src[c.pos:c.pos+len(s)]) != s {
		return false
	}
	c.advanceN(len(s))
	return true
}

// span returns the repr.Span covering [start, c.pos).
func (c *cursor) span(start int) repr.Span {
	return repr.NewSpan(start, c.pos)
}

// rawSince returns a repr.RawString spanning [start, c.pos).
func (c *cursor) rawSince(start int) repr.RawString {
	return repr.FromSpan(c.span(start))
}

// text returns the raw bytes covering [start, c.pos) as a string,
// without going through the span/despan machinery. Used where the
// parser needs the text immediately (e.g. to validate an identifier)
// rather than deferring to despan.
func (c *cursor) text(start int) string {
	return string(c.src[start:c.pos])
}
