// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Error is returned by every parse entry point on failure. It locates
// the offending byte in the original input, reconstructs the line it
// falls on, and renders a caret-underlined diagnostic on demand.
type Error struct {
	Line       int // 1-based
	Column     int // 1-based
	Offset     int // 0-based byte offset
	Message    string
	SourceLine string
}

func (e *Error) Error() string {
	spacing := strings.Repeat(" ", len(fmt.Sprintf("%d", e.Line)))
	caret := strings.Repeat(" ", e.Column-1) + "^---"
	return fmt.Sprintf(
		"%s--> HCL parse error in line %d, column %d\n"+
			"%s |\n"+
			"%d | %s\n"+
			"%s | %s\n"+
			"%s |\n"+
			"%s = %s",
		spacing, e.Line, e.Column,
		spacing,
		e.Line, e.SourceLine,
		spacing, caret,
		spacing,
		spacing, e.Message,
	)
}

// LogEvent attaches this error's fields to a zerolog event, for callers
// that want structured diagnostic logging rather than (or in addition
// to) the rendered Error() string.
func (e *Error) LogEvent(log zerolog.Logger) *zerolog.Event {
	return log.Error().
		Int("line", e.Line).
		Int("column", e.Column).
		Int("offset", e.Offset).
		Str("source_line", e.SourceLine).
		Str("message", e.Message)
}

// newError locates pos within src and renders the diagnostic described
// by label/expected/cause per the summarization rule: a label prefixes
// the message, a single expected item is shown verbatim, multiple are
// joined as "A, B, ... or Z", and a cause is appended after a semicolon.
func newError(src []byte, pos int, label string, expected []string, cause error) *Error {
	if pos > len(src) {
		pos = len(src)
	}

	consumed := src[:pos]

	lineBegin := 0
	for i := len(consumed) - 1; i >= 0; i-- {
		if consumed[i] == '\n' {
			lineBegin = i + 1
			break
		}
	}

	lineEnd := len(src)
	if idx := indexByte(src[lineBegin:], '\n'); idx >= 0 {
		lineEnd = lineBegin + idx
	}

	line := 1
	for _, b := range consumed {
		if b == '\n' {
			line++
		}
	}

	column := pos - lineBegin + 1

	var msg strings.Builder
	if label != "" {
		fmt.Fprintf(&msg, "invalid %s; ", label)
	}

	switch len(expected) {
	case 0:
		msg.WriteString("unexpected token")
	case 1:
		fmt.Fprintf(&msg, "expected %s", expected[0])
	default:
		msg.WriteString("expected ")
		for i, e := range expected {
			switch {
			case i == len(expected)-1:
				msg.WriteString(" or ")
			case i > 0:
				msg.WriteString(", ")
			}
			msg.WriteString(e)
		}
	}

	if cause != nil {
		fmt.Fprintf(&msg, "; %s", cause.Error())
	}

	return &Error{
		Line:       line,
		Column:     column,
		Offset:     pos,
		Message:    msg.String(),
		SourceLine: string(src[lineBegin:lineEnd]),
	}
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// parseContext accumulates the label and expected-token descriptions
// seen so far at the current failure point, mirroring a cut_err stack:
// the deepest context wins.
type parseContext struct {
	label    string
	expected []string
}

func (c *parseContext) withLabel(label string) *parseContext {
	return &parseContext{label: label, expected: c.expected}
}

func (c *parseContext) expect(desc string) *parseContext {
	return &parseContext{label: c.label, expected: append(append([]string{}, c.expected...), desc)}
}

// fail builds the final *Error for a failure at pos using the
// accumulated context and an optional underlying cause.
func (c *parseContext) fail(src []byte, pos int, cause error) *Error {
	var label string
	var expected []string
	if c != nil {
		label = c.label
		expected = c.expected
	}
	return newError(src, pos, label, expected, cause)
}
