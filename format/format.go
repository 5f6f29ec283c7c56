// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

// Package format rewrites a CST's decor in place so that a subsequent
// encode pass produces canonical, indented output. It never touches
// node values or span/structure, only the RawString prefixes/suffixes
// that carry whitespace and comments.
package format

import (
	"strings"

	"github.com/terramate-io/hclcst/repr"
	"github.com/terramate-io/hclcst/syntax"
)

// Formatter holds the configuration for one formatting pass: the string
// repeated per indent level, and the level the top-level Body starts at.
type Formatter struct {
	indent string
	level  int
}

// Option configures a Formatter built by New.
type Option func(*Formatter)

// WithIndent sets the string repeated per indent level. The default is
// two spaces.
func WithIndent(prefix string) Option {
	return func(f *Formatter) { f.indent = prefix }
}

// WithInitialIndentLevel sets the indent level the top-level Body is
// formatted at, for embedding a formatted body inside an already-indented
// context.
func WithInitialIndentLevel(n int) Option {
	return func(f *Formatter) { f.level = n }
}

// New builds a Formatter with the given options applied over the
// defaults (two-space indent, level 0).
func New(opts ...Option) *Formatter {
	f := &Formatter{indent: "  "}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) at(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(f.indent, level)
}

// Body formats b in place, starting at f's initial indent level.
func (f *Formatter) Body(b *syntax.Body) {
	formatBody(f, b, f.level, f.at(f.level))
	// The top-level body ends at eof, so no indent follows its last line.
	b.Trailing = repr.FromString(strings.TrimSuffix(b.Trailing.String(), f.at(f.level)))
}

// Expression formats a standalone expression tree in place (as used, for
// example, when re-serializing a single attribute's value on its own).
func (f *Formatter) Expression(e syntax.Expression) {
	formatExpr(f, e, f.level)
}
