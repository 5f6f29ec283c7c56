// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

import (
	"github.com/terramate-io/hclcst/primitive"
	"github.com/terramate-io/hclcst/repr"
)

// Expression is implemented by every node that can appear wherever the
// grammar expects a value: literals, collections, operations and
// references alike.
type Expression interface {
	Node
	expressionNode()
}

// Null is the literal `null`.
type Null struct {
	node
}

func (*Null) expressionNode() {}

// Bool is a literal `true` or `false`.
type Bool struct {
	node
	Value bool
}

func (*Bool) expressionNode() {}

// LiteralNumber is a numeric literal.
type LiteralNumber struct {
	node
	Value primitive.Number
}

func (*LiteralNumber) expressionNode() {}

// LiteralString is a quoted string containing no interpolation, reduced
// from a Template that turned out to carry only literal text (spec
// §4.5's "plain string" collapse). Raw preserves the exact escaped
// source text, Value the unescaped content.
type LiteralString struct {
	node
	Value string
	Raw   repr.RawString
}

func (*LiteralString) expressionNode() {}

func (s *LiteralString) Despan(input []byte) {
	s.decor.Despan(input)
	s.Raw.Despan(input)
}

// Parenthesis wraps a sub-expression in `( ... )`.
type Parenthesis struct {
	node
	Inner Expression
}

func (*Parenthesis) expressionNode() {}

func (p *Parenthesis) Despan(input []byte) {
	p.decor.Despan(input)
	p.Inner.Despan(input)
}

// Variable is a bare identifier reference, the root of a Traversal or a
// standalone expression such as a block-body `count`.
type Variable struct {
	node
	Name primitive.Identifier
}

func (*Variable) expressionNode() {}

func (v *Variable) Despan(input []byte) {
	v.decor.Despan(input)
}

func (n *Null) Despan(input []byte) {
	n.decor.Despan(input)
}

func (b *Bool) Despan(input []byte) {
	b.decor.Despan(input)
}

func (l *LiteralNumber) Despan(input []byte) {
	l.decor.Despan(input)
}
