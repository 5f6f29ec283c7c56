// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

import (
	"github.com/terramate-io/hclcst/primitive"
	"github.com/terramate-io/hclcst/repr"
)

// Template is a sequence of literal text, escaped markers, interpolations
// and directives, in source order. It appears both standalone (a quoted
// string) and wrapped in a HeredocTemplate.
type Template struct {
	node
	Elements []Element
}

func (*Template) expressionNode() {}

func (t *Template) Despan(input []byte) {
	t.decor.Despan(input)
	for _, e := range t.Elements {
		e.Despan(input)
	}
}

// Element is implemented by every constituent of a Template.
type Element interface {
	Node
	elementNode()
}

// Literal is a run of plain text within a template. Inside a quoted string
// Value holds the text with escape sequences decoded; in heredocs and bare
// templates it holds the text as written. The encoder writes Value (re-escaped
// inside quoted strings), it does not replay Raw verbatim, so that edits to
// Value are reflected.
type Literal struct {
	node
	Value string
	Raw   repr.RawString
}

func (*Literal) elementNode() {}

func (l *Literal) Despan(input []byte) {
	l.decor.Despan(input)
	l.Raw.Despan(input)
}

// EscapedLiteralKind distinguishes which marker was escaped.
type EscapedLiteralKind uint8

const (
	// EscapedInterpolation is a literal `$${` that must not be read as
	// the start of an interpolation.
	EscapedInterpolation EscapedLiteralKind = iota
	// EscapedDirective is a literal `%%{`.
	EscapedDirective
)

// EscapedLiteral is an escaped `${`/`%{` marker rendered back verbatim as
// `$${`/`%%{`.
type EscapedLiteral struct {
	node
	Kind EscapedLiteralKind
}

func (*EscapedLiteral) elementNode() {}

func (e *EscapedLiteral) Despan(input []byte) {
	e.decor.Despan(input)
}

// Interpolation is a `${expr}` template element.
type Interpolation struct {
	node
	Strip primitive.Strip
	Expr  Expression
}

func (*Interpolation) elementNode() {}

func (i *Interpolation) Despan(input []byte) {
	i.decor.Despan(input)
	i.Expr.Despan(input)
}

// Directive wraps either an IfDirective or a ForDirective template
// element.
type Directive interface {
	Element
	directiveNode()
}

// IfDirective is a `%{ if cond }...%{ else }...%{ endif }` template
// control block. HasElse is false and Alternative is nil when there is no
// else clause.
type IfDirective struct {
	node
	CondStrip   primitive.Strip
	Cond        Expression
	Consequent  *Template
	ElseStrip   primitive.Strip
	HasElse     bool
	Alternative *Template
	EndStrip    primitive.Strip
}

func (*IfDirective) elementNode()   {}
func (*IfDirective) directiveNode() {}

func (d *IfDirective) Despan(input []byte) {
	d.decor.Despan(input)
	d.Cond.Despan(input)
	d.Consequent.Despan(input)
	if d.HasElse {
		d.Alternative.Despan(input)
	}
}

// ForDirective is a `%{ for k, v in coll }...%{ endfor }` template
// control block.
type ForDirective struct {
	node
	KeyVar         *primitive.Identifier
	ValueVar       primitive.Identifier
	IntroStrip     primitive.Strip
	CollectionExpr Expression
	Body           *Template
	EndStrip       primitive.Strip
}

func (*ForDirective) elementNode()   {}
func (*ForDirective) directiveNode() {}

func (d *ForDirective) Despan(input []byte) {
	d.decor.Despan(input)
	d.CollectionExpr.Despan(input)
	d.Body.Despan(input)
}

// HeredocKind distinguishes a plain heredoc (`<<EOT`) from an
// indent-stripping one (`<<-EOT`).
type HeredocKind uint8

const (
	// HeredocPlain is `<<EOT`: no automatic indent stripping.
	HeredocPlain HeredocKind = iota
	// HeredocIndented is `<<-EOT`: leading whitespace common to every
	// line is stripped at parse time and re-applied on encode (see
	// HeredocTemplate.Indent).
	HeredocIndented
)

// HeredocTemplate is a `<<EOT ... EOT` or `<<-EOT ... EOT` heredoc
// string expression.
type HeredocTemplate struct {
	node
	Kind      HeredocKind
	Delimiter primitive.Identifier
	Template  *Template
	// Indent is the number of leading whitespace bytes stripped from
	// every non-blank body line (and the closing delimiter's line) when
	// Kind is HeredocIndented. The encoder re-applies it on output. Zero
	// for HeredocPlain.
	Indent int
}

func (*HeredocTemplate) expressionNode() {}

func (h *HeredocTemplate) Despan(input []byte) {
	h.decor.Despan(input)
	h.Template.Despan(input)
}
