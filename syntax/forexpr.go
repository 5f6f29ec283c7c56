// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

import "github.com/terramate-io/hclcst/primitive"

// ForExpr projects the items of a collection into a new array or object:
// `[for k, v in coll: v if cond]` or `{for k, v in coll: k => v...}`.
type ForExpr struct {
	node
	Intro     ForIntro
	KeyExpr   Expression // nil unless the result is an object
	ValueExpr Expression
	Grouping  bool // `...` group-by-key modifier; only meaningful with KeyExpr set
	Cond      *ForCond
}

func (*ForExpr) expressionNode() {}

func (f *ForExpr) Despan(input []byte) {
	f.decor.Despan(input)
	f.Intro.Despan(input)
	if f.KeyExpr != nil {
		f.KeyExpr.Despan(input)
	}
	f.ValueExpr.Despan(input)
	if f.Cond != nil {
		f.Cond.Despan(input)
	}
}

// ForIntro is the `for key_var, value_var in collection` header of a
// ForExpr.
type ForIntro struct {
	node
	KeyVar         *primitive.Identifier
	ValueVar       primitive.Identifier
	CollectionExpr Expression
}

func (i *ForIntro) Despan(input []byte) {
	i.decor.Despan(input)
	i.CollectionExpr.Despan(input)
}

// ForCond is the optional `if expr` filter clause of a ForExpr.
type ForCond struct {
	node
	Expr Expression
}

func (c *ForCond) Despan(input []byte) {
	c.decor.Despan(input)
	c.Expr.Despan(input)
}
