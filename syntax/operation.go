// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

import "github.com/terramate-io/hclcst/primitive"

// UnaryOp applies a prefix operator to an expression.
type UnaryOp struct {
	node
	Operator primitive.UnaryOperator
	Operand  Expression
}

func (*UnaryOp) expressionNode() {}

func (u *UnaryOp) Despan(input []byte) {
	u.decor.Despan(input)
	u.Operand.Despan(input)
}

// BinaryOp applies an infix operator to two expressions. It is built by
// the Pratt precedence climb and carries no associativity information of
// its own: the tree shape already encodes it.
type BinaryOp struct {
	node
	LHS      Expression
	Operator primitive.BinaryOperator
	RHS      Expression
}

func (*BinaryOp) expressionNode() {}

func (b *BinaryOp) Despan(input []byte) {
	b.decor.Despan(input)
	b.LHS.Despan(input)
	b.RHS.Despan(input)
}

// Conditional is a `cond ? true_expr : false_expr` expression.
type Conditional struct {
	node
	Cond      Expression
	TrueExpr  Expression
	FalseExpr Expression
}

func (*Conditional) expressionNode() {}

func (c *Conditional) Despan(input []byte) {
	c.decor.Despan(input)
	c.Cond.Despan(input)
	c.TrueExpr.Despan(input)
	c.FalseExpr.Despan(input)
}
