// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

import "github.com/terramate-io/hclcst/primitive"

// Traversal is a chain of one or more access operators applied to an
// expression: attribute access, indexing or splats.
type Traversal struct {
	node
	Source    Expression
	Operators []TraversalOperator
}

func (*Traversal) expressionNode() {}

func (t *Traversal) Despan(input []byte) {
	t.decor.Despan(input)
	t.Source.Despan(input)
	for i := range t.Operators {
		t.Operators[i].Despan(input)
	}
}

// TraversalOperatorKind identifies which access form a TraversalOperator
// carries.
type TraversalOperatorKind uint8

const (
	// OpGetAttr is `.name`.
	OpGetAttr TraversalOperatorKind = iota
	// OpIndex is `[expr]`.
	OpIndex
	// OpLegacyIndex is `.0`, retained only for compatibility with HIL.
	OpLegacyIndex
	// OpAttrSplat is `.*`.
	OpAttrSplat
	// OpFullSplat is `[*]`.
	OpFullSplat
)

// TraversalOperator is one link of a Traversal's operator chain.
type TraversalOperator struct {
	node
	Kind       TraversalOperatorKind
	Name       primitive.Identifier // OpGetAttr
	Index      Expression           // OpIndex
	LegacyIndex uint64              // OpLegacyIndex
}

func (o *TraversalOperator) Despan(input []byte) {
	o.decor.Despan(input)
	if o.Kind == OpIndex && o.Index != nil {
		o.Index.Despan(input)
	}
}
