// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

import (
	"github.com/terramate-io/hclcst/primitive"
	"github.com/terramate-io/hclcst/repr"
)

// Structure is implemented by the two things a Body can contain: an
// Attribute or a Block.
type Structure interface {
	Node
	structureNode()
}

// Body is an ordered sequence of attributes and blocks, in source order.
// Order is significant: re-encoding a Body emits its Structures in the
// order they appear here.
type Body struct {
	node
	Structures []Structure
	// Trailing holds any comment/whitespace bytes following the last
	// Structure, before the closing `}` or end of file.
	Trailing repr.RawString
	// PreferOneline is set on an inline block body (`foo { bar = 1 }`)
	// so the formatter keeps it on one line rather than expanding it.
	PreferOneline bool
	// PreferOmitTrailingNewline is set by parser.ParseBody on a top-level
	// file body. Neither the formatter nor the encoder reads it.
	PreferOmitTrailingNewline bool
}

func (b *Body) Despan(input []byte) {
	b.decor.Despan(input)
	for _, s := range b.Structures {
		s.Despan(input)
	}
	b.Trailing.Despan(input)
}

// Attributes returns every *Attribute directly in b, in source order.
func (b *Body) Attributes() []*Attribute {
	var out []*Attribute
	for _, s := range b.Structures {
		if a, ok := s.(*Attribute); ok {
			out = append(out, a)
		}
	}
	return out
}

// Blocks returns every *Block directly in b, in source order.
func (b *Body) Blocks() []*Block {
	var out []*Block
	for _, s := range b.Structures {
		if blk, ok := s.(*Block); ok {
			out = append(out, blk)
		}
	}
	return out
}

// GetAttribute returns the first attribute in b named name, or nil.
func (b *Body) GetAttribute(name primitive.Identifier) *Attribute {
	for _, a := range b.Attributes() {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Attribute is a `name = expr` structure.
type Attribute struct {
	node
	Name  primitive.Identifier
	Value Expression
	// NameSuffix holds the trivia between the name and `=`, distinct
	// from the node's own Decor (which covers trivia before/after the
	// whole structure within its Body).
	NameSuffix repr.RawString
}

func (*Attribute) structureNode() {}

func (a *Attribute) Despan(input []byte) {
	a.decor.Despan(input)
	a.NameSuffix.Despan(input)
	a.Value.Despan(input)
}

// BlockLabelKind distinguishes a quoted-string block label from a bare
// identifier one; both are valid HCL and the distinction must round-trip.
type BlockLabelKind uint8

const (
	// LabelString is a quoted label, e.g. `resource "aws_instance" "x" {`.
	LabelString BlockLabelKind = iota
	// LabelIdent is a bare identifier label, rare but grammar-legal.
	LabelIdent
)

// BlockLabel is one label of a Block header.
type BlockLabel struct {
	node
	Kind  BlockLabelKind
	Value string
	Raw   repr.RawString
}

func (l *BlockLabel) Despan(input []byte) {
	l.decor.Despan(input)
	l.Raw.Despan(input)
}

// Block is a `type "label" "label" { ... }` structure. Body is always
// non-nil; an empty block still carries a Body with no Structures.
type Block struct {
	node
	Type   primitive.Identifier
	Labels []BlockLabel
	Body   *Body
	// TypeSuffix holds the trivia between Type and the first label (or
	// `{` if there are none), distinct from the node's own Decor.
	TypeSuffix repr.RawString
}

func (*Block) structureNode() {}

func (blk *Block) Despan(input []byte) {
	blk.decor.Despan(input)
	blk.TypeSuffix.Despan(input)
	for i := range blk.Labels {
		blk.Labels[i].Despan(input)
	}
	blk.Body.Despan(input)
}
