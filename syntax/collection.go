// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

import "github.com/terramate-io/hclcst/repr"

// Array is a `[ expr, expr, ... ]` tuple constructor.
type Array struct {
	node
	Values []Expression
	// TrailingComma records whether the last element was followed by a
	// comma before the closing `]`.
	TrailingComma bool
	// Trailing holds any comment/whitespace bytes after the last value
	// (or its comma), before the closing `]`.
	Trailing repr.RawString
}

func (*Array) expressionNode() {}

func (a *Array) Despan(input []byte) {
	a.decor.Despan(input)
	for _, v := range a.Values {
		v.Despan(input)
	}
	a.Trailing.Despan(input)
}

// ObjectKeyKind distinguishes the three ways an object key may be
// written: a bare identifier, a quoted string, or an arbitrary
// parenthesized expression evaluated at eval time.
type ObjectKeyKind uint8

const (
	// ObjectKeyIdent is a bare identifier key: `foo = 1`.
	ObjectKeyIdent ObjectKeyKind = iota
	// ObjectKeyExpr is any other key expression, including quoted
	// strings and parenthesized expressions: `"foo" = 1`, `(foo) = 1`.
	ObjectKeyExpr
)

// ObjectKey is the key half of an ObjectItem.
type ObjectKey struct {
	node
	Kind ObjectKeyKind
	Expr Expression
}

func (k *ObjectKey) Despan(input []byte) {
	k.decor.Despan(input)
	k.Expr.Despan(input)
}

// ObjectValueAssignment is the separator between an object item's key and
// value, `=` or `:`; both are grammar-legal and the choice must survive
// round-trip.
type ObjectValueAssignment uint8

const (
	// AssignEquals is `=`.
	AssignEquals ObjectValueAssignment = iota
	// AssignColon is `:`.
	AssignColon
)

// ObjectValueTerminator is what, if anything, separates one object item
// from the next: an explicit comma, a bare newline, or nothing (only
// legal for the final item immediately before `}`).
type ObjectValueTerminator uint8

const (
	// TerminatorNone means no separator was written; only valid for the
	// last item in an Object.
	TerminatorNone ObjectValueTerminator = iota
	// TerminatorComma is an explicit `,`.
	TerminatorComma
	// TerminatorNewline is a bare line break acting as the separator.
	TerminatorNewline
)

// ObjectItem is one `key = value` or `key: value` entry of an Object.
type ObjectItem struct {
	node
	Key        ObjectKey
	Assignment ObjectValueAssignment
	Value      Expression
	Terminator ObjectValueTerminator
}

func (it *ObjectItem) Despan(input []byte) {
	it.decor.Despan(input)
	it.Key.Despan(input)
	it.Value.Despan(input)
}

// Object is a `{ key = value, ... }` object constructor.
type Object struct {
	node
	Items []ObjectItem
	// Trailing holds any comment/whitespace bytes after the last item,
	// before the closing `}`.
	Trailing repr.RawString
}

func (*Object) expressionNode() {}

func (o *Object) Despan(input []byte) {
	o.decor.Despan(input)
	for i := range o.Items {
		o.Items[i].Despan(input)
	}
	o.Trailing.Despan(input)
}
