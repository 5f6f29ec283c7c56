// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

import (
	"github.com/terramate-io/hclcst/primitive"
	"github.com/terramate-io/hclcst/repr"
)

// FuncCall is a `name(arg, arg, ...)` expression. Namespace holds any
// `::`-separated provider/namespace segments preceding Name (e.g. the
// `core` in `core::format(...)`); it is empty for an unqualified call.
type FuncCall struct {
	node
	Namespace     []primitive.Identifier
	Name          primitive.Identifier
	Args          []Expression
	ExpandFinal   bool // trailing `...` marker expanding the last arg
	TrailingComma bool
	Trailing      repr.RawString
}

func (*FuncCall) expressionNode() {}

func (f *FuncCall) Despan(input []byte) {
	f.decor.Despan(input)
	for _, a := range f.Args {
		a.Despan(input)
	}
	f.Trailing.Despan(input)
}
