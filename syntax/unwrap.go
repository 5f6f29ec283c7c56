// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

// UnwrapInterpolation reports whether t consists of exactly one
// Interpolation element with no surrounding literal text and, if so,
// returns the interpolated expression. This is the transform a caller
// applies to turn `"${foo}"` into the bare expression `foo`; it is never
// applied automatically by the parser, since `"${foo}"` and `foo` are
// different source texts and only the caller knows which one it wants to
// keep.
func UnwrapInterpolation(t *Template) (Expression, bool) {
	if len(t.Elements) != 1 {
		return nil, false
	}
	interp, ok := t.Elements[0].(*Interpolation)
	if !ok {
		return nil, false
	}
	return interp.Expr, true
}
