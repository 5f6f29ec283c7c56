// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

// Package repr implements the span and decoration model that the CST uses
// to remain byte-accurate: every node carries a Span into the original
// input while it is still alive, and a Decor recording the exact
// whitespace/comment bytes immediately surrounding it, so that the tree
// can be serialized back to its original text verbatim.
package repr

import "fmt"

// Span is a half-open byte range [Start, End) into the source text that
// was parsed. A zero-value Span (Start == End == 0) means "no span",
// distinct from an empty span produced by the parser at some non-zero
// offset; callers should use HasSpan, not a zero comparison, to test for
// absence.
type Span struct {
	Start int
	End   int
	set   bool
}

// NewSpan builds a Span covering [start, end).
func NewSpan(start, end int) Span {
	if end < start {
		panic(fmt.Sprintf("repr: invalid span [%d, %d)", start, end))
	}
	return Span{Start: start, End: end, set: true}
}

// HasSpan reports whether s was ever set by the parser. Nodes built
// programmatically (not via parsing) carry a zero Span with HasSpan()
// false.
func (s Span) HasSpan() bool {
	return s.set
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies entirely within s, satisfying the
// span-containment invariant (spec §8.1.6): every child span is contained
// within its parent's.
func (s Span) Contains(other Span) bool {
	return s.set && other.set && s.Start <= other.Start && other.End <= s.End
}

// Spanner is implemented by every CST node; it exposes the byte range the
// parser recorded for the node, if any.
type Spanner interface {
	Span() Span
}

// SetSpanner is implemented by nodes the parser can stamp with a span
// after recognizing them.
type SetSpanner interface {
	SetSpan(s Span)
}
