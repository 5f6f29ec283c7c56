// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package repr

import "fmt"

type rawKind uint8

const (
	rawEmpty rawKind = iota
	rawSpanned
	rawOwned
)

// RawString is opaque storage for a run of trivia (whitespace/comments) or
// other verbatim text. It is one of three states: empty, a byte span into
// an input that is still alive, or an owned string. Despan promotes a
// Spanned RawString to Owned so the tree can safely outlive the input
// buffer; see Despan.
type RawString struct {
	kind  rawKind
	span  Span
	owned string
}

// Empty is the zero-value RawString: no text at all.
var Empty = RawString{}

// FromSpan interns span as unresolved trivia. An empty span collapses to
// Empty, matching the original implementation's normalization.
func FromSpan(span Span) RawString {
	if span.Len() == 0 {
		return Empty
	}
	return RawString{kind: rawSpanned, span: span}
}

// FromString wraps an already-known string as owned RawString content. An
// empty string collapses to Empty.
func FromString(s string) RawString {
	if s == "" {
		return Empty
	}
	return RawString{kind: rawOwned, owned: s}
}

// Span returns the backing span and true if r is still unresolved
// (Spanned). Owned and Empty RawStrings have no span.
func (r RawString) Span() (Span, bool) {
	if r.kind == rawSpanned {
		return r.span, true
	}
	return Span{}, false
}

// String returns r's text. For a Spanned RawString that has not yet been
// despanned this is "", since the text lives in the input buffer, not in
// r itself.
func (r RawString) String() string {
	if r.kind == rawOwned {
		return r.owned
	}
	return ""
}

// Despan resolves a Spanned RawString into an Owned one by slicing it out
// of input. It panics if the span falls outside input's bounds, which can
// only happen if the caller passes a different buffer than the one that
// was parsed — a programmer error, not a recoverable one.
func (r *RawString) Despan(input []byte) {
	if r.kind != rawSpanned {
		return
	}
	if r.span.Start < 0 || r.span.End > len(input) {
		panic(fmt.Sprintf("repr: span %v out of bounds for input of length %d", r.span, len(input)))
	}
	*r = FromString(string(input[r.span.Start:r.span.End]))
}

// EncodeWithDefault writes r's content to buf, falling back to def only
// while r is still Spanned; Empty writes nothing. An explicitly
// owned empty string is impossible to construct (FromString("") collapses
// to Empty), so this distinguishes "no decor recorded" from "decor
// recorded as nothing" only at the *Decor level (see Decor.EncodePrefix),
// where a nil pointer and an Empty RawString are told apart.
func (r RawString) EncodeWithDefault(buf *string, def string) {
	switch r.kind {
	case rawOwned:
		*buf += r.owned
	case rawSpanned:
		// Only reachable before despan runs; callers always despan before
		// encoding, so fall back to the default defensively.
		*buf += def
	default:
		*buf += r.String()
	}
}
