// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package repr

// Decor carries the trivia immediately surrounding a node: the bytes
// before it (Prefix) and after it (Suffix). Each side is independently
// either unset (nil: "no opinion, render the component default"), set to
// an explicit empty RawString ("render nothing, even if there is a
// default"), or set to non-empty text. This three-way distinction is what
// lets the formatter clear a node's surrounding whitespace without it
// silently reverting to the encoder's default.
type Decor struct {
	prefix *RawString
	suffix *RawString
}

// NewDecor builds a Decor with both sides explicitly set.
func NewDecor(prefix, suffix RawString) Decor {
	return Decor{prefix: &prefix, suffix: &suffix}
}

// Prefix returns the explicit prefix and whether one was ever set.
func (d Decor) Prefix() (RawString, bool) {
	if d.prefix == nil {
		return Empty, false
	}
	return *d.prefix, true
}

// Suffix returns the explicit suffix and whether one was ever set.
func (d Decor) Suffix() (RawString, bool) {
	if d.suffix == nil {
		return Empty, false
	}
	return *d.suffix, true
}

// SetPrefix explicitly sets the prefix, including to Empty.
func (d *Decor) SetPrefix(r RawString) {
	d.prefix = &r
}

// SetSuffix explicitly sets the suffix, including to Empty.
func (d *Decor) SetSuffix(r RawString) {
	d.suffix = &r
}

// ClearPrefix removes any explicit prefix, reverting to "use the encoder
// default".
func (d *Decor) ClearPrefix() {
	d.prefix = nil
}

// ClearSuffix removes any explicit suffix, reverting to "use the encoder
// default".
func (d *Decor) ClearSuffix() {
	d.suffix = nil
}

// EncodePrefix writes the prefix to buf, falling back to def if unset.
func (d Decor) EncodePrefix(buf *string, def string) {
	if d.prefix == nil {
		*buf += def
		return
	}
	d.prefix.EncodeWithDefault(buf, def)
}

// EncodeSuffix writes the suffix to buf, falling back to def if unset.
func (d Decor) EncodeSuffix(buf *string, def string) {
	if d.suffix == nil {
		*buf += def
		return
	}
	d.suffix.EncodeWithDefault(buf, def)
}

// Despan resolves both sides of d against input. See RawString.Despan.
func (d *Decor) Despan(input []byte) {
	if d.prefix != nil {
		d.prefix.Despan(input)
	}
	if d.suffix != nil {
		d.suffix.Despan(input)
	}
}

// Decorate is implemented by every structural and expression node; it
// exposes the node's surrounding trivia.
type Decorate interface {
	Decor() *Decor
}
