// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

// Package primitive implements the small, dependency-light value types
// shared by the rest of this module: identifiers, numbers, template strip
// markers and the HCL operator set.
package primitive

import (
	"fmt"
	"strings"

	"github.com/smasher164/xid"
)

// Identifier is a validated HCL identifier: a non-empty string whose first
// character is an XID-Start code point or underscore, and whose remaining
// characters are XID-Continue code points or a hyphen. The HCL keywords
// true, false and null are not valid identifiers.
type Identifier string

// reserved holds the HCL literal keywords that can never be identifiers.
var reserved = map[string]bool{
	"true":  true,
	"false": true,
	"null":  true,
}

// NewIdentifier validates input and returns it as an Identifier, or an
// InvalidIdentifierError describing why it was rejected.
func NewIdentifier(input string) (Identifier, error) {
	if !isValidIdentifier(input) {
		return "", &InvalidIdentifierError{Value: input}
	}
	return Identifier(input), nil
}

// SanitizeIdentifier rewrites input into a valid Identifier by replacing
// invalid characters with underscores, prefixing a leading underscore if
// the first rune would otherwise be a valid continuation character but not
// a valid start, and falling back to "_" for empty input.
//
// SanitizeIdentifier is a fixpoint: sanitizing an already-sanitary string
// returns it unchanged.
func SanitizeIdentifier(input string) Identifier {
	if input == "" {
		return Identifier("_")
	}

	var b strings.Builder
	b.Grow(len(input) + 1)

	runes := []rune(input)
	first := runes[0]

	switch {
	case xid.Start(first) || first == '_':
		b.WriteRune(first)
	case xid.Continue(first):
		// Valid continuation but not a valid start (e.g. a digit): prefix
		// it rather than discarding it.
		b.WriteByte('_')
		b.WriteRune(first)
	default:
		b.WriteByte('_')
	}

	for _, r := range runes[1:] {
		if xid.Continue(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	out := b.String()
	if reserved[out] {
		out = "_" + out
	}
	return Identifier(out)
}

// NewIdentifierUnchecked wraps input as an Identifier without validation.
// Callers must only use it for input already known to be valid, e.g. text
// recognized by the parser's identifier grammar.
func NewIdentifierUnchecked(input string) Identifier {
	return Identifier(input)
}

// String returns the identifier's textual form.
func (id Identifier) String() string {
	return string(id)
}

func isValidIdentifier(input string) bool {
	if input == "" || reserved[input] {
		return false
	}
	for i, r := range input {
		if i == 0 {
			if !xid.Start(r) && r != '_' {
				return false
			}
			continue
		}
		if !xid.Continue(r) && r != '-' {
			return false
		}
	}
	return true
}

// InvalidIdentifierError is returned by NewIdentifier when its input isn't
// a valid HCL identifier.
type InvalidIdentifierError struct {
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier: %q", e.Value)
}
