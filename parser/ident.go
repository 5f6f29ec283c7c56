// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"github.com/smasher164/xid"
	"github.com/terramate-io/hclcst/primitive"
)

// scanIdent consumes a run of XID-start followed by XID-continue (or
// `-`, which HCL identifiers additionally permit) characters, returning
// the [start, end) byte span and whether anything was consumed.
func scanIdent(c *cursor) (start, end int, ok bool) {
	start = c.pos
	r, size := c.peekRune()
	if size == 0 || !(xid.Start(r) || r == '_') {
		return 0, 0, false
	}
	c.advanceN(size)

	for {
		r, size := c.peekRune()
		if size == 0 || !(xid.Continue(r) || r == '-') {
			break
		}
		c.advanceN(size)
	}

	return start, c.pos, true
}

// parseIdent scans an identifier and validates it is not a reserved
// word, constructing the primitive.Identifier unchecked since the scan
// already guarantees valid XID structure.
func parseIdent(c *cursor) (primitive.Identifier, bool) {
	start, end, ok := scanIdent(c)
	if !ok {
		return "", false
	}
	text := c.text(start)
	_ = end
	if _, err := primitive.NewIdentifier(text); err != nil {
		// Reserved words (true/false/null) still scan as identifiers;
		// callers that need a keyword check this case themselves.
		return primitive.NewIdentifierUnchecked(text), false
	}
	return primitive.NewIdentifierUnchecked(text), true
}
