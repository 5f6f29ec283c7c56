// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax

import "github.com/terramate-io/hclcst/repr"

// node is embedded by every concrete CST type to provide the span and
// decor bookkeeping common to all of them.
type node struct {
	span  repr.Span
	decor repr.Decor
}

func (n *node) Span() repr.Span {
	return n.span
}

func (n *node) SetSpan(s repr.Span) {
	n.span = s
}

func (n *node) Decor() *repr.Decor {
	return &n.decor
}
