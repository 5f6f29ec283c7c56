// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

// Package syntax defines the concrete syntax tree: the node types that a
// parse produces and an encode walks back into text. Every node embeds a
// repr.Decor for its surrounding trivia and a repr.Span for its source
// range, and implements Despan so the tree can be detached from the input
// buffer it was parsed from.
package syntax

import "github.com/terramate-io/hclcst/repr"

// Despan is implemented by every node that may hold repr.RawString spans
// referencing the original input. Calling Despan promotes all such spans
// to owned strings, after which the node no longer depends on input.
type Despan interface {
	Despan(input []byte)
}

// Node is the common interface satisfied by every CST element: structural
// items, expressions and template elements alike.
type Node interface {
	repr.Spanner
	repr.Decorate
	Despan
}
