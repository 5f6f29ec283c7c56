// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package syntax_test

import (
	"testing"

	"github.com/terramate-io/hclcst/parser"
	"github.com/terramate-io/hclcst/repr"
	"github.com/terramate-io/hclcst/syntax"
)

// TestSpanContainment walks a parsed tree and checks spec's span-
// containment invariant: every child's span lies within its parent's.
func TestSpanContainment(t *testing.T) {
	t.Parallel()

	src := `resource "aws_instance" "x" {
  ami = "abc"
  count = 1 + 2 * 3

  tags = {
    Name = "x"
  }

  ports = [80, 443]
}
`
	body, err := parser.ParseBody([]byte(src))
	if err != nil {
		t.Fatalf("ParseBody: %v", err)
	}

	walkBody(t, body, body.Span())
}

func walkBody(t *testing.T, b *syntax.Body, parent repr.Span) {
	t.Helper()
	for _, st := range b.Structures {
		assertContains(t, parent, st.Span())
		switch v := st.(type) {
		case *syntax.Attribute:
			assertContains(t, st.Span(), v.Value.Span())
			walkExpr(t, v.Value, st.Span())
		case *syntax.Block:
			assertContains(t, st.Span(), v.Body.Span())
			walkBody(t, v.Body, st.Span())
		}
	}
}

func walkExpr(t *testing.T, e syntax.Expression, parent repr.Span) {
	t.Helper()
	assertContains(t, parent, e.Span())
	switch v := e.(type) {
	case *syntax.BinaryOp:
		walkExpr(t, v.LHS, e.Span())
		walkExpr(t, v.RHS, e.Span())
	case *syntax.Array:
		for _, el := range v.Values {
			walkExpr(t, el, e.Span())
		}
	case *syntax.Object:
		for _, item := range v.Items {
			walkExpr(t, item.Key.Expr, e.Span())
			walkExpr(t, item.Value, e.Span())
		}
	}
}

func assertContains(t *testing.T, parent, child repr.Span) {
	t.Helper()
	if !parent.HasSpan() || !child.HasSpan() {
		return
	}
	if !parent.Contains(child) {
		t.Errorf("span containment violated: parent %v does not contain child %v", parent, child)
	}
}
