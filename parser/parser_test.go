// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/terramate-io/hclcst/encode"
	"github.com/terramate-io/hclcst/parser"
)

// roundTrip parses src as a body and re-encodes it, asserting the result
// is byte-identical to src. This is the core invariant of the whole
// pipeline: encode(parse(src)) == src for any syntactically valid src.
func roundTrip(t *testing.T, src string) {
	t.Helper()
	body, err := parser.ParseBody([]byte(src))
	if err != nil {
		t.Fatalf("ParseBody(%q): %v", src, err)
	}
	var sb strings.Builder
	if err := encode.Body(&sb, body); err != nil {
		t.Fatalf("encode.Body: %v", err)
	}
	if diff := cmp.Diff(src, sb.String()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripBodies(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"single attribute", "a = 1\n"},
		{"no space around equals", "a=1\n"},
		{"extra space", "a   =   1\n"},
		{"tab indentation", "block {\n\ta = 1\n}\n"},
		{"leading comment", "# hello\na = 1\n"},
		{"inline comment", "a = 1 # trailing\n"},
		{"block comment prefix", "/* c */a = 1\n"},
		{"blank lines preserved", "a = 1\n\n\nb = 2\n"},
		{"nested block", "resource \"aws_instance\" \"x\" {\n  ami = \"abc\"\n\n  tags = {\n    Name = \"x\"\n  }\n}\n"},
		{"labeled block no space", "block\"label\"{\n}\n"},
		{"oneline body", "block { a = 1 }\n"},
		{"array literal", "a = [1, 2, 3]\n"},
		{"array no spaces", "a=[1,2,3]\n"},
		{"array trailing comma", "a = [\n  1,\n  2,\n]\n"},
		{"object literal", "a = { b = 1, c = 2 }\n"},
		{"object colon", "a = { b: 1 }\n"},
		{"function call", "a = max(1, 2, 3)\n"},
		{"function call expand", "a = max(vals...)\n"},
		{"namespaced function", "a = ns::max(1)\n"},
		{"for expr list", "a = [for k, v in x : v if k != \"\"]\n"},
		{"for expr object", "a = {for k, v in x : k => v}\n"},
		{"conditional", "a = x ? 1 : 2\n"},
		{"binary precedence", "a = 1 + 2 * 3\n"},
		{"traversal", "a = foo.bar[0].baz\n"},
		{"splat attr", "a = foo.*.bar\n"},
		{"splat full", "a = foo[*].bar\n"},
		{"unary", "a = -x\n"},
		{"parenthesis", "a = (1 + 2) * 3\n"},
		{"string template", "a = \"hello ${name}\"\n"},
		{"string escape", "a = \"line\\nbreak\"\n"},
		{"heredoc", "a = <<EOT\nhello\nEOT\n"},
		{"heredoc indented", "a = <<-EOT\n  hello\n  EOT\n"},
		{"if directive", "a = \"%{if x}yes%{endif}\"\n"},
		{"for directive", "a = \"%{for v in x}${v}%{endfor}\"\n"},
		{"strip markers", "a = \"${~x~}\"\n"},
	}

	for _, tc := range tcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			roundTrip(t, tc.src)
		})
	}
}

func TestRoundTripExpr(t *testing.T) {
	t.Parallel()

	srcs := []string{
		"1",
		"1+2",
		"1 + 2",
		"true",
		"null",
		"\"s\"",
		"[1,2]",
		"{a=1}",
		"a.b.c",
	}

	for _, src := range srcs {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			expr, err := parser.ParseExpr([]byte(src))
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v", src, err)
			}
			var sb strings.Builder
			if err := encode.Expression(&sb, expr); err != nil {
				t.Fatalf("encode.Expression: %v", err)
			}
			if diff := cmp.Diff(src, sb.String()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBodyErrorLocation(t *testing.T) {
	t.Parallel()

	_, err := parser.ParseBody([]byte("a = \n"))
	if err == nil {
		t.Fatal("expected a parse error for a dangling '='")
	}
	perr, ok := err.(*parser.Error)
	if !ok {
		t.Fatalf("expected *parser.Error, got %T", err)
	}
	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1", perr.Line)
	}
	if perr.Message == "" {
		t.Error("Message is empty")
	}
}

func TestParseBodyTrailingGarbage(t *testing.T) {
	t.Parallel()

	_, err := parser.ParseBody([]byte("a = 1\n}\n"))
	if err == nil {
		t.Fatal("expected an error for an unbalanced closing brace")
	}
}
