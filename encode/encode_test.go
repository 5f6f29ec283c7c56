// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package encode_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/terramate-io/hclcst/encode"
	"github.com/terramate-io/hclcst/parser"
)

func TestExpressionEscaping(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name string
		src  string
	}{
		{"newline", `"a\nb"`},
		{"tab", `"a\tb"`},
		{"quote", `"a\"b"`},
		{"backslash", `"a\\b"`},
	}

	for _, tc := range tcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			expr, err := parser.ParseExpr([]byte(tc.src))
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v", tc.src, err)
			}
			var sb strings.Builder
			if err := encode.Expression(&sb, expr); err != nil {
				t.Fatalf("encode.Expression: %v", err)
			}
			if diff := cmp.Diff(tc.src, sb.String()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStructureRoundTrip(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name string
		src  string
	}{
		{"attribute", "a = 1\n"},
		{"nested block", "block \"x\" {\n  a = 1\n}\n"},
		{"oneline block", "block { a = 1 }\n"},
		{"array", "a = [1, 2, 3]\n"},
		{"object with colon assignment", "a = {\n  b: 1\n}\n"},
		{"func call with namespace and expand", "a = core::join(\",\", list...)\n"},
		{"list for-expression", "a = [for v in list : v if v > 0]\n"},
		{"object for-expression with grouping", "a = {for k, v in m : k => v...}\n"},
	}

	for _, tc := range tcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			body, err := parser.ParseBody([]byte(tc.src))
			if err != nil {
				t.Fatalf("ParseBody(%q): %v", tc.src, err)
			}
			var sb strings.Builder
			if err := encode.Body(&sb, body); err != nil {
				t.Fatalf("encode.Body: %v", err)
			}
			if diff := cmp.Diff(tc.src, sb.String()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTemplateEncoding(t *testing.T) {
	t.Parallel()

	src := "hello ${name}, you have ${count} items"
	tmpl, err := parser.ParseTemplate([]byte(src))
	if err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	var sb strings.Builder
	if err := encode.Template(&sb, tmpl); err != nil {
		t.Fatalf("encode.Template: %v", err)
	}
	if diff := cmp.Diff(src, sb.String()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
