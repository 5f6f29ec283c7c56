// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package format_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/terramate-io/hclcst/encode"
	"github.com/terramate-io/hclcst/format"
	"github.com/terramate-io/hclcst/parser"
)

func formatted(t *testing.T, src string, opts ...format.Option) string {
	t.Helper()
	body, err := parser.ParseBody([]byte(src))
	if err != nil {
		t.Fatalf("ParseBody(%q): %v", src, err)
	}
	format.New(opts...).Body(body)
	var sb strings.Builder
	if err := encode.Body(&sb, body); err != nil {
		t.Fatalf("encode.Body: %v", err)
	}
	return sb.String()
}

func TestFormatCanonicalOutput(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "collapse spacing around equals",
			src:  "a=1\n",
			want: "a = 1\n",
		},
		{
			name: "collapse extra spacing",
			src:  "a    =      1\n",
			want: "a = 1\n",
		},
		{
			name: "indent nested block",
			src:  "block {\na = 1\n}\n",
			want: "block {\n  a = 1\n}\n",
		},
		{
			name: "reindent deeply nested block",
			src:  "a {\nb {\nc = 1\n}\n}\n",
			want: "a {\n  b {\n    c = 1\n  }\n}\n",
		},
		{
			name: "collapse blank line runs to one",
			src:  "a = 1\n\n\n\nb = 2\n",
			want: "a = 1\n\nb = 2\n",
		},
		{
			name: "label gets single space before brace",
			src:  "block\"label\"{\na = 1\n}\n",
			want: "block \"label\" {\n  a = 1\n}\n",
		},
		{
			name: "short array stays inline",
			src:  "a = [1,2,3]\n",
			want: "a = [1, 2, 3]\n",
		},
		{
			name: "multiline array gets one element per line",
			src:  "a = [1,\n2,\n3]\n",
			want: "a = [\n  1,\n  2,\n  3,\n]\n",
		},
		{
			name: "object gets canonical spacing",
			src:  "a = {b=1,c=2}\n",
			want: "a = { b = 1, c = 2 }\n",
		},
	}

	for _, tc := range tcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := formatted(t, tc.src)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("format(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

// TestFormatIdempotent checks spec's invariant that formatting is a
// fixpoint: formatting already-formatted output must not change it.
func TestFormatIdempotent(t *testing.T) {
	t.Parallel()

	srcs := []string{
		"a=1\n",
		"block {\na=1\nb=2\n}\n",
		"a = [1,\n2,\n3]\n",
		"a = {b=1,\nc=2,\n}\n",
		"block \"x\" \"y\" {\n}\n",
		"a = 1 # comment\n",
		"# leading\na = 1\n",
	}

	for _, src := range srcs {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			once := formatted(t, src)
			twice := formatted(t, once)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("format not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestFormatWithIndentOption(t *testing.T) {
	t.Parallel()

	got := formatted(t, "block {\na = 1\n}\n", format.WithIndent("\t"))
	want := "block {\n\ta = 1\n}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("format with tab indent mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatWithInitialIndentLevel(t *testing.T) {
	t.Parallel()

	got := formatted(t, "a = 1\n", format.WithInitialIndentLevel(2))
	want := "    a = 1\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("format with initial indent level mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatFuncCallSpacing(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "collapse spacing between arguments",
			src:  "a = foo(1,2,   3)\n",
			want: "a = foo(1, 2, 3)\n",
		},
		{
			name: "multiline call gets one arg per line with trailing comma",
			src:  "a = foo(1,\n2,\n3)\n",
			want: "a = foo(\n  1,\n  2,\n  3,\n)\n",
		},
		{
			name: "expand final arg suppresses trailing comma",
			src:  "a = foo(1,\n2...)\n",
			want: "a = foo(\n  1,\n  2...\n)\n",
		},
	}

	for _, tc := range tcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := formatted(t, tc.src)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("format(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestFormatForExprSpacing(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "list form collapses spacing",
			src:  "a = [for   v   in   list:v]\n",
			want: "a = [for v in list: v]\n",
		},
		{
			name: "object form collapses spacing",
			src:  "a = {for   k,v   in   m:k=>v}\n",
			want: "a = {for k, v in m: k=> v}\n",
		},
		{
			name: "condition clause spacing",
			src:  "a = [for v in list:v if   v>0]\n",
			want: "a = [for v in list: v if v>0]\n",
		},
	}

	for _, tc := range tcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := formatted(t, tc.src)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("format(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestFormatPreservesComments(t *testing.T) {
	t.Parallel()

	got := formatted(t, "# header\nblock {\n  # inner\n  a=1\n}\n")
	if !strings.Contains(got, "# header") {
		t.Errorf("lost leading comment: %q", got)
	}
	if !strings.Contains(got, "# inner") {
		t.Errorf("lost inner comment: %q", got)
	}
}
