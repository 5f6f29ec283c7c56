// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser_test

import (
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/terramate-io/hclcst/parser"
)

func TestParseBodyErrorDiagnostics(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name string
		src  string
		want *parser.Error
	}{
		{
			name: "missing value after equals",
			src:  "a = \n",
			want: &parser.Error{
				Line:       1,
				Column:     5,
				Offset:     4,
				Message:    "invalid expression; expected expression",
				SourceLine: "a = ",
			},
		},
		{
			name: "error on second line",
			src:  "a = 1\nb = \n",
			want: &parser.Error{
				Line:       2,
				Column:     5,
				Offset:     10,
				Message:    "invalid expression; expected expression",
				SourceLine: "b = ",
			},
		},
	}

	for _, tc := range tcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := parser.ParseBody([]byte(tc.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			got, ok := err.(*parser.Error)
			if !ok {
				t.Fatalf("error type = %T, want *parser.Error", err)
			}
			if diff := deep.Equal(got, tc.want); diff != nil {
				t.Errorf("Error struct mismatch: %v", diff)
			}
		})
	}
}

func TestErrorStringRendersCaretUnderline(t *testing.T) {
	t.Parallel()

	_, err := parser.ParseBody([]byte("a = \n"))
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "line 1, column 5") {
		t.Errorf("Error() = %q, missing location", msg)
	}
	if !strings.Contains(msg, "^---") {
		t.Errorf("Error() = %q, missing caret underline", msg)
	}
}
