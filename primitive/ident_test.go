// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package primitive_test

import (
	"testing"

	"github.com/terramate-io/hclcst/primitive"
)

func TestNewIdentifier(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "foo", true},
		{"underscore-prefixed", "_foo", true},
		{"hyphenated", "foo-bar", true},
		{"digit-start", "1foo", false},
		{"empty", "", false},
		{"true-keyword", "true", false},
		{"false-keyword", "false", false},
		{"null-keyword", "null", false},
		{"space", "foo bar", false},
	}

	for _, tc := range tcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := primitive.NewIdentifier(tc.input)
			if (err == nil) != tc.valid {
				t.Fatalf("NewIdentifier(%q): got err=%v, want valid=%v", tc.input, err, tc.valid)
			}
		})
	}
}

func TestSanitizeIdentifierFixpoint(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "1abc", "a b c", "foo", "héllo", "true", "---", "_"}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			once := primitive.SanitizeIdentifier(input)
			twice := primitive.SanitizeIdentifier(string(once))
			if once != twice {
				t.Fatalf("sanitize not idempotent: sanitize(%q)=%q, sanitize(that)=%q", input, once, twice)
			}
			if _, err := primitive.NewIdentifier(string(once)); err != nil {
				t.Fatalf("sanitize(%q)=%q is not a valid identifier: %v", input, once, err)
			}
		})
	}
}
