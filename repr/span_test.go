// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package repr_test

import (
	"testing"

	"github.com/terramate-io/hclcst/repr"
)

func TestSpanContains(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name  string
		outer repr.Span
		inner repr.Span
		want  bool
	}{
		{"equal spans contain", repr.NewSpan(0, 10), repr.NewSpan(0, 10), true},
		{"proper subset", repr.NewSpan(0, 10), repr.NewSpan(2, 8), true},
		{"touches left edge", repr.NewSpan(0, 10), repr.NewSpan(0, 5), true},
		{"touches right edge", repr.NewSpan(0, 10), repr.NewSpan(5, 10), true},
		{"extends past end", repr.NewSpan(0, 10), repr.NewSpan(5, 11), false},
		{"extends before start", repr.NewSpan(5, 10), repr.NewSpan(4, 9), false},
		{"disjoint", repr.NewSpan(0, 5), repr.NewSpan(6, 10), false},
		{"unset outer", repr.Span{}, repr.NewSpan(0, 1), false},
		{"unset inner", repr.NewSpan(0, 10), repr.Span{}, false},
	}

	for _, tc := range tcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.outer.Contains(tc.inner); got != tc.want {
				t.Errorf("Span(%v).Contains(%v) = %v, want %v", tc.outer, tc.inner, got, tc.want)
			}
		})
	}
}

func TestSpanLen(t *testing.T) {
	t.Parallel()
	s := repr.NewSpan(3, 9)
	if s.Len() != 6 {
		t.Errorf("Len() = %d, want 6", s.Len())
	}
}

func TestSpanHasSpan(t *testing.T) {
	t.Parallel()
	if (repr.Span{}).HasSpan() {
		t.Error("zero-value Span reports HasSpan() = true")
	}
	if !repr.NewSpan(0, 0).HasSpan() {
		t.Error("NewSpan(0, 0) reports HasSpan() = false")
	}
}

func TestNewSpanPanicsOnInverted(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewSpan(5, 2) to panic")
		}
	}()
	repr.NewSpan(5, 2)
}
