// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package repr_test

import (
	"testing"

	"github.com/terramate-io/hclcst/repr"
)

func TestFromStringCollapsesEmpty(t *testing.T) {
	t.Parallel()
	if repr.FromString("") != repr.Empty {
		t.Error("FromString(\"\") should collapse to Empty")
	}
}

func TestFromSpanCollapsesEmptySpan(t *testing.T) {
	t.Parallel()
	zero := repr.NewSpan(5, 5)
	if repr.FromSpan(zero) != repr.Empty {
		t.Error("FromSpan of a zero-length span should collapse to Empty")
	}
}

func TestRawStringDespan(t *testing.T) {
	t.Parallel()
	src := []byte("hello world")
	r := repr.FromSpan(repr.NewSpan(6, 11))
	if r.String() != "" {
		t.Errorf("pre-despan String() = %q, want empty", r.String())
	}
	r.Despan(src)
	if r.String() != "world" {
		t.Errorf("post-despan String() = %q, want %q", r.String(), "world")
	}
}

func TestRawStringDespanPanicsOutOfBounds(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Despan to panic on an out-of-bounds span")
		}
	}()
	r := repr.FromSpan(repr.NewSpan(0, 100))
	r.Despan([]byte("short"))
}

func TestRawStringEncodeWithDefault(t *testing.T) {
	t.Parallel()

	t.Run("owned text ignores default", func(t *testing.T) {
		t.Parallel()
		r := repr.FromString("x")
		var buf string
		r.EncodeWithDefault(&buf, "fallback")
		if buf != "x" {
			t.Errorf("buf = %q, want %q", buf, "x")
		}
	})

	t.Run("explicit empty ignores default", func(t *testing.T) {
		t.Parallel()
		var buf string
		repr.Empty.EncodeWithDefault(&buf, "fallback")
		if buf != "" {
			t.Errorf("buf = %q, want empty", buf)
		}
	})
}
