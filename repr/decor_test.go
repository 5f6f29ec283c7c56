// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package repr_test

import (
	"testing"

	"github.com/terramate-io/hclcst/repr"
)

// TestDecorTriState exercises the three states described on repr.Decor:
// unset (fall back to def), explicitly empty (render nothing), and
// explicitly set (render the owned text).
func TestDecorTriState(t *testing.T) {
	t.Parallel()

	t.Run("unset prefix falls back to default", func(t *testing.T) {
		t.Parallel()
		var d repr.Decor
		var buf string
		d.EncodePrefix(&buf, " ")
		if buf != " " {
			t.Errorf("EncodePrefix = %q, want %q", buf, " ")
		}
	})

	t.Run("explicit empty prefix overrides default", func(t *testing.T) {
		t.Parallel()
		var d repr.Decor
		d.SetPrefix(repr.Empty)
		var buf string
		d.EncodePrefix(&buf, " ")
		if buf != "" {
			t.Errorf("EncodePrefix = %q, want empty", buf)
		}
	})

	t.Run("explicit text prefix ignores default", func(t *testing.T) {
		t.Parallel()
		var d repr.Decor
		d.SetPrefix(repr.FromString("/* x */"))
		var buf string
		d.EncodePrefix(&buf, " ")
		if buf != "/* x */" {
			t.Errorf("EncodePrefix = %q, want %q", buf, "/* x */")
		}
	})

	t.Run("ClearPrefix reverts to default", func(t *testing.T) {
		t.Parallel()
		var d repr.Decor
		d.SetPrefix(repr.Empty)
		d.ClearPrefix()
		var buf string
		d.EncodePrefix(&buf, " ")
		if buf != " " {
			t.Errorf("EncodePrefix after ClearPrefix = %q, want %q", buf, " ")
		}
	})
}

func TestDecorPrefixSuffixReportSetness(t *testing.T) {
	t.Parallel()

	var d repr.Decor
	if _, ok := d.Prefix(); ok {
		t.Error("zero-value Decor reports a set prefix")
	}
	d.SetSuffix(repr.Empty)
	if _, ok := d.Suffix(); !ok {
		t.Error("SetSuffix(Empty) should still report as set")
	}
}

func TestDecorDespanResolvesSpannedSides(t *testing.T) {
	t.Parallel()

	src := []byte("  hi  ")
	d := repr.NewDecor(repr.FromSpan(repr.NewSpan(0, 2)), repr.FromSpan(repr.NewSpan(4, 6)))
	d.Despan(src)

	prefix, _ := d.Prefix()
	suffix, _ := d.Suffix()
	if prefix.String() != "  " {
		t.Errorf("prefix = %q, want %q", prefix.String(), "  ")
	}
	if suffix.String() != "  " {
		t.Errorf("suffix = %q, want %q", suffix.String(), "  ")
	}
}
