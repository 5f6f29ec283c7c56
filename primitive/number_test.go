// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package primitive_test

import (
	"math"
	"testing"

	"github.com/terramate-io/hclcst/primitive"
)

func TestNewFloatRejectsNonFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, ok := primitive.NewFloat(v); ok {
			t.Fatalf("NewFloat(%v): expected rejection", v)
		}
	}

	if _, ok := primitive.NewFloat(1.5); !ok {
		t.Fatal("NewFloat(1.5): expected success")
	}
}

func TestNumberEqualAcrossKinds(t *testing.T) {
	t.Parallel()

	posTwo := primitive.NewPosInt(2)
	floatTwo, _ := primitive.NewFloat(2.0)

	if !posTwo.Equal(floatTwo) {
		t.Fatalf("expected PosInt(2) to equal Float(2.0)")
	}
}

func TestBinaryOperatorPrecedence(t *testing.T) {
	t.Parallel()

	if primitive.OpMul.Precedence() <= primitive.OpPlus.Precedence() {
		t.Fatal("expected * to bind tighter than +")
	}
	if primitive.OpPlus.Precedence() <= primitive.OpLess.Precedence() {
		t.Fatal("expected + to bind tighter than <")
	}
	if primitive.OpLess.Associativity() != primitive.AssocNone {
		t.Fatal("expected < to be non-associative")
	}
	if primitive.OpPlus.Associativity() != primitive.AssocLeft {
		t.Fatal("expected + to be left-associative")
	}
}
