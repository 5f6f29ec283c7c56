// Copyright 2024 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package primitive

import (
	"fmt"
	"math"
	"math/big"
)

// NumberKind tags which representation a Number holds.
type NumberKind uint8

const (
	// NumberPosInt holds an unsigned integer literal with no sign, no
	// fractional part and no exponent (e.g. "42").
	NumberPosInt NumberKind = iota
	// NumberNegInt holds a negated integer literal produced by applying
	// unary minus to a PosInt that fits in an int64.
	NumberNegInt
	// NumberFloat holds a finite floating point literal (a fractional
	// part and/or an exponent was present in the source).
	NumberFloat
)

// Number is the tagged union described by spec §3.2: a positive integer, a
// negative integer, or a finite float. NaN and infinities are rejected by
// NewFloat and never appear in a valid Number.
type Number struct {
	kind  NumberKind
	pos   uint64
	neg   int64
	float float64
}

// NewPosInt builds a Number holding an unsigned integer.
func NewPosInt(v uint64) Number {
	return Number{kind: NumberPosInt, pos: v}
}

// NewNegInt builds a Number holding a signed, negative integer.
func NewNegInt(v int64) Number {
	return Number{kind: NumberNegInt, neg: v}
}

// NewFloat builds a Number holding v, or reports ok=false if v is NaN or
// infinite (HCL numbers must be finite).
func NewFloat(v float64) (n Number, ok bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}, false
	}
	return Number{kind: NumberFloat, float: v}, true
}

// Kind reports which representation n holds.
func (n Number) Kind() NumberKind {
	return n.kind
}

// AsUint64 returns the value as an unsigned integer along with whether n is
// a NumberPosInt.
func (n Number) AsUint64() (uint64, bool) {
	return n.pos, n.kind == NumberPosInt
}

// AsInt64 returns the value as a signed integer along with whether n is a
// NumberNegInt.
func (n Number) AsInt64() (int64, bool) {
	return n.neg, n.kind == NumberNegInt
}

// AsFloat64 returns the value as a float64 along with whether n is a
// NumberFloat.
func (n Number) AsFloat64() (float64, bool) {
	return n.float, n.kind == NumberFloat
}

// Negate returns -n. Negating a PosInt that fits in an int64 yields a
// NegInt; otherwise (including floats) it yields a Float, matching how the
// unary minus operator is applied to number literals during parsing.
func (n Number) Negate() Number {
	switch n.kind {
	case NumberPosInt:
		if n.pos <= uint64(math.MaxInt64) {
			return NewNegInt(-int64(n.pos))
		}
		bf, _ := new(big.Float).SetUint64(n.pos).Float64()
		f, _ := NewFloat(-bf)
		return f
	case NumberNegInt:
		return NewPosInt(uint64(-n.neg))
	default:
		f, _ := NewFloat(-n.float)
		return f
	}
}

// Float64 returns n's value widened to a float64, regardless of kind.
func (n Number) Float64() float64 {
	switch n.kind {
	case NumberPosInt:
		return float64(n.pos)
	case NumberNegInt:
		return float64(n.neg)
	default:
		return n.float
	}
}

// String renders n using the same textual form the encoder emits for it.
func (n Number) String() string {
	switch n.kind {
	case NumberPosInt:
		return fmt.Sprintf("%d", n.pos)
	case NumberNegInt:
		return fmt.Sprintf("%d", n.neg)
	default:
		return formatFloat(n.float)
	}
}

func formatFloat(f float64) string {
	// %g with -1 precision yields the shortest round-trippable decimal,
	// matching how float literals are re-serialized elsewhere in the
	// ecosystem (e.g. encoding/json).
	s := fmt.Sprintf("%g", f)
	return s
}

// Equal reports whether n and other denote the same numeric value,
// comparing across kinds (e.g. PosInt(2) equals Float(2.0)).
func (n Number) Equal(other Number) bool {
	if n.kind == other.kind {
		switch n.kind {
		case NumberPosInt:
			return n.pos == other.pos
		case NumberNegInt:
			return n.neg == other.neg
		default:
			return n.float == other.float
		}
	}
	return n.Float64() == other.Float64()
}

// Less reports whether n orders before other under standard numeric
// comparison, regardless of kind.
func (n Number) Less(other Number) bool {
	return n.Float64() < other.Float64()
}
