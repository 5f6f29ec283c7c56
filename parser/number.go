// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"strconv"

	"github.com/terramate-io/hclcst/primitive"
)

// scanNumber consumes digit1 ('.' digit1)? ((e|E) (+|-)? digit1)?,
// reporting whether the result should be parsed as a float (fraction or
// exponent present) or as a plain integer.
func scanNumber(c *cursor) (start, end int, isFloat bool, ok bool) {
	start = c.pos
	if !skipDigits(c) {
		return 0, 0, false, false
	}

	if b, o := c.peek(); o && b == '.' {
		mark := c.pos
		c.advance()
		if !skipDigits(c) {
			c.pos = mark
		} else {
			isFloat = true
		}
	}

	if b, o := c.peek(); o && (b == 'e' || b == 'E') {
		mark := c.pos
		c.advance()
		if b, o := c.peek(); o && (b == '+' || b == '-') {
			c.advance()
		}
		if !skipDigits(c) {
			c.pos = mark
		} else {
			isFloat = true
		}
	}

	return start, c.pos, isFloat, true
}

func skipDigits(c *cursor) bool {
	start := c.pos
	for {
		b, ok := c.peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		c.advance()
	}
	return c.pos != start
}

// parseNumber scans a number literal and converts it to primitive.Number,
// preferring an exact u64 integer when there is no fraction/exponent.
func parseNumber(c *cursor) (primitive.Number, *cursor, bool, error) {
	start, end, isFloat, ok := scanNumber(c)
	if !ok {
		return primitive.Number{}, c, false, nil
	}
	text := c.text(start)
	_ = end

	if !isFloat {
		if v, err := strconv.ParseUint(text, 10, 64); err == nil {
			return primitive.NewPosInt(v), c, true, nil
		}
		// Falls through to float parsing on integer overflow, matching
		// the grammar's tolerance for numbers wider than u64.
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return primitive.Number{}, c, true, err
	}
	n, ok := primitive.NewFloat(f)
	if !ok {
		return primitive.Number{}, c, true, errNonFiniteNumber
	}
	return n, c, true, nil
}
