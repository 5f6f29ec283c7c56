// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser

import "github.com/terramate-io/hclcst/syntax"

// renderPlainForIndent flattens a template's literal text into a single
// string for indent measurement, substituting a single non-whitespace
// placeholder byte for every interpolation/directive marker so that
// lines introduced by those constructs still count as having content.
func renderPlainForIndent(t *syntax.Template) string {
	var out []byte
	var walk func(t *syntax.Template)
	walk = func(t *syntax.Template) {
		for _, el := range t.Elements {
			switch e := el.(type) {
			case *syntax.Literal:
				out = append(out, e.Value...)
			case *syntax.EscapedLiteral, *syntax.Interpolation:
				out = append(out, 'X')
			case *syntax.IfDirective:
				out = append(out, 'X')
				walk(e.Consequent)
				if e.HasElse {
					out = append(out, 'X')
					walk(e.Alternative)
				}
				out = append(out, 'X')
			case *syntax.ForDirective:
				out = append(out, 'X')
				walk(e.Body)
				out = append(out, 'X')
			}
		}
	}
	walk(t)
	return string(out)
}

// minLeadingWhitespace returns the minimum run of leading spaces/tabs
// across every non-blank line of s.
func minLeadingWhitespace(s string) int {
	min := -1
	lineStart := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '\n' {
			continue
		}
		line := s[lineStart:i]
		n := 0
		for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
			n++
		}
		if n < len(line) && (min == -1 || n < min) {
			min = n
		}
		lineStart = i + 1
	}
	if min == -1 {
		return 0
	}
	return min
}

// dedentHeredoc strips up to n leading spaces/tabs from the start of
// every line in t's literal content, recursing into nested directive
// bodies so the whole heredoc body is treated as one line sequence.
func dedentHeredoc(t *syntax.Template, n int) {
	atLineStart := true
	var walk func(t *syntax.Template)
	walk = func(t *syntax.Template) {
		for _, el := range t.Elements {
			switch e := el.(type) {
			case *syntax.Literal:
				e.Value = dedentLines(e.Value, n, &atLineStart)
			case *syntax.EscapedLiteral, *syntax.Interpolation:
				atLineStart = false
			case *syntax.IfDirective:
				atLineStart = false
				walk(e.Consequent)
				if e.HasElse {
					atLineStart = false
					walk(e.Alternative)
				}
				atLineStart = false
			case *syntax.ForDirective:
				atLineStart = false
				walk(e.Body)
				atLineStart = false
			}
		}
	}
	walk(t)
}

func dedentLines(value string, n int, atLineStart *bool) string {
	var b []byte
	idx := 0
	for idx < len(value) {
		if *atLineStart {
			strip := 0
			for strip < n && idx+strip < len(value) && (value[idx+strip] == ' ' || value[idx+strip] == '\t') {
				strip++
			}
			idx += strip
			*atLineStart = false
			continue
		}
		start := idx
		for idx < len(value) && value[idx] != '\n' {
			idx++
		}
		b = append(b, value[start:idx]...)
		if idx < len(value) {
			b = append(b, '\n')
			idx++
			*atLineStart = true
		}
	}
	return string(b)
}
