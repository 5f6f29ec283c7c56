// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package encode

import (
	"strings"

	"github.com/terramate-io/hclcst/syntax"
)

const (
	interpolationStart   = "${"
	directiveStart       = "%{"
	escapedInterpolation = "$${"
	escapedDirective     = "%%{"
)

func encodeQuotedTemplate(s *state, t *syntax.Template) {
	s.writeByte('"')
	prevEscape := s.escape
	s.escape = true
	encodeTemplate(s, t)
	s.escape = prevEscape
	s.writeByte('"')
}

func encodeTemplate(s *state, t *syntax.Template) {
	for _, el := range t.Elements {
		encodeElement(s, el)
	}
}

func encodeElement(s *state, el syntax.Element) {
	switch v := el.(type) {
	case *syntax.Literal:
		if s.escape {
			encodeEscaped(s, v.Value)
		} else {
			s.writeString(v.Value)
		}
	case *syntax.EscapedLiteral:
		switch v.Kind {
		case syntax.EscapedInterpolation:
			s.writeString(escapedInterpolation)
		case syntax.EscapedDirective:
			s.writeString(escapedDirective)
		}
	case *syntax.Interpolation:
		encodeInterpolation(s, v)
	case *syntax.IfDirective:
		encodeIfDirective(s, v)
	case *syntax.ForDirective:
		encodeForDirective(s, v)
	}
}

func encodeStrip(s *state, startMarker string, strip func() (start, end bool), f func()) {
	s.writeString(startMarker)
	st, en := strip()
	if st {
		s.writeByte('~')
	}
	f()
	if en {
		s.writeByte('~')
	}
	s.writeByte('}')
}

func encodeInterpolation(s *state, i *syntax.Interpolation) {
	// i.Expr.Decor() is unset whenever the source had no trivia on that
	// side (parser.parseInterpolation only calls SetPrefix/SetSuffix for
	// non-empty trivia); noDecor here keeps plain encode byte-exact. The
	// formatter always pads both sides with a single space explicitly.
	encodeStrip(s, interpolationStart, func() (bool, bool) { return i.Strip.StripStart(), i.Strip.StripEnd() }, func() {
		decorated(s, i.Expr.Decor(), noDecor, noDecor, func() { encodeExpr(s, i.Expr) })
	})
}

func encodeIfDirective(s *state, d *syntax.IfDirective) {
	encodeStrip(s, directiveStart, func() (bool, bool) { return d.CondStrip.StripStart(), d.CondStrip.StripEnd() }, func() {
		s.writeString(" if")
		decorated(s, d.Cond.Decor(), noDecor, noDecor, func() { encodeExpr(s, d.Cond) })
	})
	encodeTemplate(s, d.Consequent)
	if d.HasElse {
		encodeStrip(s, directiveStart, func() (bool, bool) { return d.ElseStrip.StripStart(), d.ElseStrip.StripEnd() }, func() {
			s.writeString(" else ")
		})
		encodeTemplate(s, d.Alternative)
	}
	encodeStrip(s, directiveStart, func() (bool, bool) { return d.EndStrip.StripStart(), d.EndStrip.StripEnd() }, func() {
		s.writeString(" endif ")
	})
}

func encodeForDirective(s *state, d *syntax.ForDirective) {
	encodeStrip(s, directiveStart, func() (bool, bool) { return d.IntroStrip.StripStart(), d.IntroStrip.StripEnd() }, func() {
		s.writeString(" for")
		if d.KeyVar != nil {
			s.writeByte(' ')
			s.writeString(d.KeyVar.String())
			s.writeByte(',')
		}
		s.writeByte(' ')
		s.writeString(d.ValueVar.String())
		s.writeString(" in")
		decorated(s, d.CollectionExpr.Decor(), noDecor, noDecor, func() { encodeExpr(s, d.CollectionExpr) })
	})
	encodeTemplate(s, d.Body)
	encodeStrip(s, directiveStart, func() (bool, bool) { return d.EndStrip.StripStart(), d.EndStrip.StripEnd() }, func() {
		s.writeString(" endfor ")
	})
}

func encodeHeredoc(s *state, h *syntax.HeredocTemplate) {
	s.writeString("<<")
	if h.Kind == syntax.HeredocIndented {
		s.writeByte('-')
	}
	s.writeString(h.Delimiter.String())
	s.writeByte('\n')

	inner := &state{escape: false}
	encodeTemplate(inner, h.Template)
	body := inner.buf
	if h.Kind == syntax.HeredocIndented && h.Indent > 0 {
		body = indentBy(body, h.Indent)
	}
	s.writeString(body)

	if h.Kind == syntax.HeredocIndented && h.Indent > 0 {
		s.writeString(strings.Repeat(" ", h.Indent))
	}
	s.writeString(h.Delimiter.String())
}

// indentBy prepends n spaces to every non-blank line of s, including the
// first, mirroring the stripping dedentHeredoc performed at parse time.
func indentBy(s string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	trailingNewline := strings.HasSuffix(s, "\n")
	if trailingNewline {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	out := strings.Join(lines, "\n")
	if trailingNewline {
		out += "\n"
	}
	return out
}
