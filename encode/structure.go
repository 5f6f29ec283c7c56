// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package encode

import "github.com/terramate-io/hclcst/syntax"

func encodeBody(s *state, b *syntax.Body) {
	for _, st := range b.Structures {
		decorated(s, st.Decor(), noDecor, noDecor, func() { encodeStructure(s, st) })
		s.writeByte('\n')
	}
	b.Trailing.EncodeWithDefault(&s.buf, noDecor)
}

func encodeStructure(s *state, st syntax.Structure) {
	switch v := st.(type) {
	case *syntax.Attribute:
		encodeAttribute(s, v)
	case *syntax.Block:
		encodeBlock(s, v)
	}
}

func encodeAttribute(s *state, a *syntax.Attribute) {
	s.writeString(a.Name.String())
	a.NameSuffix.EncodeWithDefault(&s.buf, singleSpace)
	s.writeByte('=')
	// a.Value.Decor() is left unset by the parser whenever the source had
	// no trivia there (see parser.parseStructure); default to noDecor so
	// plain encode reproduces that exactly. The formatter always sets an
	// explicit single space here before a canonical encode pass.
	decorated(s, a.Value.Decor(), noDecor, noDecor, func() { encodeExpr(s, a.Value) })
}

func encodeBlock(s *state, b *syntax.Block) {
	s.writeString(b.Type.String())
	b.TypeSuffix.EncodeWithDefault(&s.buf, singleSpace)
	for _, label := range b.Labels {
		decorated(s, label.Decor(), noDecor, noDecor, func() { encodeBlockLabel(s, label) })
	}
	s.writeByte('{')

	body := b.Body
	decorated(s, body.Decor(), noDecor, noDecor, func() {
		if body.PreferOneline && len(body.Structures) <= 1 {
			if len(body.Structures) == 1 {
				if attr, ok := body.Structures[0].(*syntax.Attribute); ok {
					decorated(s, attr.Decor(), noDecor, noDecor, func() { encodeAttribute(s, attr) })
				}
			}
		} else {
			s.writeByte('\n')
			encodeBody(s, body)
		}
	})
	s.writeByte('}')
}

func encodeBlockLabel(s *state, label syntax.BlockLabel) {
	switch label.Kind {
	case syntax.LabelString:
		s.writeByte('"')
		encodeEscaped(s, label.Value)
		s.writeByte('"')
	case syntax.LabelIdent:
		s.writeString(label.Value)
	}
}
