// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package encode

import (
	"strconv"

	"github.com/terramate-io/hclcst/syntax"
)

func encodeExpr(s *state, e syntax.Expression) {
	switch v := e.(type) {
	case *syntax.Null:
		s.writeString("null")
	case *syntax.Bool:
		if v.Value {
			s.writeString("true")
		} else {
			s.writeString("false")
		}
	case *syntax.LiteralNumber:
		s.writeString(v.Value.String())
	case *syntax.LiteralString:
		s.writeByte('"')
		encodeEscaped(s, v.Value)
		s.writeByte('"')
	case *syntax.Template:
		encodeQuotedTemplate(s, v)
	case *syntax.HeredocTemplate:
		encodeHeredoc(s, v)
	case *syntax.Parenthesis:
		s.writeByte('(')
		decorated(s, v.Inner.Decor(), noDecor, noDecor, func() { encodeExpr(s, v.Inner) })
		s.writeByte(')')
	case *syntax.Variable:
		s.writeString(v.Name.String())
	case *syntax.Traversal:
		encodeTraversal(s, v)
	case *syntax.UnaryOp:
		s.writeString(v.Operator.String())
		decorated(s, v.Operand.Decor(), noDecor, noDecor, func() { encodeExpr(s, v.Operand) })
	case *syntax.BinaryOp:
		decorated(s, v.LHS.Decor(), noDecor, noDecor, func() { encodeExpr(s, v.LHS) })
		s.writeString(v.Operator.String())
		decorated(s, v.RHS.Decor(), noDecor, noDecor, func() { encodeExpr(s, v.RHS) })
	case *syntax.Conditional:
		decorated(s, v.Cond.Decor(), noDecor, noDecor, func() { encodeExpr(s, v.Cond) })
		s.writeByte('?')
		decorated(s, v.TrueExpr.Decor(), noDecor, noDecor, func() { encodeExpr(s, v.TrueExpr) })
		s.writeByte(':')
		decorated(s, v.FalseExpr.Decor(), noDecor, noDecor, func() { encodeExpr(s, v.FalseExpr) })
	case *syntax.Array:
		encodeArray(s, v)
	case *syntax.Object:
		encodeObject(s, v)
	case *syntax.FuncCall:
		encodeFuncCall(s, v)
	case *syntax.ForExpr:
		encodeForExpr(s, v)
	}
}

func encodeTraversal(s *state, t *syntax.Traversal) {
	decorated(s, t.Source.Decor(), noDecor, noDecor, func() { encodeExpr(s, t.Source) })
	for _, op := range t.Operators {
		decorated(s, op.Decor(), noDecor, noDecor, func() { encodeTraversalOperator(s, op) })
	}
}

func encodeTraversalOperator(s *state, op syntax.TraversalOperator) {
	switch op.Kind {
	case syntax.OpGetAttr:
		s.writeByte('.')
		s.writeString(op.Name.String())
	case syntax.OpIndex:
		s.writeByte('[')
		decorated(s, op.Index.Decor(), noDecor, noDecor, func() { encodeExpr(s, op.Index) })
		s.writeByte(']')
	case syntax.OpLegacyIndex:
		s.writeByte('.')
		s.writeString(strconv.FormatUint(op.LegacyIndex, 10))
	case syntax.OpAttrSplat:
		s.writeString(".*")
	case syntax.OpFullSplat:
		s.writeString("[*]")
	}
}

func encodeArray(s *state, a *syntax.Array) {
	s.writeByte('[')
	for i, v := range a.Values {
		decorated(s, v.Decor(), noDecor, noDecor, func() { encodeExpr(s, v) })
		if i < len(a.Values)-1 {
			s.writeByte(',')
		}
	}
	if a.TrailingComma {
		s.writeByte(',')
	}
	a.Trailing.EncodeWithDefault(&s.buf, noDecor)
	s.writeByte(']')
}

func encodeObject(s *state, o *syntax.Object) {
	s.writeByte('{')
	for _, item := range o.Items {
		encodeObjectItem(s, item)
	}
	o.Trailing.EncodeWithDefault(&s.buf, noDecor)
	s.writeByte('}')
}

func encodeObjectItem(s *state, item syntax.ObjectItem) {
	decorated(s, item.Decor(), noDecor, noDecor, func() {
		decorated(s, item.Key.Decor(), noDecor, noDecor, func() { encodeExpr(s, item.Key.Expr) })
		switch item.Assignment {
		case syntax.AssignEquals:
			s.writeByte('=')
		case syntax.AssignColon:
			s.writeByte(':')
		}
		decorated(s, item.Value.Decor(), noDecor, noDecor, func() { encodeExpr(s, item.Value) })
		switch item.Terminator {
		case syntax.TerminatorComma:
			s.writeByte(',')
		case syntax.TerminatorNewline:
			s.writeByte('\n')
		}
	})
}

func encodeFuncCall(s *state, f *syntax.FuncCall) {
	for _, ns := range f.Namespace {
		s.writeString(ns.String())
		s.writeString("::")
	}
	s.writeString(f.Name.String())
	s.writeByte('(')
	for i, arg := range f.Args {
		decorated(s, arg.Decor(), noDecor, noDecor, func() { encodeExpr(s, arg) })
		if f.ExpandFinal && i == len(f.Args)-1 {
			s.writeString("...")
		} else if i < len(f.Args)-1 {
			s.writeByte(',')
		}
	}
	if f.TrailingComma {
		s.writeByte(',')
	}
	f.Trailing.EncodeWithDefault(&s.buf, noDecor)
	s.writeByte(')')
}

func encodeForExpr(s *state, f *syntax.ForExpr) {
	isObject := f.KeyExpr != nil
	if isObject {
		s.writeByte('{')
	} else {
		s.writeByte('[')
	}

	s.writeString("for")
	if f.Intro.KeyVar != nil {
		s.writeByte(' ')
		s.writeString(f.Intro.KeyVar.String())
		s.writeByte(',')
	}
	s.writeByte(' ')
	s.writeString(f.Intro.ValueVar.String())
	s.writeString(" in")
	decorated(s, f.Intro.CollectionExpr.Decor(), noDecor, noDecor, func() { encodeExpr(s, f.Intro.CollectionExpr) })
	s.writeByte(':')

	if isObject {
		decorated(s, f.KeyExpr.Decor(), noDecor, noDecor, func() { encodeExpr(s, f.KeyExpr) })
		s.writeString("=>")
		decorated(s, f.ValueExpr.Decor(), noDecor, noDecor, func() { encodeExpr(s, f.ValueExpr) })
		if f.Grouping {
			s.writeString("...")
		}
	} else {
		decorated(s, f.ValueExpr.Decor(), noDecor, noDecor, func() { encodeExpr(s, f.ValueExpr) })
	}

	if f.Cond != nil {
		decorated(s, f.Cond.Decor(), noDecor, noDecor, func() {
			s.writeString("if")
			decorated(s, f.Cond.Expr.Decor(), noDecor, noDecor, func() { encodeExpr(s, f.Cond.Expr) })
		})
	}

	if isObject {
		s.writeByte('}')
	} else {
		s.writeByte(']')
	}
}
