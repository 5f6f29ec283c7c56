// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package format

import (
	"github.com/terramate-io/hclcst/repr"
	"github.com/terramate-io/hclcst/syntax"
)

// formatExpr recurses into e's children, normalizing the decor of any
// Array, Object, FuncCall or ForExpr it finds along the way. Expression
// kinds with no layout rule of their own (operators, traversals,
// parenthesis) are walked but left otherwise untouched.
func formatExpr(f *Formatter, e syntax.Expression, level int) {
	switch v := e.(type) {
	case *syntax.Parenthesis:
		formatExpr(f, v.Inner, level)
	case *syntax.UnaryOp:
		formatExpr(f, v.Operand, level)
	case *syntax.BinaryOp:
		formatExpr(f, v.LHS, level)
		formatExpr(f, v.RHS, level)
	case *syntax.Conditional:
		formatExpr(f, v.Cond, level)
		formatExpr(f, v.TrueExpr, level)
		formatExpr(f, v.FalseExpr, level)
	case *syntax.Traversal:
		formatExpr(f, v.Source, level)
		for _, op := range v.Operators {
			if op.Kind == syntax.OpIndex {
				formatExpr(f, op.Index, level)
			}
		}
	case *syntax.Array:
		formatArray(f, v, level)
	case *syntax.Object:
		formatObject(f, v, level)
	case *syntax.FuncCall:
		formatFuncCall(f, v, level)
	case *syntax.ForExpr:
		formatForExpr(f, v, level)
	case *syntax.Template:
		formatTemplate(f, v, level)
	case *syntax.HeredocTemplate:
		formatTemplate(f, v.Template, level)
	}
}

func formatArray(f *Formatter, a *syntax.Array, level int) {
	multi := isMultiline(a.Trailing.String())
	for _, v := range a.Values {
		if p, ok := v.Decor().Prefix(); ok && isMultiline(p.String()) {
			multi = true
		}
		if s, ok := v.Decor().Suffix(); ok && isMultiline(s.String()) {
			multi = true
		}
	}

	childIndent := f.at(level + 1)
	closingIndent := f.at(level)

	for i, v := range a.Values {
		oldPrefix, _ := v.Decor().Prefix()
		if multi {
			v.Decor().SetPrefix(repr.FromString(reindentOwnLine(oldPrefix.String(), childIndent)))
		} else {
			def := " "
			if i == 0 {
				def = ""
			}
			v.Decor().SetPrefix(repr.FromString(normalizeInline(oldPrefix.String(), def)))
		}
		v.Decor().SetSuffix(repr.Empty)
		formatExpr(f, v, level+1)
	}

	if multi {
		a.TrailingComma = true
		a.Trailing = repr.FromString(reindentOwnLine(a.Trailing.String(), closingIndent))
	} else {
		a.TrailingComma = false
		a.Trailing = repr.FromString(normalizeInline(a.Trailing.String(), ""))
	}
}

func formatObject(f *Formatter, o *syntax.Object, level int) {
	multi := isMultiline(o.Trailing.String())
	for i := range o.Items {
		if p, ok := o.Items[i].Decor().Prefix(); ok && isMultiline(p.String()) {
			multi = true
		}
		if s, ok := o.Items[i].Decor().Suffix(); ok && isMultiline(s.String()) {
			multi = true
		}
	}

	childIndent := f.at(level + 1)
	closingIndent := f.at(level)
	last := len(o.Items) - 1

	for i := range o.Items {
		item := &o.Items[i]

		oldPrefix, _ := item.Decor().Prefix()
		if multi {
			item.Decor().SetPrefix(repr.FromString(reindentOwnLine(oldPrefix.String(), childIndent)))
			item.Terminator = syntax.TerminatorNewline
		} else {
			item.Decor().SetPrefix(repr.FromString(normalizeInline(oldPrefix.String(), " ")))
			if i < last {
				item.Terminator = syntax.TerminatorComma
			} else {
				item.Terminator = syntax.TerminatorNone
			}
		}
		item.Decor().SetSuffix(repr.Empty)

		item.Assignment = syntax.AssignEquals

		oldKeyPrefix, _ := item.Key.Decor().Prefix()
		item.Key.Decor().SetPrefix(repr.FromString(normalizeInline(oldKeyPrefix.String(), "")))
		oldKeySuffix, _ := item.Key.Decor().Suffix()
		item.Key.Decor().SetSuffix(repr.FromString(normalizeInline(oldKeySuffix.String(), " ")))
		formatExpr(f, item.Key.Expr, level+1)

		oldValPrefix, _ := item.Value.Decor().Prefix()
		item.Value.Decor().SetPrefix(repr.FromString(normalizeInline(oldValPrefix.String(), " ")))
		formatExpr(f, item.Value, level+1)
	}

	if multi {
		o.Trailing = repr.FromString(reindentOwnLine(o.Trailing.String(), closingIndent))
	} else {
		def := ""
		if len(o.Items) > 0 {
			def = " "
		}
		o.Trailing = repr.FromString(normalizeInline(o.Trailing.String(), def))
	}
}

func formatFuncCall(f *Formatter, fc *syntax.FuncCall, level int) {
	multi := isMultiline(fc.Trailing.String())
	for _, a := range fc.Args {
		if p, ok := a.Decor().Prefix(); ok && isMultiline(p.String()) {
			multi = true
		}
		if s, ok := a.Decor().Suffix(); ok && isMultiline(s.String()) {
			multi = true
		}
	}

	childIndent := f.at(level + 1)
	closingIndent := f.at(level)

	for i, a := range fc.Args {
		oldPrefix, _ := a.Decor().Prefix()
		if multi {
			a.Decor().SetPrefix(repr.FromString(reindentOwnLine(oldPrefix.String(), childIndent)))
		} else {
			def := ""
			if i > 0 {
				def = " "
			}
			a.Decor().SetPrefix(repr.FromString(normalizeInline(oldPrefix.String(), def)))
		}
		a.Decor().SetSuffix(repr.Empty)
		formatExpr(f, a, level+1)
	}

	if multi {
		fc.TrailingComma = !fc.ExpandFinal
		fc.Trailing = repr.FromString(reindentOwnLine(fc.Trailing.String(), closingIndent))
	} else {
		fc.TrailingComma = false
		fc.Trailing = repr.FromString(normalizeInline(fc.Trailing.String(), ""))
	}
}

func formatForExpr(f *Formatter, fe *syntax.ForExpr, level int) {
	oldCollPrefix, _ := fe.Intro.CollectionExpr.Decor().Prefix()
	fe.Intro.CollectionExpr.Decor().SetPrefix(repr.FromString(normalizeInline(oldCollPrefix.String(), " ")))
	formatExpr(f, fe.Intro.CollectionExpr, level)

	if fe.KeyExpr != nil {
		oldKeyPrefix, _ := fe.KeyExpr.Decor().Prefix()
		fe.KeyExpr.Decor().SetPrefix(repr.FromString(normalizeInline(oldKeyPrefix.String(), " ")))
		formatExpr(f, fe.KeyExpr, level)
	}

	oldValPrefix, _ := fe.ValueExpr.Decor().Prefix()
	fe.ValueExpr.Decor().SetPrefix(repr.FromString(normalizeInline(oldValPrefix.String(), " ")))
	formatExpr(f, fe.ValueExpr, level)

	if fe.Cond != nil {
		oldCondPrefix, _ := fe.Cond.Decor().Prefix()
		fe.Cond.Decor().SetPrefix(repr.FromString(normalizeInline(oldCondPrefix.String(), " ")))

		oldCondExprPrefix, _ := fe.Cond.Expr.Decor().Prefix()
		fe.Cond.Expr.Decor().SetPrefix(repr.FromString(normalizeInline(oldCondExprPrefix.String(), " ")))
		formatExpr(f, fe.Cond.Expr, level)
	}
}

func formatTemplate(f *Formatter, t *syntax.Template, level int) {
	for _, el := range t.Elements {
		switch v := el.(type) {
		case *syntax.Interpolation:
			formatInline(f, v.Expr, level)
		case *syntax.IfDirective:
			formatInline(f, v.Cond, level)
			formatTemplate(f, v.Consequent, level)
			if v.HasElse {
				formatTemplate(f, v.Alternative, level)
			}
		case *syntax.ForDirective:
			formatInline(f, v.CollectionExpr, level)
			formatTemplate(f, v.Body, level)
		}
	}
}

// formatInline normalizes both sides of e's decor to a single space, the
// rule for expressions embedded directly inside `${ }`/`%{ }` markers.
func formatInline(f *Formatter, e syntax.Expression, level int) {
	oldPrefix, _ := e.Decor().Prefix()
	e.Decor().SetPrefix(repr.FromString(normalizeInline(oldPrefix.String(), " ")))
	oldSuffix, _ := e.Decor().Suffix()
	e.Decor().SetSuffix(repr.FromString(normalizeInline(oldSuffix.String(), " ")))
	formatExpr(f, e, level)
}
