// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"strconv"

	"github.com/terramate-io/hclcst/primitive"
	"github.com/terramate-io/hclcst/syntax"
)

// parseExpr parses a full expression: a binary-operator-resolved
// operand optionally followed by a `? :` conditional tail.
func (p *parser) parseExpr() (syntax.Expression, error) {
	start := p.c.pos
	cond, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}

	mark := p.c.pos
	suffixStart := p.c.pos
	sp(p.c)
	condSuffix := p.c.rawSince(suffixStart)
	if !p.c.consumeByte('?') {
		p.c.pos = mark
		return cond, nil
	}
	if condSuffix.String() != "" {
		cond.Decor().SetSuffix(condSuffix)
	}

	truePrefixStart := p.c.pos
	sp(p.c)
	truePrefix := p.c.rawSince(truePrefixStart)
	trueExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if truePrefix.String() != "" {
		trueExpr.Decor().SetPrefix(truePrefix)
	}

	trueSuffixStart := p.c.pos
	sp(p.c)
	trueSuffix := p.c.rawSince(trueSuffixStart)
	if !p.c.consumeByte(':') {
		return nil, p.ctx.withLabel("conditional").expect(":").fail(p.src, p.c.pos, nil)
	}
	if trueSuffix.String() != "" {
		trueExpr.Decor().SetSuffix(trueSuffix)
	}

	falsePrefixStart := p.c.pos
	sp(p.c)
	falsePrefix := p.c.rawSince(falsePrefixStart)
	falseExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if falsePrefix.String() != "" {
		falseExpr.Decor().SetPrefix(falsePrefix)
	}

	c := &syntax.Conditional{Cond: cond, TrueExpr: trueExpr, FalseExpr: falseExpr}
	c.SetSpan(p.c.span(start))
	return c, nil
}

// parseBinary resolves a chain of binary operators via precedence
// climbing, rejecting an unparenthesized chain of same-precedence
// non-associative (comparison) operators.
func (p *parser) parseBinary(minPrec int) (syntax.Expression, error) {
	start := p.c.pos
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	prevAssoc := primitive.AssocLeft
	prevPrec := -1

	for {
		mark := p.c.pos
		opPrefixStart := p.c.pos
		sp(p.c)

		op, opLen, ok := peekBinaryOp(p.c)
		if !ok || op.Precedence() < minPrec {
			p.c.pos = mark
			break
		}
		if op.Associativity() == primitive.AssocNone && prevAssoc == primitive.AssocNone && op.Precedence() == prevPrec {
			return nil, p.ctx.withLabel("expression").
				expect("parentheses around chained comparison operators").
				fail(p.src, p.c.pos, nil)
		}

		opPrefix := p.c.rawSince(opPrefixStart)
		if opPrefix.String() != "" {
			lhs.Decor().SetSuffix(opPrefix)
		}
		p.c.advanceN(opLen)

		rhsPrefixStart := p.c.pos
		sp(p.c)
		rhsPrefix := p.c.rawSince(rhsPrefixStart)

		rhs, err := p.parseBinary(op.Precedence() + 1)
		if err != nil {
			return nil, err
		}
		if rhsPrefix.String() != "" {
			rhs.Decor().SetPrefix(rhsPrefix)
		}

		bin := &syntax.BinaryOp{LHS: lhs, Operator: op, RHS: rhs}
		bin.SetSpan(p.c.span(start))
		lhs = bin
		prevAssoc = op.Associativity()
		prevPrec = op.Precedence()
	}

	return lhs, nil
}

// peekBinaryOp matches the longest binary operator token at the
// cursor, without consuming it.
func peekBinaryOp(c *cursor) (primitive.BinaryOperator, int, bool) {
	b, ok := c.peek()
	if !ok {
		return 0, 0, false
	}
	n, hasNext := c.peekN(1)

	switch b {
	case '=':
		if hasNext && n == '=' {
			return primitive.OpEq, 2, true
		}
	case '!':
		if hasNext && n == '=' {
			return primitive.OpNotEq, 2, true
		}
	case '<':
		if hasNext && n == '=' {
			return primitive.OpLessEq, 2, true
		}
		return primitive.OpLess, 1, true
	case '>':
		if hasNext && n == '=' {
			return primitive.OpGreaterEq, 2, true
		}
		return primitive.OpGreater, 1, true
	case '+':
		return primitive.OpPlus, 1, true
	case '-':
		return primitive.OpMinus, 1, true
	case '*':
		return primitive.OpMul, 1, true
	case '/':
		return primitive.OpDiv, 1, true
	case '%':
		return primitive.OpMod, 1, true
	case '&':
		if hasNext && n == '&' {
			return primitive.OpAnd, 2, true
		}
	case '|':
		if hasNext && n == '|' {
			return primitive.OpOr, 2, true
		}
	}
	return 0, 0, false
}

// parseUnary parses an optional `-`/`!` prefix operator applied to a
// traversal-resolved operand.
func (p *parser) parseUnary() (syntax.Expression, error) {
	start := p.c.pos
	b, ok := p.c.peek()
	if ok && (b == '-' || b == '!') {
		op := primitive.OpNeg
		if b == '!' {
			op = primitive.OpNot
		}
		p.c.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		u := &syntax.UnaryOp{Operator: op, Operand: operand}
		u.SetSpan(p.c.span(start))
		return u, nil
	}
	return p.parseTraversal()
}

// parseTraversal parses an atom followed by zero or more access
// operators (`.name`, `.0`, `.*`, `[expr]`, `[*]`).
func (p *parser) parseTraversal() (syntax.Expression, error) {
	start := p.c.pos
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	var ops []syntax.TraversalOperator
	for {
		mark := p.c.pos
		b, ok := p.c.peek()
		if !ok {
			break
		}

		if b == '.' {
			opStart := p.c.pos
			p.c.advance()
			if nb, ok := p.c.peek(); ok && nb == '.' {
				// `..` begins a `...` expansion marker, not a traversal.
				p.c.pos = mark
				break
			}
			if nb, ok := p.c.peek(); ok && nb == '*' {
				p.c.advance()
				op := syntax.TraversalOperator{Kind: syntax.OpAttrSplat}
				op.SetSpan(p.c.span(opStart))
				ops = append(ops, op)
				continue
			}
			if nb, ok := p.c.peek(); ok && nb >= '0' && nb <= '9' {
				numStart := p.c.pos
				skipDigits(p.c)
				v, _ := strconv.ParseUint(p.c.text(numStart), 10, 64)
				op := syntax.TraversalOperator{Kind: syntax.OpLegacyIndex, LegacyIndex: v}
				op.SetSpan(p.c.span(opStart))
				ops = append(ops, op)
				continue
			}
			name, _ := parseIdent(p.c)
			if name == "" {
				return nil, p.ctx.withLabel("traversal").expect("identifier").fail(p.src, p.c.pos, nil)
			}
			op := syntax.TraversalOperator{Kind: syntax.OpGetAttr, Name: name}
			op.SetSpan(p.c.span(opStart))
			ops = append(ops, op)
			continue
		}

		if b == '[' {
			opStart := p.c.pos
			p.c.advance()
			sp(p.c)
			if nb, ok := p.c.peek(); ok && nb == '*' {
				p.c.advance()
				sp(p.c)
				if !p.c.consumeByte(']') {
					return nil, p.ctx.withLabel("splat").expect("]").fail(p.src, p.c.pos, nil)
				}
				op := syntax.TraversalOperator{Kind: syntax.OpFullSplat}
				op.SetSpan(p.c.span(opStart))
				ops = append(ops, op)
				continue
			}

			idxExpr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			sp(p.c)
			if !p.c.consumeByte(']') {
				return nil, p.ctx.withLabel("index").expect("]").fail(p.src, p.c.pos, nil)
			}
			op := syntax.TraversalOperator{Kind: syntax.OpIndex, Index: idxExpr}
			op.SetSpan(p.c.span(opStart))
			ops = append(ops, op)
			continue
		}

		p.c.pos = mark
		break
	}

	if len(ops) == 0 {
		return atom, nil
	}
	t := &syntax.Traversal{Source: atom, Operators: ops}
	t.SetSpan(p.c.span(start))
	return t, nil
}

func (p *parser) parseAtom() (syntax.Expression, error) {
	start := p.c.pos
	b, ok := p.c.peek()
	if !ok {
		return nil, p.ctx.withLabel("expression").expect("expression").fail(p.src, p.c.pos, nil)
	}

	switch {
	case b >= '0' && b <= '9':
		n, _, _, err := parseNumber(p.c)
		if err != nil {
			return nil, p.ctx.withLabel("number").fail(p.src, start, err)
		}
		lit := &syntax.LiteralNumber{Value: n}
		lit.SetSpan(p.c.span(start))
		return lit, nil

	case b == '"':
		return p.parseQuotedExpr()

	case b == '<':
		if n, ok := p.c.peekN(1); ok && n == '<' {
			return p.parseHeredoc()
		}
		return nil, p.ctx.withLabel("expression").expect("expression").fail(p.src, p.c.pos, nil)

	case b == '(':
		p.c.advance()
		prefixStart := p.c.pos
		sp(p.c)
		prefix := p.c.rawSince(prefixStart)
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if prefix.String() != "" {
			inner.Decor().SetPrefix(prefix)
		}
		suffixStart := p.c.pos
		sp(p.c)
		suffix := p.c.rawSince(suffixStart)
		if suffix.String() != "" {
			inner.Decor().SetSuffix(suffix)
		}
		if !p.c.consumeByte(')') {
			return nil, p.ctx.withLabel("parenthesized expression").expect(")").fail(p.src, p.c.pos, nil)
		}
		paren := &syntax.Parenthesis{Inner: inner}
		paren.SetSpan(p.c.span(start))
		return paren, nil

	case b == '[':
		return p.parseArrayOrFor()

	case b == '{':
		return p.parseObjectOrFor()

	default:
		if isIdentStart(b) {
			return p.parseIdentExpr()
		}
		return nil, p.ctx.withLabel("expression").expect("expression").fail(p.src, p.c.pos, nil)
	}
}

func (p *parser) peekKeyword(kw string) bool {
	mark := p.c.pos
	name, _ := parseIdent(p.c)
	p.c.pos = mark
	return string(name) == kw
}

func (p *parser) parseIdentExpr() (syntax.Expression, error) {
	start := p.c.pos
	var segments []primitive.Identifier

	name, _ := parseIdent(p.c)
	if name == "" {
		return nil, p.ctx.withLabel("expression").expect("identifier").fail(p.src, p.c.pos, nil)
	}
	segments = append(segments, name)

	for {
		mark := p.c.pos
		if p.c.consumeLiteral("::") {
			next, ok := parseIdent(p.c)
			if next == "" {
				p.c.pos = mark
				break
			}
			_ = ok
			segments = append(segments, next)
			continue
		}
		break
	}

	last := segments[len(segments)-1]
	if len(segments) == 1 {
		switch last {
		case "true":
			v := &syntax.Bool{Value: true}
			v.SetSpan(p.c.span(start))
			return v, nil
		case "false":
			v := &syntax.Bool{Value: false}
			v.SetSpan(p.c.span(start))
			return v, nil
		case "null":
			v := &syntax.Null{}
			v.SetSpan(p.c.span(start))
			return v, nil
		}
	}

	if b, ok := p.c.peek(); ok && b == '(' {
		return p.parseFuncCallTail(start, segments)
	}

	if len(segments) > 1 {
		return nil, p.ctx.withLabel("expression").expect("function call").fail(p.src, p.c.pos, nil)
	}

	v := &syntax.Variable{Name: last}
	v.SetSpan(p.c.span(start))
	return v, nil
}

func (p *parser) parseFuncCallTail(start int, segments []primitive.Identifier) (syntax.Expression, error) {
	p.c.advance() // '('
	name := segments[len(segments)-1]
	ns := segments[:len(segments)-1]
	fc := &syntax.FuncCall{Namespace: ns, Name: name}

	for {
		prefixStart := p.c.pos
		ws(p.c)
		prefix := p.c.rawSince(prefixStart)

		if b, ok := p.c.peek(); ok && b == ')' {
			fc.Trailing = prefix
			p.c.advance()
			fc.SetSpan(p.c.span(start))
			return fc, nil
		}

		if p.c.consumeLiteral("...") {
			ws(p.c)
			fc.ExpandFinal = true
			if !p.c.consumeByte(')') {
				return nil, p.ctx.withLabel("function call").expect(")").fail(p.src, p.c.pos, nil)
			}
			fc.SetSpan(p.c.span(start))
			return fc, nil
		}

		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if prefix.String() != "" {
			arg.Decor().SetPrefix(prefix)
		}
		fc.Args = append(fc.Args, arg)

		trailStart := p.c.pos
		ws(p.c)
		if p.c.consumeLiteral("...") {
			ws(p.c)
			fc.ExpandFinal = true
			fc.TrailingComma = false
			if !p.c.consumeByte(')') {
				return nil, p.ctx.withLabel("function call").expect(")").fail(p.src, p.c.pos, nil)
			}
			fc.SetSpan(p.c.span(start))
			return fc, nil
		}
		if p.c.consumeByte(',') {
			fc.TrailingComma = true
			continue
		}
		fc.TrailingComma = false

		p.c.pos = trailStart
		ws(p.c)
		if p.c.consumeByte(')') {
			fc.SetSpan(p.c.span(start))
			return fc, nil
		}
		return nil, p.ctx.withLabel("function call").expect(",").expect(")").fail(p.src, p.c.pos, nil)
	}
}

func (p *parser) parseArrayOrFor() (syntax.Expression, error) {
	start := p.c.pos
	p.c.advance() // '['
	mark := p.c.pos
	ws(p.c)
	if p.peekKeyword("for") {
		return p.parseForExprTail(start, false)
	}
	p.c.pos = mark

	arr := &syntax.Array{}
	for {
		prefixStart := p.c.pos
		ws(p.c)
		prefix := p.c.rawSince(prefixStart)

		if b, ok := p.c.peek(); ok && b == ']' {
			arr.Trailing = prefix
			p.c.advance()
			arr.SetSpan(p.c.span(start))
			return arr, nil
		}

		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if prefix.String() != "" {
			val.Decor().SetPrefix(prefix)
		}
		arr.Values = append(arr.Values, val)

		trailStart := p.c.pos
		ws(p.c)
		if p.c.consumeByte(',') {
			arr.TrailingComma = true
			continue
		}
		arr.TrailingComma = false
		p.c.pos = trailStart
		ws(p.c)
		if !p.c.consumeByte(']') {
			return nil, p.ctx.withLabel("array").expect(",").expect("]").fail(p.src, p.c.pos, nil)
		}
		arr.SetSpan(p.c.span(start))
		return arr, nil
	}
}

func (p *parser) parseObjectOrFor() (syntax.Expression, error) {
	start := p.c.pos
	p.c.advance() // '{'
	mark := p.c.pos
	ws(p.c)
	if p.peekKeyword("for") {
		return p.parseForExprTail(start, true)
	}
	p.c.pos = mark

	obj := &syntax.Object{}
	for {
		prefixStart := p.c.pos
		ws(p.c)
		prefix := p.c.rawSince(prefixStart)

		if b, ok := p.c.peek(); ok && b == '}' {
			obj.Trailing = prefix
			p.c.advance()
			obj.SetSpan(p.c.span(start))
			return obj, nil
		}

		itemStart := p.c.pos
		key, err := p.parseObjectKey()
		if err != nil {
			return nil, err
		}
		if prefix.String() != "" {
			key.Decor().SetPrefix(prefix)
		}

		keySuffixStart := p.c.pos
		sp(p.c)
		key.Decor().SetSuffix(p.c.rawSince(keySuffixStart))
		assign, err := p.parseObjectAssignment()
		if err != nil {
			return nil, err
		}

		valPrefixStart := p.c.pos
		sp(p.c)
		valPrefix := p.c.rawSince(valPrefixStart)
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if valPrefix.String() != "" {
			value.Decor().SetPrefix(valPrefix)
		}

		item := syntax.ObjectItem{Key: *key, Assignment: assign, Value: value}

		trailStart := p.c.pos
		sp(p.c)
		switch {
		case p.c.consumeByte(','):
			item.Terminator = syntax.TerminatorComma
		default:
			if b, ok := p.c.peek(); ok && (b == '\n' || b == '\r') {
				item.Terminator = syntax.TerminatorNewline
				consumeNewline(p.c)
			} else {
				p.c.pos = trailStart
				item.Terminator = syntax.TerminatorNone
			}
		}
		item.SetSpan(p.c.span(itemStart))
		obj.Items = append(obj.Items, item)

		if item.Terminator == syntax.TerminatorNone {
			ws(p.c)
			obj.Trailing = p.c.rawSince(trailStart)
			if !p.c.consumeByte('}') {
				return nil, p.ctx.withLabel("object").expect("}").fail(p.src, p.c.pos, nil)
			}
			obj.SetSpan(p.c.span(start))
			return obj, nil
		}
	}
}

func consumeNewline(c *cursor) {
	if c.consumeByte('\n') {
		return
	}
	if c.consumeByte('\r') {
		c.consumeByte('\n')
	}
}

func (p *parser) parseObjectAssignment() (syntax.ObjectValueAssignment, error) {
	b, ok := p.c.peek()
	if !ok {
		return 0, p.ctx.withLabel("object item").expect("=").expect(":").fail(p.src, p.c.pos, nil)
	}
	switch b {
	case '=':
		p.c.advance()
		return syntax.AssignEquals, nil
	case ':':
		p.c.advance()
		return syntax.AssignColon, nil
	default:
		return 0, p.ctx.withLabel("object item").expect("=").expect(":").fail(p.src, p.c.pos, nil)
	}
}

func (p *parser) parseObjectKey() (*syntax.ObjectKey, error) {
	start := p.c.pos
	b, ok := p.c.peek()
	if !ok {
		return nil, p.ctx.withLabel("object key").expect("expression").fail(p.src, p.c.pos, nil)
	}

	if isIdentStart(b) {
		mark := p.c.pos
		name, valid := parseIdent(p.c)
		if valid {
			lookahead := p.c.pos
			sp(p.c)
			nb, nok := p.c.peek()
			p.c.pos = lookahead
			if nok && nb == '(' {
				p.c.pos = mark
			} else {
				v := &syntax.Variable{Name: name}
				v.SetSpan(p.c.span(mark))
				k := &syntax.ObjectKey{Kind: syntax.ObjectKeyIdent, Expr: v}
				k.SetSpan(p.c.span(start))
				return k, nil
			}
		} else {
			p.c.pos = mark
		}
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	k := &syntax.ObjectKey{Kind: syntax.ObjectKeyExpr, Expr: expr}
	k.SetSpan(p.c.span(start))
	return k, nil
}

func (p *parser) parseForExprTail(start int, isObject bool) (syntax.Expression, error) {
	introStart := p.c.pos
	parseIdent(p.c) // "for"
	sp(p.c)

	firstVar, _ := parseIdent(p.c)
	if firstVar == "" {
		return nil, p.ctx.withLabel("for expression").expect("identifier").fail(p.src, p.c.pos, nil)
	}
	sp(p.c)

	var keyVar *primitive.Identifier
	valueVar := firstVar
	if p.c.consumeByte(',') {
		sp(p.c)
		second, _ := parseIdent(p.c)
		kv := firstVar
		keyVar = &kv
		valueVar = second
		sp(p.c)
	}

	if !p.peekKeyword("in") {
		return nil, p.ctx.withLabel("for expression").expect("in").fail(p.src, p.c.pos, nil)
	}
	parseIdent(p.c)

	collPrefixStart := p.c.pos
	sp(p.c)
	collPrefix := p.c.rawSince(collPrefixStart)

	collection, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if collPrefix.String() != "" {
		collection.Decor().SetPrefix(collPrefix)
	}

	collSuffixStart := p.c.pos
	sp(p.c)
	collSuffix := p.c.rawSince(collSuffixStart)
	if collSuffix.String() != "" {
		collection.Decor().SetSuffix(collSuffix)
	}
	if !p.c.consumeByte(':') {
		return nil, p.ctx.withLabel("for expression").expect(":").fail(p.src, p.c.pos, nil)
	}

	intro := syntax.ForIntro{KeyVar: keyVar, ValueVar: valueVar, CollectionExpr: collection}
	intro.SetSpan(p.c.span(introStart))

	prefixStart := p.c.pos
	ws(p.c)
	prefix := p.c.rawSince(prefixStart)
	firstExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if prefix.String() != "" {
		firstExpr.Decor().SetPrefix(prefix)
	}

	fe := &syntax.ForExpr{Intro: intro}
	closeByte := byte(']')

	if isObject {
		closeByte = '}'
		keySuffixStart := p.c.pos
		ws(p.c)
		keySuffix := p.c.rawSince(keySuffixStart)
		if keySuffix.String() != "" {
			firstExpr.Decor().SetSuffix(keySuffix)
		}
		if !p.c.consumeLiteral("=>") {
			return nil, p.ctx.withLabel("for expression").expect("=>").fail(p.src, p.c.pos, nil)
		}
		valuePrefixStart := p.c.pos
		ws(p.c)
		valuePrefix := p.c.rawSince(valuePrefixStart)
		valueExpr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if valuePrefix.String() != "" {
			valueExpr.Decor().SetPrefix(valuePrefix)
		}
		fe.KeyExpr = firstExpr
		fe.ValueExpr = valueExpr

		mark := p.c.pos
		ws(p.c)
		if p.c.consumeLiteral("...") {
			fe.Grouping = true
		} else {
			p.c.pos = mark
		}
	} else {
		fe.ValueExpr = firstExpr
	}

	mark := p.c.pos
	condPrefixStart := p.c.pos
	ws(p.c)
	condPrefix := p.c.rawSince(condPrefixStart)
	if p.peekKeyword("if") {
		parseIdent(p.c)
		condStart := p.c.pos
		exprPrefixStart := p.c.pos
		sp(p.c)
		exprPrefix := p.c.rawSince(exprPrefixStart)
		condExpr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if exprPrefix.String() != "" {
			condExpr.Decor().SetPrefix(exprPrefix)
		}
		cond := &syntax.ForCond{Expr: condExpr}
		cond.SetSpan(p.c.span(condStart))
		if condPrefix.String() != "" {
			cond.Decor().SetPrefix(condPrefix)
		}
		fe.Cond = cond
	} else {
		p.c.pos = mark
	}

	ws(p.c)
	if !p.c.consumeByte(closeByte) {
		return nil, p.ctx.withLabel("for expression").expect(string(closeByte)).fail(p.src, p.c.pos, nil)
	}
	fe.SetSpan(p.c.span(start))
	return fe, nil
}
