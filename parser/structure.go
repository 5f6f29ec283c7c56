// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"github.com/terramate-io/hclcst/primitive"
	"github.com/terramate-io/hclcst/repr"
	"github.com/terramate-io/hclcst/syntax"
)

// parseBody parses a full body: zero or more structures separated by
// newlines, until eof or a matching '}' (the latter left unconsumed for
// the caller parsing a block).
func (p *parser) parseBody(stopAtBrace bool) (*syntax.Body, error) {
	start := p.c.pos
	body := &syntax.Body{}
	seen := map[primitive.Identifier]bool{}

	for {
		wsStart := p.c.pos
		ws(p.c)
		leadingWS := p.c.rawSince(wsStart)

		if p.c.eof() {
			break
		}
		if stopAtBrace {
			if b, ok := p.c.peek(); ok && b == '}' {
				break
			}
		}

		st, err := p.parseStructure(seen)
		if err != nil {
			return nil, err
		}
		if len(body.Structures) == 0 && leadingWS.String() != "" {
			st.Decor().SetPrefix(leadingWS)
		} else if leadingWS.String() != "" {
			// Attach leading whitespace/comments of this structure as
			// its own prefix decor, already captured by ws() above, by
			// merging with anything parseStructure itself recorded.
			if existing, hasPrefix := st.Decor().Prefix(); hasPrefix && existing.String() != "" {
				// Structure already carries explicit same-line prefix
				// (sp-only); the body-level ws precedes that.
				merged := leadingWS.String() + existing.String()
				st.Decor().SetPrefix(repr.FromString(merged))
			} else {
				st.Decor().SetPrefix(leadingWS)
			}
		}

		body.Structures = append(body.Structures, st)

		trailStart := p.c.pos
		sp(p.c)
		skipComment(p.c, true)
		trailing := p.c.rawSince(trailStart)
		if trailing.String() != "" {
			st.Decor().SetSuffix(trailing)
		}

		if p.c.eof() {
			break
		}
		b, _ := p.c.peek()
		if stopAtBrace && b == '}' {
			break
		}
		if b == '\n' {
			p.c.advance()
			continue
		}
		if b == '\r' {
			p.c.advance()
			if nb, ok := p.c.peek(); ok && nb == '\n' {
				p.c.advance()
			}
			continue
		}
		return nil, p.ctx.withLabel("body").expect("newline").expect("eof").fail(p.src, p.c.pos, nil)
	}

	trailStart := p.c.pos
	ws(p.c)
	body.Trailing = p.c.rawSince(trailStart)
	body.SetSpan(p.c.span(start))
	return body, nil
}

// parseStructure parses a single attribute or block, disambiguating on
// the byte immediately following the leading identifier and its
// same-line trivia.
func (p *parser) parseStructure(seen map[primitive.Identifier]bool) (syntax.Structure, error) {
	start := p.c.pos

	name, valid := parseIdent(p.c)
	if name == "" {
		return nil, p.ctx.withLabel("structure").
			expect("identifier").expect(`"`).expect("{").expect("=").
			fail(p.src, p.c.pos, nil)
	}
	_ = valid

	suffixStart := p.c.pos
	sp(p.c)
	nameSuffix := p.c.rawSince(suffixStart)

	b, ok := p.c.peek()
	if !ok {
		return nil, p.ctx.withLabel("structure").expect("{").expect("=").fail(p.src, p.c.pos, nil)
	}

	switch {
	case b == '=':
		if seen[name] {
			return nil, p.ctx.withLabel("attribute").
				expect("unique attribute key; found redefined attribute").
				fail(p.src, start, nil)
		}
		seen[name] = true
		p.c.advance()

		exprStart := p.c.pos
		sp(p.c)
		valuePrefix := p.c.rawSince(exprStart)

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if valuePrefix.String() != "" {
			value.Decor().SetPrefix(valuePrefix)
		}

		attr := &syntax.Attribute{Name: name, Value: value, NameSuffix: nameSuffix}
		attr.SetSpan(p.c.span(start))
		return attr, nil

	case b == '{':
		body, err := p.parseBlockBody()
		if err != nil {
			return nil, err
		}
		blk := &syntax.Block{Type: name, Body: body, TypeSuffix: nameSuffix}
		blk.SetSpan(p.c.span(start))
		return blk, nil

	case b == '"' || isIdentStart(b):
		labels, err := p.parseBlockLabels()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlockBody()
		if err != nil {
			return nil, err
		}
		blk := &syntax.Block{Type: name, Labels: labels, Body: body, TypeSuffix: nameSuffix}
		blk.SetSpan(p.c.span(start))
		return blk, nil

	default:
		return nil, p.ctx.withLabel("structure").
			expect("{").expect("=").expect(`"`).expect("identifier").
			fail(p.src, p.c.pos, nil)
	}
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b >= 0x80
}

func (p *parser) parseBlockLabels() ([]syntax.BlockLabel, error) {
	var labels []syntax.BlockLabel
	for {
		b, ok := p.c.peek()
		if !ok || !(b == '"' || isIdentStart(b)) {
			break
		}

		start := p.c.pos
		var label syntax.BlockLabel
		if b == '"' {
			value, raw, err := p.parseQuotedStringValue()
			if err != nil {
				return nil, err
			}
			label = syntax.BlockLabel{Kind: syntax.LabelString, Value: value, Raw: raw}
		} else {
			name, _ := parseIdent(p.c)
			label = syntax.BlockLabel{Kind: syntax.LabelIdent, Value: string(name)}
		}
		label.SetSpan(p.c.span(start))

		suffixStart := p.c.pos
		sp(p.c)
		suffix := p.c.rawSince(suffixStart)
		if suffix.String() != "" {
			label.Decor().SetSuffix(suffix)
		}

		labels = append(labels, label)
	}
	return labels, nil
}

func (p *parser) parseBlockBody() (*syntax.Body, error) {
	if !p.c.consumeByte('{') {
		return nil, p.ctx.withLabel("block body").expect("{").fail(p.src, p.c.pos, nil)
	}

	save := p.c.pos
	lineCommentStart := p.c.pos
	sp(p.c)
	skipComment(p.c, false)
	afterSp := p.c.pos
	_ = lineCommentStart

	if b, ok := p.c.peek(); ok && (b == '\n' || b == '\r') {
		if b == '\n' {
			p.c.advance()
		} else {
			p.c.advance()
			if nb, ok := p.c.peek(); ok && nb == '\n' {
				p.c.advance()
			}
		}
		body, err := p.parseBody(true)
		if err != nil {
			return nil, err
		}
		if !p.c.consumeByte('}') {
			return nil, p.ctx.withLabel("block body").expect("\n").expect("identifier").fail(p.src, p.c.pos, nil)
		}
		return body, nil
	}

	// One-line block body: at most one attribute.
	p.c.pos = afterSp
	body := &syntax.Body{PreferOneline: true}

	prefixStart := save
	sp(p.c)
	prefix := p.c.rawSince(prefixStart)

	if b, ok := p.c.peek(); ok && b != '}' {
		attrStart := p.c.pos
		name, _ := parseIdent(p.c)
		if name == "" {
			return nil, p.ctx.withLabel("block body").expect("}").expect("identifier").fail(p.src, p.c.pos, nil)
		}
		suffixStart := p.c.pos
		sp(p.c)
		nameSuffix := p.c.rawSince(suffixStart)

		if !p.c.consumeByte('=') {
			return nil, p.ctx.withLabel("attribute").expect("=").fail(p.src, p.c.pos, nil)
		}
		exprStart := p.c.pos
		sp(p.c)
		valuePrefix := p.c.rawSince(exprStart)

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if valuePrefix.String() != "" {
			value.Decor().SetPrefix(valuePrefix)
		}

		attr := &syntax.Attribute{Name: name, Value: value, NameSuffix: nameSuffix}
		if prefix.String() != "" {
			attr.Decor().SetPrefix(prefix)
		}
		attr.SetSpan(p.c.span(attrStart))
		body.Structures = append(body.Structures, attr)

		trailStart := p.c.pos
		sp(p.c)
		attr.Decor().SetSuffix(p.c.rawSince(trailStart))
	} else {
		body.Trailing = prefix
	}

	if !p.c.consumeByte('}') {
		return nil, p.ctx.withLabel("block body").expect("}").fail(p.src, p.c.pos, nil)
	}
	_ = save
	body.SetSpan(p.c.span(save))
	return body, nil
}
