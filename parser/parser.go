// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"github.com/terramate-io/hclcst/syntax"
)

// parser holds the shared state threaded through a single parse: the
// cursor over src and the accumulated error context used if parsing
// fails partway through.
type parser struct {
	src []byte
	c   *cursor
	ctx *parseContext
	// heredocDelimiter is the closing identifier of the heredoc whose
	// body is currently being scanned, consulted by atHeredocDelimiter.
	heredocDelimiter string
}

func newParser(src []byte) *parser {
	return &parser{src: src, c: newCursor(src), ctx: &parseContext{}}
}

// ParseBody parses src as a full HCL body (one file's worth of
// structures) and despans the result so it no longer references src.
func ParseBody(src []byte) (*syntax.Body, error) {
	p := newParser(src)
	body, err := p.parseBody(false)
	if err != nil {
		return nil, err
	}
	if !p.c.eof() {
		return nil, p.ctx.withLabel("body").expect("eof").fail(p.src, p.c.pos, nil)
	}
	body.PreferOmitTrailingNewline = true
	body.Despan(src)
	return body, nil
}

// ParseExpr parses src as a single standalone expression.
func ParseExpr(src []byte) (syntax.Expression, error) {
	p := newParser(src)
	ws(p.c)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	ws(p.c)
	if !p.c.eof() {
		return nil, p.ctx.withLabel("expression").expect("eof").fail(p.src, p.c.pos, nil)
	}
	expr.Despan(src)
	return expr, nil
}

// ParseTemplate parses src as a bare template body, i.e. the content of
// a quoted string without the surrounding quotes.
func ParseTemplate(src []byte) (*syntax.Template, error) {
	p := newParser(src)
	tmpl, err := p.parseTemplateBody(templateModeBare)
	if err != nil {
		return nil, err
	}
	if !p.c.eof() {
		return nil, p.ctx.withLabel("template").expect("eof").fail(p.src, p.c.pos, nil)
	}
	tmpl.Despan(src)
	return tmpl, nil
}
