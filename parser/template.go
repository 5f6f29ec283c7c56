// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"github.com/terramate-io/hclcst/primitive"
	"github.com/terramate-io/hclcst/repr"
	"github.com/terramate-io/hclcst/syntax"
)

type templateMode uint8

const (
	// templateModeQuoted stops at an unescaped '"'.
	templateModeQuoted templateMode = iota
	// templateModeBare stops only at eof; used by ParseTemplate.
	templateModeBare
	// templateModeHeredoc stops at a line whose trimmed content is the
	// heredoc's closing delimiter.
	templateModeHeredoc
	// templateModeDirectiveBody stops at a `%{else}`, `%{endif}` or
	// `%{endfor}` belonging to the enclosing directive; the caller
	// consumes that marker itself.
	templateModeDirectiveBody
)

// parseTemplateBody parses a sequence of template elements until mode's
// terminator is reached, without consuming the terminator itself.
func (p *parser) parseTemplateBody(mode templateMode) (*syntax.Template, error) {
	start := p.c.pos
	tmpl := &syntax.Template{}

	for {
		if p.atTemplateEnd(mode) {
			break
		}

		b, ok := p.c.peek()
		if !ok {
			if mode == templateModeBare {
				break
			}
			return nil, p.ctx.withLabel("template").expect("closing marker").fail(p.src, p.c.pos, nil)
		}

		switch {
		case b == '$' || b == '%':
			n1, ok1 := c1(p.c)
			if ok1 && n1 == b {
				if n2, ok2 := c2(p.c); ok2 && n2 == '{' {
					es := p.c.pos
					p.c.advanceN(3)
					kind := syntax.EscapedInterpolation
					if b == '%' {
						kind = syntax.EscapedDirective
					}
					el := &syntax.EscapedLiteral{Kind: kind}
					el.SetSpan(p.c.span(es))
					tmpl.Elements = append(tmpl.Elements, el)
					continue
				}
			}
			if n1, ok1 := c1(p.c); ok1 && n1 == '{' {
				if b == '$' {
					interp, err := p.parseInterpolation()
					if err != nil {
						return nil, err
					}
					tmpl.Elements = append(tmpl.Elements, interp)
					continue
				}
				dir, err := p.parseDirective()
				if err != nil {
					return nil, err
				}
				tmpl.Elements = append(tmpl.Elements, dir)
				continue
			}
			lit, err := p.scanLiteralRun(mode)
			if err != nil {
				return nil, err
			}
			if lit != nil {
				tmpl.Elements = append(tmpl.Elements, lit)
			}

		default:
			lit, err := p.scanLiteralRun(mode)
			if err != nil {
				return nil, err
			}
			if lit != nil {
				tmpl.Elements = append(tmpl.Elements, lit)
			} else {
				// No progress and not at a recognized terminator: bail
				// out to avoid an infinite loop on malformed input.
				return nil, p.ctx.withLabel("template").expect("closing marker").fail(p.src, p.c.pos, nil)
			}
		}
	}

	tmpl.SetSpan(p.c.span(start))
	return tmpl, nil
}

func c1(c *cursor) (byte, bool) { return c.peekN(1) }
func c2(c *cursor) (byte, bool) { return c.peekN(2) }

// atTemplateEnd reports whether the cursor sits at mode's terminator,
// without consuming it.
func (p *parser) atTemplateEnd(mode templateMode) bool {
	switch mode {
	case templateModeQuoted:
		b, ok := p.c.peek()
		return !ok || b == '"'
	case templateModeBare:
		return p.c.eof()
	case templateModeHeredoc:
		return p.atHeredocDelimiter()
	case templateModeDirectiveBody:
		return p.peekDirectiveKeyword("else") || p.peekDirectiveKeyword("endif") || p.peekDirectiveKeyword("endfor")
	}
	return true
}

// scanLiteralRun consumes plain text up to the next marker relevant to
// mode (an interpolation/directive/escaped-marker start, or mode's own
// terminator), decodes escapes, and returns the resulting Literal, or
// nil if the run was empty.
func (p *parser) scanLiteralRun(mode templateMode) (*syntax.Literal, error) {
	start := p.c.pos
	for {
		if p.atTemplateEnd(mode) {
			break
		}
		b, ok := p.c.peek()
		if !ok {
			break
		}
		if b == '$' || b == '%' {
			if n, ok := p.c.peekN(1); ok && n == '{' {
				break
			}
			if n, ok := p.c.peekN(1); ok && n == b {
				if n2, ok2 := p.c.peekN(2); ok2 && n2 == '{' {
					break
				}
			}
		}
		if mode == templateModeQuoted && b == '\\' {
			p.c.advance()
			if !p.c.eof() {
				if nb, _ := p.c.peek(); nb == 'u' {
					p.c.advanceN(1)
					for i := 0; i < 4 && !p.c.eof(); i++ {
						p.c.advance()
					}
					continue
				}
				p.c.advance()
			}
			continue
		}
		p.c.advance()
	}

	if p.c.pos == start {
		return nil, nil
	}

	raw := p.c.text(start)
	value := raw
	if mode == templateModeQuoted {
		decoded, err := unescapeLiteral(raw)
		if err != nil {
			return nil, p.ctx.withLabel("string literal").fail(p.src, start, err)
		}
		value = decoded
	}

	lit := &syntax.Literal{Value: value, Raw: p.c.rawSince(start)}
	lit.SetSpan(p.c.span(start))
	return lit, nil
}

func (p *parser) parseInterpolation() (*syntax.Interpolation, error) {
	start := p.c.pos
	p.c.advanceN(2) // "${"
	strip := p.consumeStripTilde(false)

	prefixStart := p.c.pos
	sp(p.c)
	prefix := p.c.rawSince(prefixStart)

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if prefix.String() != "" {
		expr.Decor().SetPrefix(prefix)
	}

	suffixStart := p.c.pos
	sp(p.c)
	suffix := p.c.rawSince(suffixStart)
	if suffix.String() != "" {
		expr.Decor().SetSuffix(suffix)
	}

	endStrip := p.consumeStripTilde(true)
	if endStrip.StripEnd() {
		strip = primitive.NewStrip(strip.StripStart(), true)
	}
	if !p.c.consumeByte('}') {
		return nil, p.ctx.withLabel("interpolation").expect("}").fail(p.src, p.c.pos, nil)
	}

	interp := &syntax.Interpolation{Strip: strip, Expr: expr}
	interp.SetSpan(p.c.span(start))
	return interp, nil
}

// consumeStripTilde consumes a '~' if present, reporting whether it was
// found. When trailing is true this checks immediately before a `}`.
func (p *parser) consumeStripTilde(trailing bool) primitive.Strip {
	if !trailing {
		if p.c.consumeByte('~') {
			return primitive.NewStrip(true, false)
		}
		return primitive.NewStrip(false, false)
	}
	mark := p.c.pos
	sp(p.c)
	if p.c.consumeByte('~') {
		return primitive.NewStrip(false, true)
	}
	p.c.pos = mark
	return primitive.NewStrip(false, false)
}

// peekDirectiveKeyword reports whether the cursor sits at `%{` optional
// `~` ws kw, where kw is followed by a non-identifier byte, without
// consuming anything.
func (p *parser) peekDirectiveKeyword(kw string) bool {
	mark := p.c.pos
	defer func() { p.c.pos = mark }()

	if !p.c.consumeLiteral("%{") {
		return false
	}
	p.c.consumeByte('~')
	sp(p.c)
	return p.c.consumeLiteral(kw) && !identContinues(p.c)
}

func identContinues(c *cursor) bool {
	b, ok := c.peek()
	if !ok {
		return false
	}
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_' || b == '-'
}

func (p *parser) parseDirective() (syntax.Directive, error) {
	if p.peekDirectiveKeyword("if") {
		return p.parseIfDirective()
	}
	if p.peekDirectiveKeyword("for") {
		return p.parseForDirective()
	}
	return nil, p.ctx.withLabel("directive").expect("if").expect("for").fail(p.src, p.c.pos, nil)
}

func (p *parser) parseIfDirective() (*syntax.IfDirective, error) {
	start := p.c.pos
	p.c.advanceN(2) // "%{"
	strip := p.consumeStripTilde(false)
	sp(p.c)
	p.c.consumeLiteral("if")

	prefixStart := p.c.pos
	sp(p.c)
	prefix := p.c.rawSince(prefixStart)
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if prefix.String() != "" {
		cond.Decor().SetPrefix(prefix)
	}

	suffixStart := p.c.pos
	sp(p.c)
	suffix := p.c.rawSince(suffixStart)
	if suffix.String() != "" {
		cond.Decor().SetSuffix(suffix)
	}

	endStrip := p.consumeStripTilde(true)
	if endStrip.StripEnd() {
		strip = primitive.NewStrip(strip.StripStart(), true)
	}
	if !p.c.consumeByte('}') {
		return nil, p.ctx.withLabel("if directive").expect("}").fail(p.src, p.c.pos, nil)
	}

	consequent, err := p.parseTemplateBody(templateModeDirectiveBody)
	if err != nil {
		return nil, err
	}

	d := &syntax.IfDirective{CondStrip: strip, Cond: cond, Consequent: consequent}

	if p.peekDirectiveKeyword("else") {
		p.c.advanceN(2)
		elseStrip := p.consumeStripTilde(false)
		sp(p.c)
		p.c.consumeLiteral("else")
		elseEndStrip := p.consumeStripTilde(true)
		if elseEndStrip.StripEnd() {
			elseStrip = primitive.NewStrip(elseStrip.StripStart(), true)
		}
		if !p.c.consumeByte('}') {
			return nil, p.ctx.withLabel("else directive").expect("}").fail(p.src, p.c.pos, nil)
		}
		alt, err := p.parseTemplateBody(templateModeDirectiveBody)
		if err != nil {
			return nil, err
		}
		d.HasElse = true
		d.Alternative = alt
		d.ElseStrip = elseStrip
	}

	if !p.peekDirectiveKeyword("endif") {
		return nil, p.ctx.withLabel("if directive").expect("%{ endif }").fail(p.src, p.c.pos, nil)
	}
	p.c.advanceN(2)
	endStrip2 := p.consumeStripTilde(false)
	sp(p.c)
	p.c.consumeLiteral("endif")
	endStrip3 := p.consumeStripTilde(true)
	if endStrip3.StripEnd() {
		endStrip2 = primitive.NewStrip(endStrip2.StripStart(), true)
	}
	if !p.c.consumeByte('}') {
		return nil, p.ctx.withLabel("endif directive").expect("}").fail(p.src, p.c.pos, nil)
	}
	d.EndStrip = endStrip2
	d.SetSpan(p.c.span(start))
	return d, nil
}

func (p *parser) parseForDirective() (*syntax.ForDirective, error) {
	start := p.c.pos
	p.c.advanceN(2) // "%{"
	strip := p.consumeStripTilde(false)
	sp(p.c)
	p.c.consumeLiteral("for")
	sp(p.c)

	first, _ := parseIdent(p.c)
	sp(p.c)
	var keyVar *primitive.Identifier
	valueVar := first
	if p.c.consumeByte(',') {
		sp(p.c)
		second, _ := parseIdent(p.c)
		kv := first
		keyVar = &kv
		valueVar = second
		sp(p.c)
	}
	p.c.consumeLiteral("in")

	prefixStart := p.c.pos
	sp(p.c)
	prefix := p.c.rawSince(prefixStart)
	collection, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if prefix.String() != "" {
		collection.Decor().SetPrefix(prefix)
	}

	suffixStart := p.c.pos
	sp(p.c)
	suffix := p.c.rawSince(suffixStart)
	if suffix.String() != "" {
		collection.Decor().SetSuffix(suffix)
	}

	endStrip := p.consumeStripTilde(true)
	if endStrip.StripEnd() {
		strip = primitive.NewStrip(strip.StripStart(), true)
	}
	if !p.c.consumeByte('}') {
		return nil, p.ctx.withLabel("for directive").expect("}").fail(p.src, p.c.pos, nil)
	}

	body, err := p.parseTemplateBody(templateModeDirectiveBody)
	if err != nil {
		return nil, err
	}

	if !p.peekDirectiveKeyword("endfor") {
		return nil, p.ctx.withLabel("for directive").expect("%{ endfor }").fail(p.src, p.c.pos, nil)
	}
	p.c.advanceN(2)
	endStrip2 := p.consumeStripTilde(false)
	sp(p.c)
	p.c.consumeLiteral("endfor")
	endStrip3 := p.consumeStripTilde(true)
	if endStrip3.StripEnd() {
		endStrip2 = primitive.NewStrip(endStrip2.StripStart(), true)
	}
	if !p.c.consumeByte('}') {
		return nil, p.ctx.withLabel("endfor directive").expect("}").fail(p.src, p.c.pos, nil)
	}

	d := &syntax.ForDirective{
		KeyVar:         keyVar,
		ValueVar:       valueVar,
		IntroStrip:     strip,
		CollectionExpr: collection,
		Body:           body,
		EndStrip:       endStrip2,
	}
	d.SetSpan(p.c.span(start))
	return d, nil
}

// atHeredocDelimiter reports whether, starting at the current line,
// optional leading blanks followed by the closing delimiter and a line
// end (or eof) appear next, without consuming anything.
func (p *parser) atHeredocDelimiter() bool {
	mark := p.c.pos
	defer func() { p.c.pos = mark }()

	if mark != 0 {
		prev, _ := p.c.byteAt(mark - 1)
		if prev != '\n' {
			return false
		}
	}

	for {
		b, ok := p.c.peek()
		if !ok || (b != ' ' && b != '\t') {
			break
		}
		p.c.advance()
	}

	if !p.c.consumeLiteral(p.heredocDelimiter) {
		return false
	}
	b, ok := p.c.peek()
	return !ok || b == '\n' || b == '\r'
}

func (p *parser) parseHeredoc() (syntax.Expression, error) {
	start := p.c.pos
	p.c.advanceN(2) // "<<"
	kind := syntax.HeredocPlain
	if p.c.consumeByte('-') {
		kind = syntax.HeredocIndented
	}

	name, ok := parseIdent(p.c)
	if !ok && name == "" {
		return nil, p.ctx.withLabel("heredoc").expect("identifier").fail(p.src, p.c.pos, nil)
	}

	for {
		b, ok := p.c.peek()
		if !ok || b == '\n' {
			break
		}
		p.c.advance()
	}
	p.c.consumeByte('\n')

	prevDelim := p.heredocDelimiter
	p.heredocDelimiter = string(name)
	tmpl, err := p.parseTemplateBody(templateModeHeredoc)
	p.heredocDelimiter = prevDelim
	if err != nil {
		return nil, err
	}

	closeIndentStart := p.c.pos
	for {
		b, ok := p.c.peek()
		if !ok || (b != ' ' && b != '\t') {
			break
		}
		p.c.advance()
	}
	closeIndent := p.c.pos - closeIndentStart
	if !p.c.consumeLiteral(string(name)) {
		return nil, p.ctx.withLabel("heredoc").expect("closing delimiter").fail(p.src, p.c.pos, nil)
	}

	h := &syntax.HeredocTemplate{Kind: kind, Delimiter: name, Template: tmpl}
	if kind == syntax.HeredocIndented {
		plain := renderPlainForIndent(tmpl)
		if plain != "" {
			plain += "\n"
		}
		plain += spacesOf(closeIndent) + "X"
		n := minLeadingWhitespace(plain)
		if n > 0 {
			dedentHeredoc(tmpl, n)
		}
		h.Indent = n
	}
	h.SetSpan(p.c.span(start))
	return h, nil
}

func spacesOf(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func (p *parser) parseQuotedExpr() (syntax.Expression, error) {
	start := p.c.pos
	if !p.c.consumeByte('"') {
		return nil, p.ctx.withLabel("string").expect(`"`).fail(p.src, p.c.pos, nil)
	}
	tmpl, err := p.parseTemplateBody(templateModeQuoted)
	if err != nil {
		return nil, err
	}
	if !p.c.consumeByte('"') {
		return nil, p.ctx.withLabel("string").expect(`"`).fail(p.src, p.c.pos, nil)
	}
	tmpl.SetSpan(p.c.span(start))

	if lit := collapseToLiteral(tmpl); lit != nil {
		return lit, nil
	}
	return tmpl, nil
}

// parseQuotedStringValue parses a quoted string to its unescaped value
// and raw span text, for contexts (block labels) that never accept
// interpolation.
func (p *parser) parseQuotedStringValue() (string, repr.RawString, error) {
	expr, err := p.parseQuotedExpr()
	if err != nil {
		return "", repr.Empty, err
	}
	if lit, ok := expr.(*syntax.LiteralString); ok {
		return lit.Value, lit.Raw, nil
	}
	return "", repr.Empty, p.ctx.withLabel("label").expect("quoted string without interpolation").fail(p.src, p.c.pos, nil)
}

func collapseToLiteral(t *syntax.Template) *syntax.LiteralString {
	if len(t.Elements) > 1 {
		return nil
	}
	if len(t.Elements) == 0 {
		ls := &syntax.LiteralString{Value: "", Raw: repr.Empty}
		ls.SetSpan(t.Span())
		return ls
	}
	lit, ok := t.Elements[0].(*syntax.Literal)
	if !ok {
		return nil
	}
	ls := &syntax.LiteralString{Value: lit.Value, Raw: lit.Raw}
	ls.SetSpan(t.Span())
	return ls
}
