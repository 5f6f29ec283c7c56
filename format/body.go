// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package format

import (
	"github.com/terramate-io/hclcst/repr"
	"github.com/terramate-io/hclcst/syntax"
)

// formatBody normalizes every structure in b at indent level, then the
// trailing trivia before whatever ends the body (closing brace or eof),
// which is reindented to closingIndent.
func formatBody(f *Formatter, b *syntax.Body, level int, closingIndent string) {
	childIndent := f.at(level)
	for _, st := range b.Structures {
		oldPrefix, _ := st.Decor().Prefix()
		st.Decor().SetPrefix(repr.FromString(reindentTrivia(oldPrefix.String(), childIndent)))

		oldSuffix, _ := st.Decor().Suffix()
		st.Decor().SetSuffix(repr.FromString(normalizeInline(oldSuffix.String(), "")))

		switch v := st.(type) {
		case *syntax.Attribute:
			formatAttribute(f, v, level)
		case *syntax.Block:
			formatBlock(f, v, level)
		}
	}
	b.Trailing = repr.FromString(reindentTrivia(b.Trailing.String(), closingIndent))
}

func formatAttribute(f *Formatter, a *syntax.Attribute, level int) {
	a.NameSuffix = repr.FromString(normalizeInline(a.NameSuffix.String(), " "))

	oldPrefix, _ := a.Value.Decor().Prefix()
	a.Value.Decor().SetPrefix(repr.FromString(normalizeInline(oldPrefix.String(), " ")))

	formatExpr(f, a.Value, level)
}

func formatBlock(f *Formatter, blk *syntax.Block, level int) {
	blk.TypeSuffix = repr.FromString(normalizeInline(blk.TypeSuffix.String(), " "))

	for i := range blk.Labels {
		oldSuffix, _ := blk.Labels[i].Decor().Suffix()
		blk.Labels[i].Decor().SetSuffix(repr.FromString(normalizeInline(oldSuffix.String(), " ")))
	}

	body := blk.Body
	if body.PreferOneline && len(body.Structures) <= 1 {
		formatOnelineBody(f, body, level)
		return
	}

	formatBody(f, body, level+1, f.at(level))
}

func formatOnelineBody(f *Formatter, body *syntax.Body, level int) {
	if len(body.Structures) == 0 {
		oldPrefix, _ := body.Decor().Prefix()
		body.Decor().SetPrefix(repr.FromString(normalizeInline(oldPrefix.String(), "")))
		oldSuffix, _ := body.Decor().Suffix()
		body.Decor().SetSuffix(repr.FromString(normalizeInline(oldSuffix.String(), "")))
		return
	}

	attr, ok := body.Structures[0].(*syntax.Attribute)
	if !ok {
		return
	}
	oldPrefix, _ := attr.Decor().Prefix()
	attr.Decor().SetPrefix(repr.FromString(normalizeInline(oldPrefix.String(), " ")))
	oldSuffix, _ := attr.Decor().Suffix()
	attr.Decor().SetSuffix(repr.FromString(normalizeInline(oldSuffix.String(), " ")))
	formatAttribute(f, attr, level)
}
