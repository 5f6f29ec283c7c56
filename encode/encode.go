// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

// Package encode serializes a despanned CST back to text. It is a
// stateless writer: each node contributes its prefix decor (or a
// component default), itself, then its suffix decor (or default).
package encode

import (
	"fmt"
	"io"

	"github.com/terramate-io/hclcst/repr"
	"github.com/terramate-io/hclcst/syntax"
)

const (
	noDecor     = ""
	singleSpace = " "
)

// state accumulates output into a single growable string, mirroring the
// buffer-oriented decor encode methods in package repr.
type state struct {
	buf    string
	escape bool
}

func (s *state) writeString(str string) {
	s.buf += str
}

func (s *state) writeByte(b byte) {
	s.buf += string(b)
}

// decorated writes d's prefix (or defaultPrefix), invokes f, then writes
// d's suffix (or defaultSuffix).
func decorated(s *state, d *repr.Decor, defaultPrefix, defaultSuffix string, f func()) {
	d.EncodePrefix(&s.buf, defaultPrefix)
	f()
	d.EncodeSuffix(&s.buf, defaultSuffix)
}

// Body encodes b to w.
func Body(w io.Writer, b *syntax.Body) error {
	s := &state{}
	encodeBody(s, b)
	_, err := io.WriteString(w, s.buf)
	return err
}

// Expression encodes e to w, including its own decor.
func Expression(w io.Writer, e syntax.Expression) error {
	s := &state{}
	decorated(s, e.Decor(), noDecor, noDecor, func() { encodeExpr(s, e) })
	_, err := io.WriteString(w, s.buf)
	return err
}

// Template encodes t to w as a quoted string body (without surrounding
// quotes), with string escaping enabled.
func Template(w io.Writer, t *syntax.Template) error {
	s := &state{escape: true}
	encodeTemplate(s, t)
	_, err := io.WriteString(w, s.buf)
	return err
}

// encodeEscaped writes value with control characters, quotes and
// backslashes escaped per spec §4.6.
func encodeEscaped(s *state, value string) {
	for _, r := range value {
		switch r {
		case '\b':
			s.writeString(`\b`)
		case '\t':
			s.writeString(`\t`)
		case '\n':
			s.writeString(`\n`)
		case '\f':
			s.writeString(`\f`)
		case '\r':
			s.writeString(`\r`)
		case '"':
			s.writeString(`\"`)
		case '\\':
			s.writeString(`\\`)
		default:
			if r <= 0x1f || r == 0x7f {
				s.writeString(fmt.Sprintf(`\u%04X`, r))
			} else {
				s.buf += string(r)
			}
		}
	}
}
