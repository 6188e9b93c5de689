// SPDX-License-Identifier: MIT

package serialize

import (
	"strconv"
	"strings"
)

// TokenKind classifies a Token.
type TokenKind int

const (
	Keyword TokenKind = iota
	Ident
	Int
	Float
	Symbol
	Newline
	Indent
	Dedent
)

// Token is one lexical unit of a rendered program.
type Token struct {
	Kind TokenKind
	Text string
}

// indentUnit is the text of one indentation level.
const indentUnit = "    "

// Builder accumulates tokens. Methods return the receiver for chaining.
// The zero value is ready to use.
type Builder struct {
	tokens []Token
	depth  int
}

func (b *Builder) push(k TokenKind, text string) *Builder {
	b.tokens = append(b.tokens, Token{Kind: k, Text: text})

	return b
}

// Keyword appends a language keyword (def, if, for, return, ...).
func (b *Builder) Keyword(s string) *Builder { return b.push(Keyword, s) }

// Ident appends an identifier.
func (b *Builder) Ident(s string) *Builder { return b.push(Ident, s) }

// Symbol appends punctuation or an operator.
func (b *Builder) Symbol(s string) *Builder { return b.push(Symbol, s) }

// Int appends an integer literal.
func (b *Builder) Int(v int) *Builder { return b.push(Int, strconv.Itoa(v)) }

// Float appends the shortest literal that round-trips v.
func (b *Builder) Float(v float64) *Builder {
	return b.push(Float, strconv.FormatFloat(v, 'g', -1, 64))
}

// Fixed appends v with prec decimals.
func (b *Builder) Fixed(v float64, prec int) *Builder {
	return b.push(Float, strconv.FormatFloat(v, 'f', prec, 64))
}

// Newline ends the current line.
func (b *Builder) Newline() *Builder { return b.push(Newline, "\n") }

// Indent opens one indentation level for the following lines.
func (b *Builder) Indent() *Builder {
	b.depth++

	return b.push(Indent, "")
}

// Dedent closes one indentation level. Extra dedents are ignored.
func (b *Builder) Dedent() *Builder {
	if b.depth == 0 {
		return b
	}
	b.depth--

	return b.push(Dedent, "")
}

// At moves to absolute indentation depth d by emitting the needed
// Indent/Dedent tokens.
func (b *Builder) At(d int) *Builder {
	for b.depth < d {
		b.Indent()
	}
	for b.depth > d && b.depth > 0 {
		b.Dedent()
	}

	return b
}

// Ints appends a bracketed list literal [a, b, c].
func (b *Builder) Ints(vs []int) *Builder {
	b.Symbol("[")
	for i, v := range vs {
		if i > 0 {
			b.Symbol(",")
		}
		b.Int(v)
	}

	return b.Symbol("]")
}

// Floats appends a bracketed list literal of shortest float literals.
func (b *Builder) Floats(vs []float64) *Builder {
	b.Symbol("[")
	for i, v := range vs {
		if i > 0 {
			b.Symbol(",")
		}
		b.Float(v)
	}

	return b.Symbol("]")
}

// IntRows appends a nested list literal [[..], [..]].
func (b *Builder) IntRows(rows [][]int) *Builder {
	b.Symbol("[")
	for i, r := range rows {
		if i > 0 {
			b.Symbol(",")
		}
		b.Ints(r)
	}

	return b.Symbol("]")
}

// Tokens returns a copy of the accumulated tokens.
func (b *Builder) Tokens() []Token { return append([]Token(nil), b.tokens...) }

// String renders the tokens.
//
// Spacing rules: tokens on a line are separated by one space, except
//   - no space before , : ) ] }
//   - no space after ( [ {
//   - no space between an identifier or a closing bracket and a following
//     ( [ { (calls, indexing, set headers)
//
// Each line starts with depth × four spaces.
func (b *Builder) String() string {
	var sb strings.Builder
	depth := 0
	lineStart := true
	var prev Token
	for _, t := range b.tokens {
		switch t.Kind {
		case Indent:
			depth++
			continue
		case Dedent:
			if depth > 0 {
				depth--
			}
			continue
		case Newline:
			sb.WriteString("\n")
			lineStart = true
			continue
		}

		if lineStart {
			sb.WriteString(strings.Repeat(indentUnit, depth))
			lineStart = false
		} else if needSpace(prev, t) {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text)
		prev = t
	}

	return sb.String()
}

func needSpace(prev, cur Token) bool {
	if cur.Kind == Symbol {
		switch cur.Text {
		case ",", ":", ")", "]", "}":
			return false
		case "(", "[", "{":
			if prev.Kind == Ident || (prev.Kind == Symbol && (prev.Text == ")" || prev.Text == "]")) {
				return false
			}
		}
	}
	if prev.Kind == Symbol {
		switch prev.Text {
		case "(", "[", "{":
			return false
		}
	}

	return true
}
