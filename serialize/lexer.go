// SPDX-License-Identifier: MIT

package serialize

import "strings"

var keywords = map[string]struct{}{
	"def": {}, "if": {}, "else": {}, "for": {}, "in": {},
	"return": {}, "None": {}, "and": {}, "or": {}, "not": {},
}

var twoCharOps = []string{"**", "<=", ">=", "==", "!="}

// Code lexes a fragment of program text into tokens and appends them.
// Spaces separate tokens and are otherwise dropped; the fragment must not
// contain newlines.
func (b *Builder) Code(src string) *Builder {
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ':
			i++
		case isLetter(c):
			j := i + 1
			for j < len(src) && (isLetter(src[j]) || isDigit(src[j])) {
				j++
			}
			word := src[i:j]
			if _, ok := keywords[word]; ok {
				b.Keyword(word)
			} else {
				b.Ident(word)
			}
			i = j
		case isDigit(c):
			j := i + 1
			for j < len(src) && (isDigit(src[j]) || src[j] == '.') {
				j++
			}
			lit := src[i:j]
			if strings.Contains(lit, ".") {
				b.push(Float, lit)
			} else {
				b.push(Int, lit)
			}
			i = j
		default:
			op := src[i : i+1]
			for _, two := range twoCharOps {
				if strings.HasPrefix(src[i:], two) {
					op = two
					break
				}
			}
			b.Symbol(op)
			i += len(op)
		}
	}

	return b
}

// Line writes one complete statement at indentation depth d.
func (b *Builder) Line(d int, src string) *Builder {
	return b.At(d).Code(src).Newline()
}

func isLetter(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
