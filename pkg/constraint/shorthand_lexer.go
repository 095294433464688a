package constraint

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Modifier characters that open a right-hand side token.
const (
	modView       = '@'
	modRelation   = '%'
	modPositive   = '+'
	modNegative   = '-'
	modInset      = '<'
	modOffset     = '>'
	modMultiply   = '*'
	modDivide     = '/'
	modPriority   = 'p'
	modIdentifier = '#'
	modHorizontal = 'h'
	modVertical   = 'v'

	viewAttributeSeparator = '.'
)

// shorthandToken is one modifier and its value from a right-hand side.
type shorthandToken struct {
	mod    rune
	value  string
	offset int // byte offset of the modifier
}

// isSymbolicModifier reports whether r opens a token even when it directly
// follows another token, as in "@super<20".
func isSymbolicModifier(r rune) bool {
	switch r {
	case modView, modRelation, modPositive, modNegative, modInset, modOffset,
		modMultiply, modDivide, modIdentifier:
		return true
	}
	return false
}

func isNameChar(r rune) bool {
	return r == '_' || r == viewAttributeSeparator || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isRelationChar(r rune) bool {
	return r == '=' || r == '<' || r == '>'
}

func isValueChar(r rune) bool {
	return !unicode.IsSpace(r) && !isSymbolicModifier(r)
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

// scanWhile returns the end offset of the run starting at i whose runes satisfy ok.
func scanWhile(s string, i int, ok func(rune) bool) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !ok(r) {
			break
		}
		i += size
	}
	return i
}

// scanName returns the end offset of a view reference starting at i. A '-'
// stays in the name only when a letter or '_' follows it, so "@my-view" is one
// reference while "@super-8" is a reference followed by a negative constant.
func scanName(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '-' {
			next, _ := utf8.DecodeRuneInString(s[i+size:])
			if i+size < len(s) && (next == '_' || unicode.IsLetter(next)) {
				i += size
				continue
			}
			break
		}
		if !isNameChar(r) {
			break
		}
		i += size
	}
	return i
}

// scanValue returns the end offset of a numeric value starting at i. A sign
// directly after an exponent marker belongs to the number, as in "1e-3".
func scanValue(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == 'e' || r == 'E' {
			i += size
			if i < len(s) && (s[i] == '+' || s[i] == '-') {
				i++
			}
			continue
		}
		if !isValueChar(r) {
			break
		}
		i += size
	}
	return i
}

// lexShorthand splits a right-hand side into modifier tokens. Chunks that
// start with an unknown character are skipped up to the next whitespace.
func lexShorthand(s string) []shorthandToken {
	var tokens []shorthandToken
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		i += size

		var end int
		switch r {
		case modView:
			end = scanName(s, i)
		case modRelation:
			end = scanWhile(s, i, isRelationChar)
		case modPositive, modNegative, modInset, modOffset, modMultiply, modDivide, modPriority:
			end = scanValue(s, i)
		case modIdentifier:
			end = scanWhile(s, i, isNotSpace)
		case modHorizontal, modVertical:
			end = scanWhile(s, i, unicode.IsLetter)
		default:
			i = scanWhile(s, i, isNotSpace)
			continue
		}

		tokens = append(tokens, shorthandToken{mod: r, value: s[i:end], offset: start})
		i = end
	}
	return tokens
}

// firstToken returns the first token, in source order, opened by any of mods.
func firstToken(tokens []shorthandToken, mods ...rune) (shorthandToken, bool) {
	for _, tok := range tokens {
		for _, m := range mods {
			if tok.mod == m {
				return tok, true
			}
		}
	}
	return shorthandToken{}, false
}

// parseNumber parses a finite float.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
