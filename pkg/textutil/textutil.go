// Package textutil provides small text helpers shared by the analysis
// pipeline.
package textutil

import (
	"strings"
	"unicode"
)

// Tokenize lowercases s and splits it into tokens on every rune that is not
// a letter or digit.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Bigrams returns every adjacent token pair joined by a single space, in
// stream order.
func Bigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}

	pairs := make([]string, 0, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		pairs = append(pairs, tokens[i]+" "+tokens[i+1])
	}
	return pairs
}
