// Package text provides tokenization and cleaning helpers for free text.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// lower lowercases s. A Caser is stateful, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// Tokenize splits s into lowercase words: maximal runs of letters, digits,
// combining marks and underscores. Input is NFKC-normalized first so that
// compatibility forms such as full-width digits tokenize like their ASCII
// counterparts.
func Tokenize(s string) []string {
	s = lower(norm.NFKC.String(s))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !isWordRune(r)
	})
	if fields == nil {
		return []string{}
	}
	return fields
}

// KeepAlphanumericAndSpaces lowercases s and removes every rune that is not
// an ASCII letter, an ASCII digit or whitespace.
func KeepAlphanumericAndSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			return r
		}
		return -1
	}, lower(s))
}

// RemoveStopwords tokenizes s and drops every token listed in stopwords.
// Stopwords are matched exactly against the lowercased tokens.
func RemoveStopwords(s string, stopwords []string) []string {
	stop := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stop[w] = struct{}{}
	}

	tokens := Tokenize(s)
	result := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := stop[tok]; ok {
			continue
		}
		result = append(result, tok)
	}
	return result
}
