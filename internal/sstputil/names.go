package sstputil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonWordAtWordBoundary = regexp.MustCompile(`(\W)([a-zA-Z][a-z])`)
var startingDigits = regexp.MustCompile(`^([\d]+)(.*)`)

// NormalizeName turns a human written name like "crypto binding request",
// "Crypto-Binding-Request" or "CERT_HASH_PROTOCOL_SHA256" into the canonical
// CamelCase form used to look up enumerator names.
func NormalizeName(s string) string {
	// brackets and separators become word breaks
	s = strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '-', '_':
			return ' '
		}
		return r
	}, s)

	// a non-word char followed by the start of a lowercase word is a word break
	s = nonWordAtWordBoundary.ReplaceAllString(s, " $2")

	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ':
		default:
			return -1
		}
		return r
	}, s)

	words := strings.Fields(s)
	title := cases.Title(language.Und, cases.NoLower)

	for i, w := range words {
		if i == 0 {
			// leading digits move to the end of the first word
			w = startingDigits.ReplaceAllString(w, `$2$1`)
		}
		if w == strings.ToUpper(w) {
			// SHOUTED words are lowered first so "SHA256" and "Sha256" agree
			w = strings.ToLower(w)
		}
		words[i] = title.String(w)
	}

	return strings.Join(words, "")
}
