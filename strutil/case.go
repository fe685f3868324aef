package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// KebabCase converts s to kebab-case: "helloWorld" -> "hello-world".
func KebabCase(s string) string {
	return joinLower(Words(s), "-")
}

// SnakeCase converts s to snake_case: "helloWorld" -> "hello_world".
func SnakeCase(s string) string {
	return joinLower(Words(s), "_")
}

// CamelCase converts s to camelCase: "hello-world" -> "helloWorld".
//
// Only the first rune of each word changes case; the rest is kept, so
// "hello_WORLD" becomes "helloWORLD".
func CamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, w := range Words(s) {
		r, size := utf8.DecodeRuneInString(w)
		if i == 0 {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		b.WriteString(w[size:])
	}
	return b.String()
}

// Words splits s into the word tokens used by the case converters.
// The input is NFC-normalized first so composed and decomposed accents
// produce the same words.
func Words(s string) []string {
	s = norm.NFC.String(s)

	var words []string
	var cur strings.Builder
	var prev rune

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for _, r := range s {
		switch {
		case isSeparator(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
		prev = r
	}
	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// joinLower builds a fresh Caser per call; Casers are stateful and must not be
// shared between goroutines.
func joinLower(words []string, sep string) string {
	return cases.Lower(language.Und).String(strings.Join(words, sep))
}
