package strutil

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// GetEmails returns every email-shaped substring of text in order of
// appearance. When domains are given, only addresses whose part after "@"
// equals one of them are kept; the comparison is exact.
//
// The result is never nil.
func GetEmails(text string, domains ...string) []string {
	matches := emailPattern.FindAllString(text, -1)
	if len(domains) == 0 {
		if matches == nil {
			return []string{}
		}
		return matches
	}

	filtered := make([]string, 0, len(matches))
	for _, m := range matches {
		for _, d := range domains {
			if strings.HasSuffix(m, "@"+d) {
				filtered = append(filtered, m)
				break
			}
		}
	}
	return filtered
}
