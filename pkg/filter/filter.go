// Package filter selects candidate speeches matching a keyword.
package filter

import (
	"strings"

	"discurso-archive/pkg/domain"
)

// ByKeyword returns the candidates whose title contains keyword,
// case-insensitive, in their original order. Candidates without a title
// are matched against their transcript text instead, so a page with a
// broken heading can still be kept.
func ByKeyword(candidates []domain.Speech, keyword string) []domain.Speech {
	if keyword == "" {
		return candidates
	}
	kw := strings.ToLower(keyword)

	kept := make([]domain.Speech, 0, len(candidates))
	for _, c := range candidates {
		haystack := c.Title
		if haystack == "" {
			haystack = c.Text
		}
		if strings.Contains(strings.ToLower(haystack), kw) {
			kept = append(kept, c)
		}
	}
	return kept
}
