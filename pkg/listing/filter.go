package listing

import "strings"

// LinkFilter decides whether a discovered link should be fetched.
type LinkFilter interface {
	ShouldKeep(link Link) bool
}

// FilterLinks applies all filters to a list of links, preserving order.
func FilterLinks(links []Link, filters ...LinkFilter) []Link {
	kept := make([]Link, 0, len(links))
	for _, l := range links {
		keep := true
		for _, f := range filters {
			if !f.ShouldKeep(l) {
				keep = false
				break
			}
		}
		if keep {
			kept = append(kept, l)
		}
	}
	return kept
}

// KeywordFilter keeps links whose URL contains the keyword,
// case-insensitive. Speech permalinks on the source site carry the
// speaker's name in the slug, so this prunes unrelated posts before any
// page is fetched.
type KeywordFilter struct {
	keyword string
}

// NewKeywordFilter creates a keyword link filter. An empty keyword keeps
// everything.
func NewKeywordFilter(keyword string) *KeywordFilter {
	return &KeywordFilter{keyword: strings.ToLower(keyword)}
}

// ShouldKeep returns true if the link URL contains the keyword.
func (f *KeywordFilter) ShouldKeep(link Link) bool {
	if f.keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(link.URL), f.keyword)
}

// ArchivedFilter drops links whose URL is already in the archive.
type ArchivedFilter struct {
	archived map[string]bool
}

// NewArchivedFilter creates a filter from the archive's URL set.
func NewArchivedFilter(archived map[string]bool) *ArchivedFilter {
	return &ArchivedFilter{archived: archived}
}

// ShouldKeep returns false if the link URL is already archived.
func (f *ArchivedFilter) ShouldKeep(link Link) bool {
	return !f.archived[link.URL]
}
