// Package store persists the speech archive as a flat CSV file.
//
// The archive is append-only: rows are never reordered or rewritten, so
// successive saves differ only in appended rows. Each run loads the full
// file, merges new speeches, and rewrites it.
package store

import (
	"discurso-archive/pkg/domain"
)

// Store is the ordered collection of archived speeches.
// No two speeches share the same natural key.
type Store struct {
	speeches []domain.Speech
	keys     map[string]bool
}

// New creates an empty store.
func New() *Store {
	return &Store{
		keys: make(map[string]bool),
	}
}

// Len returns the number of archived speeches.
func (s *Store) Len() int {
	return len(s.speeches)
}

// Has reports whether a speech with the given natural key is archived.
func (s *Store) Has(key string) bool {
	return s.keys[key]
}

// Speeches returns the archived speeches in insertion order.
func (s *Store) Speeches() []domain.Speech {
	return s.speeches
}

// URLSet returns the archived permalinks as a set, for filtering listing
// links before their pages are fetched.
func (s *Store) URLSet() map[string]bool {
	set := make(map[string]bool, len(s.speeches))
	for _, sp := range s.speeches {
		if sp.URL != "" {
			set[sp.URL] = true
		}
	}
	return set
}

// Merge appends candidates whose natural key is not yet archived,
// preserving discovery order, and returns how many were added.
// Re-encountering an already-archived speech is the steady state of
// re-scraping the same listing, so duplicates are skipped silently.
func (s *Store) Merge(candidates []domain.Speech) int {
	added := 0
	for _, c := range candidates {
		key := c.Key()
		if s.keys[key] {
			continue
		}
		s.speeches = append(s.speeches, c)
		s.keys[key] = true
		added++
	}
	return added
}
