// Package archiver runs one full archive update:
// load → list → filter → fetch each new speech → merge → save-if-changed.
package archiver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"discurso-archive/pkg/content"
	"discurso-archive/pkg/domain"
	"discurso-archive/pkg/filter"
	"discurso-archive/pkg/listing"
	"discurso-archive/pkg/store"
)

// Archiver performs one incremental update of the speech archive.
// Everything is sequential: one listing fetch (per page), then one speech
// page at a time. The archive file is the only state between runs.
type Archiver struct {
	lister    listing.Lister
	processor SpeechProcessor
	keyword   string
	csvPath   string
}

// Config wires the archiver dependencies.
type Config struct {
	Lister    listing.Lister
	Processor SpeechProcessor
	Keyword   string
	CSVPath   string
}

// New creates an archiver.
func New(cfg Config) (*Archiver, error) {
	if cfg.Lister == nil {
		return nil, fmt.Errorf("lister is required")
	}
	if cfg.Processor == nil {
		return nil, fmt.Errorf("processor is required")
	}
	if cfg.CSVPath == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	return &Archiver{
		lister:    cfg.Lister,
		processor: cfg.Processor,
		keyword:   cfg.Keyword,
		csvPath:   cfg.CSVPath,
	}, nil
}

// Run performs one pass. Fatal conditions (listing unreachable, listing
// unparsable, archive unreadable, archive unwritable) are returned to the
// caller; nothing is written in those cases. A speech page missing a
// required field is logged and skipped.
func (a *Archiver) Run(ctx context.Context) error {
	_, statErr := os.Stat(a.csvPath)
	firstRun := errors.Is(statErr, fs.ErrNotExist)

	st, err := store.Load(a.csvPath)
	if err != nil {
		return fmt.Errorf("load archive: %w", err)
	}
	log.Printf("Loaded archive %s: %d speeches", a.csvPath, st.Len())

	links, err := a.lister.List(ctx)
	if err != nil {
		return fmt.Errorf("list speeches: %w", err)
	}
	log.Printf("Listing yielded %d links", len(links))

	links = listing.FilterLinks(links,
		listing.NewKeywordFilter(a.keyword),
		listing.NewArchivedFilter(st.URLSet()),
	)
	log.Printf("%d links are new and match keyword %q", len(links), a.keyword)

	candidates := a.fetchCandidates(ctx, links)
	candidates = filter.ByKeyword(candidates, a.keyword)

	added := st.Merge(candidates)
	log.Printf("Merged %d new speeches (archive now %d)", added, st.Len())

	if added == 0 && !firstRun {
		log.Printf("No new speeches, archive left untouched")
		return nil
	}

	if err := st.Save(a.csvPath); err != nil {
		return fmt.Errorf("save archive: %w", err)
	}
	log.Printf("Archive saved to %s", a.csvPath)
	return nil
}

// fetchCandidates fetches each link's page sequentially and extracts a
// candidate speech. Per-candidate failures drop that candidate only.
func (a *Archiver) fetchCandidates(ctx context.Context, links []listing.Link) []domain.Speech {
	candidates := make([]domain.Speech, 0, len(links))
	for _, link := range links {
		sp, err := a.processor.Process(ctx, link)
		if err != nil {
			var fieldErr *content.FieldError
			if errors.As(err, &fieldErr) {
				log.Printf("Skipping %s: %v", link.URL, fieldErr)
			} else {
				log.Printf("Skipping %s: %v", link.URL, err)
			}
			continue
		}
		candidates = append(candidates, *sp)
	}
	return candidates
}
