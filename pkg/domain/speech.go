package domain

import "time"

// Speech represents one archived speech transcript
type Speech struct {
	Title      string
	Date       string // ISO date, "2006-01-02"
	URL        string
	Text       string
	ArchivedAt time.Time
}

// Key returns the natural key used for deduplication across runs.
// The permalink is stable on the source site, so it wins when present;
// otherwise title+date identifies the speech.
func (s Speech) Key() string {
	if s.URL != "" {
		return s.URL
	}
	return s.Title + "\n" + s.Date
}
