package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"discurso-archive/pkg/domain"
)

// Column order is fixed so diffs between successive saves touch only
// appended rows.
var header = []string{"title", "date", "url", "text"}

// Load reads the archive from path. A missing file is the first-run
// bootstrap and yields an empty store; a file that exists but cannot be
// parsed is an error, so a corrupt archive is never silently overwritten.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read archive header %s: %w", path, err)
	}
	for i, name := range header {
		if head[i] != name {
			return nil, fmt.Errorf("archive %s: unexpected header column %q, want %q", path, head[i], name)
		}
	}

	s := New()
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read archive row %s: %w", path, err)
		}
		s.Merge([]domain.Speech{{
			Title: row[0],
			Date:  row[1],
			URL:   row[2],
			Text:  row[3],
		}})
	}
	return s, nil
}

// Save writes the full archive to path, header row first, RFC 4180
// quoting. The write goes to a temp file that replaces the archive on
// success, so a failed save leaves the previous file intact.
func (s *Store) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write archive header: %w", err)
	}
	for _, sp := range s.speeches {
		if err := w.Write([]string{sp.Title, sp.Date, sp.URL, sp.Text}); err != nil {
			tmp.Close()
			return fmt.Errorf("write archive row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp archive: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace archive %s: %w", path, err)
	}
	return nil
}
