package store

import (
	"os"
	"path/filepath"
	"testing"

	"discurso-archive/pkg/domain"
)

func TestLoad_MissingFileBootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.csv")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Expected empty store for missing file, got error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d speeches", s.Len())
	}
}

func TestLoad_MalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "title,date,url,text\n\"unbalanced,2025-01-01,https://example.com/a,body\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for malformed row, got nil")
	}
}

func TestLoad_WrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong.csv")
	content := "name,when,link,body\na,b,c,d\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for wrong header, got nil")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.csv")

	speeches := []domain.Speech{
		{
			Title: `Discurso con "comillas", comas`,
			Date:  "2025-02-13",
			URL:   "https://example.com/a",
			Text:  "línea uno\nlínea dos, con coma\ny \"citas\"",
		},
		{
			Title: "Anuncio",
			Date:  "2025-03-01",
			URL:   "https://example.com/b",
			Text:  "texto plano",
		},
		{
			Title: "Sin permalink",
			Date:  "2025-03-02",
			URL:   "",
			Text:  "texto",
		},
	}

	s := New()
	if added := s.Merge(speeches); added != 3 {
		t.Fatalf("Expected 3 speeches merged, got %d", added)
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("Failed to save store: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	if loaded.Len() != len(speeches) {
		t.Fatalf("Expected %d speeches after round trip, got %d", len(speeches), loaded.Len())
	}
	for i, got := range loaded.Speeches() {
		want := speeches[i]
		if got.Title != want.Title || got.Date != want.Date || got.URL != want.URL || got.Text != want.Text {
			t.Errorf("Speech %d mismatch after round trip:\n got %+v\nwant %+v", i, got, want)
		}
	}
}

func TestSave_PreservesInsertionOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.csv")

	s := New()
	s.Merge([]domain.Speech{
		{Title: "Tercero por fecha", Date: "2025-03-01", URL: "https://example.com/c"},
		{Title: "Primero por fecha", Date: "2025-01-01", URL: "https://example.com/a"},
		{Title: "Segundo por fecha", Date: "2025-02-01", URL: "https://example.com/b"},
	})
	if err := s.Save(path); err != nil {
		t.Fatalf("Failed to save store: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	expectedOrder := []string{"https://example.com/c", "https://example.com/a", "https://example.com/b"}
	for i, sp := range loaded.Speeches() {
		if sp.URL != expectedOrder[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expectedOrder[i], sp.URL)
		}
	}
}

func TestMerge_SkipsDuplicateKeys(t *testing.T) {
	s := New()
	s.Merge([]domain.Speech{
		{Title: "A", Date: "2025-01-01", URL: "https://example.com/a"},
		{Title: "B", Date: "2025-01-02", URL: "https://example.com/b"},
	})

	added := s.Merge([]domain.Speech{
		{Title: "B", Date: "2025-01-02", URL: "https://example.com/b"},
		{Title: "C", Date: "2025-01-03", URL: "https://example.com/c"},
	})

	if added != 1 {
		t.Errorf("Expected added count 1, got %d", added)
	}

	expectedOrder := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}
	if s.Len() != len(expectedOrder) {
		t.Fatalf("Expected %d speeches, got %d", len(expectedOrder), s.Len())
	}
	for i, sp := range s.Speeches() {
		if sp.URL != expectedOrder[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expectedOrder[i], sp.URL)
		}
	}
}

func TestMerge_Idempotent(t *testing.T) {
	candidates := []domain.Speech{
		{Title: "A", Date: "2025-01-01", URL: "https://example.com/a"},
		{Title: "B", Date: "2025-01-02", URL: "https://example.com/b"},
	}

	s := New()
	first := s.Merge(candidates)
	second := s.Merge(candidates)

	if first != 2 {
		t.Errorf("Expected first merge to add 2, got %d", first)
	}
	if second != 0 {
		t.Errorf("Expected second merge to add 0, got %d", second)
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 speeches after repeated merge, got %d", s.Len())
	}
}

func TestMerge_TitleDateKeyWhenNoURL(t *testing.T) {
	s := New()
	s.Merge([]domain.Speech{{Title: "A", Date: "2025-01-01"}})

	if added := s.Merge([]domain.Speech{{Title: "A", Date: "2025-01-01"}}); added != 0 {
		t.Errorf("Expected duplicate title+date to be skipped, added %d", added)
	}
	if added := s.Merge([]domain.Speech{{Title: "A", Date: "2025-01-02"}}); added != 1 {
		t.Errorf("Expected different date to be added, added %d", added)
	}
}
