package filter

import (
	"testing"

	"discurso-archive/pkg/domain"
)

func TestByKeyword_CaseInsensitive(t *testing.T) {
	candidates := []domain.Speech{
		{Title: "Milei habla de economía"},
		{Title: "Anuncio ministerial"},
		{Title: "MILEI y el Congreso"},
	}

	kept := ByKeyword(candidates, "milei")

	if len(kept) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(kept))
	}
	if kept[0].Title != "Milei habla de economía" {
		t.Errorf("Expected first match 'Milei habla de economía', got '%s'", kept[0].Title)
	}
	if kept[1].Title != "MILEI y el Congreso" {
		t.Errorf("Expected second match 'MILEI y el Congreso', got '%s'", kept[1].Title)
	}
}

func TestByKeyword_FallsBackToText(t *testing.T) {
	candidates := []domain.Speech{
		{Title: "", Text: "El presidente Milei dijo..."},
		{Title: "", Text: "Otro texto sin la palabra"},
	}

	kept := ByKeyword(candidates, "milei")

	if len(kept) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(kept))
	}
	if kept[0].Text != "El presidente Milei dijo..." {
		t.Errorf("Unexpected match: %+v", kept[0])
	}
}

func TestByKeyword_EmptyKeywordKeepsAll(t *testing.T) {
	candidates := []domain.Speech{
		{Title: "Uno"},
		{Title: "Dos"},
	}

	if kept := ByKeyword(candidates, ""); len(kept) != 2 {
		t.Errorf("Expected all candidates kept, got %d", len(kept))
	}
}

func TestByKeyword_Deterministic(t *testing.T) {
	candidates := []domain.Speech{
		{Title: "Milei A"},
		{Title: "Milei B"},
		{Title: "Milei C"},
	}

	first := ByKeyword(candidates, "milei")
	second := ByKeyword(candidates, "milei")

	if len(first) != len(second) {
		t.Fatalf("Filter not deterministic: %d vs %d results", len(first), len(second))
	}
	for i := range first {
		if first[i].Title != second[i].Title {
			t.Errorf("Position %d differs between runs: %s vs %s", i, first[i].Title, second[i].Title)
		}
	}
}
