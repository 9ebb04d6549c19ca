package content

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// FieldError reports a speech page missing a required field. The caller
// drops that candidate and continues with the rest of the run.
type FieldError struct {
	Field string
	Cause error
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("field %q: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("field %q not found in page", e.Field)
}

func (e *FieldError) Unwrap() error { return e.Cause }

// ExtractTitle extracts the speech title from a speech page.
// The source site puts the title in the first <h2>; fall back to
// readability and common meta tags for pages that deviate.
func ExtractTitle(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	if title := strings.TrimSpace(doc.Find("h2").First().Text()); title != "" {
		return title, nil
	}

	// Fallback: readability's title detection
	if article, err := readability.FromReader(strings.NewReader(htmlContent), nil); err == nil {
		if title := strings.TrimSpace(article.Title); title != "" {
			return title, nil
		}
	}

	// Fallback: <title>, <h1>, og:title
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title, nil
	}
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title, nil
	}
	if title, exists := doc.Find("meta[property='og:title']").Attr("content"); exists && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title), nil
	}

	return "", &FieldError{Field: "title"}
}

// ExtractText extracts the transcript body from a speech page.
// The transcript lives in <article> paragraphs; paragraphs wrapping a
// <strong> are pull-quotes and headings on the source site, not spoken
// text, so they are skipped.
func ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	article := doc.Find("article").First()
	if article.Length() > 0 {
		var parts []string
		article.Find("p").Each(func(i int, p *goquery.Selection) {
			if p.Find("strong").Length() > 0 {
				return
			}
			if text := strings.TrimSpace(p.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		if len(parts) > 0 {
			return strings.Join(parts, "\n"), nil
		}
	}

	// Fallback: readability full-text extraction
	if a, err := readability.FromReader(strings.NewReader(htmlContent), nil); err == nil {
		if text := strings.TrimSpace(a.TextContent); text != "" {
			return text, nil
		}
	}

	return "", &FieldError{Field: "text"}
}

// ExtractDate extracts the speech date from the page's <time> element and
// normalizes it to ISO form.
func ExtractDate(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	raw := strings.TrimSpace(doc.Find("time").First().Text())
	if raw == "" {
		return "", &FieldError{Field: "date"}
	}

	date, err := ParseSpanishDate(raw)
	if err != nil {
		return "", &FieldError{Field: "date", Cause: err}
	}
	return date, nil
}
