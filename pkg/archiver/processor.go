package archiver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"discurso-archive/pkg/content"
	"discurso-archive/pkg/domain"
	"discurso-archive/pkg/httpclient"
	"discurso-archive/pkg/listing"
)

// SpeechProcessor turns a listing link into a full speech record.
type SpeechProcessor interface {
	Process(ctx context.Context, link listing.Link) (*domain.Speech, error)
}

// HTTPSpeechProcessor implements SpeechProcessor by fetching the speech
// page and extracting its fields with the content package.
type HTTPSpeechProcessor struct {
	client *httpclient.HTTPClient
}

// NewHTTPSpeechProcessor creates a processor with the default client.
func NewHTTPSpeechProcessor() *HTTPSpeechProcessor {
	return &HTTPSpeechProcessor{
		client: httpclient.New(),
	}
}

// Process fetches the speech page and extracts title, date, and text.
// A missing required field comes back as a *content.FieldError so the
// caller can drop the candidate and keep going.
func (p *HTTPSpeechProcessor) Process(ctx context.Context, link listing.Link) (*domain.Speech, error) {
	htmlContent, err := p.fetchHTML(ctx, link.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch speech page: %w", err)
	}

	title, err := content.ExtractTitle(htmlContent)
	if err != nil {
		return nil, err
	}

	date, err := content.ExtractDate(htmlContent)
	if err != nil {
		return nil, err
	}

	text, err := content.ExtractText(htmlContent)
	if err != nil {
		return nil, err
	}

	return &domain.Speech{
		Title:      title,
		Date:       date,
		URL:        link.URL,
		Text:       text,
		ArchivedAt: time.Now(),
	}, nil
}

func (p *HTTPSpeechProcessor) fetchHTML(ctx context.Context, url string) (string, error) {
	resp, err := p.client.Get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if strings.TrimSpace(string(body)) == "" {
		return "", fmt.Errorf("server returned empty response (status: %d)", resp.StatusCode)
	}
	return string(body), nil
}
