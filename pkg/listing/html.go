package listing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"discurso-archive/pkg/httpclient"

	"github.com/PuerkitoBio/goquery"
)

// itemsPerPage is the listing page size on the source site; pagination is
// a ?start=N offset in steps of this size.
const itemsPerPage = 40

// HTMLListing fetches speech links from the source site's HTML listing
// page and, optionally, its paginated variants. Pages are fetched
// sequentially to stay polite to the source server.
type HTMLListing struct {
	client  *httpclient.HTTPClient
	baseURL string
	pages   int
}

// NewHTMLListing creates a listing fetcher for the given base URL.
// pages is the number of paginated pages to walk; values below 1 fetch
// only the first page.
func NewHTMLListing(baseURL string, pages int) *HTMLListing {
	if pages < 1 {
		pages = 1
	}
	return &HTMLListing{
		client:  httpclient.New(),
		baseURL: baseURL,
		pages:   pages,
	}
}

// List fetches the configured pages and returns all discovered links in
// page order. An unreachable page or non-2xx status is fatal. A first
// page with no recognizable speech boxes is an error rather than an
// empty result, so a site redesign surfaces instead of producing an
// empty update.
func (l *HTMLListing) List(ctx context.Context) ([]Link, error) {
	var all []Link
	for page := 0; page < l.pages; page++ {
		pageURL, err := l.pageURL(page)
		if err != nil {
			return nil, err
		}

		html, err := l.fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetch listing page %s: %w", pageURL, err)
		}

		links, err := extractSpeechLinks(html, l.baseURL)
		if err != nil {
			if page > 0 && len(all) > 0 {
				// Walked past the last page
				break
			}
			return nil, fmt.Errorf("parse listing page %s: %w", pageURL, err)
		}
		all = append(all, links...)
	}
	return all, nil
}

// pageURL builds the URL for the nth listing page (0-based).
func (l *HTMLListing) pageURL(page int) (string, error) {
	if page == 0 {
		return l.baseURL, nil
	}
	u, err := url.Parse(l.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", l.baseURL, err)
	}
	q := u.Query()
	q.Set("start", fmt.Sprintf("%d", page*itemsPerPage))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (l *HTMLListing) fetch(ctx context.Context, pageURL string) (string, error) {
	resp, err := l.client.Get(ctx, pageURL)
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
	return string(body), nil
}

// extractSpeechLinks extracts speech links from the listing's content
// boxes. Relative hrefs are resolved against baseURL. Anchors without an
// href are skipped.
func extractSpeechLinks(html, baseURL string) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	var links []Link
	seen := make(map[string]bool)

	doc.Find("div.blog div.contentboxes div.item").Each(func(i int, item *goquery.Selection) {
		item.Find("a").Each(func(j int, a *goquery.Selection) {
			href, exists := a.Attr("href")
			if !exists || href == "" {
				return
			}
			ref, err := url.Parse(href)
			if err != nil {
				return
			}
			resolved := base.ResolveReference(ref).String()
			if seen[resolved] {
				return
			}
			seen[resolved] = true
			links = append(links, Link{
				URL:   resolved,
				Title: strings.TrimSpace(a.Text()),
			})
		})
	})

	if len(links) == 0 {
		return nil, fmt.Errorf("no speech links found in listing")
	}
	return links, nil
}
