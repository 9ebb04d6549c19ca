// Package listing discovers speech permalinks on the source site's
// listing page, its paginated variants, and its feed.
package listing

import "context"

// Link is a speech permalink discovered on a listing page.
type Link struct {
	URL   string
	Title string // listing-box caption, optional
}

// Lister fetches the current set of speech links from a source.
type Lister interface {
	List(ctx context.Context) ([]Link, error)
}
