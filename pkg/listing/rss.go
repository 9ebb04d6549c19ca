package listing

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// FeedListing fetches speech links from the source site's RSS/Atom feed
// variant of the listing (the Joomla ?format=feed&type=rss URL). The feed
// only carries the most recent entries, so it suits frequent incremental
// runs; the HTML listing remains the way to backfill.
type FeedListing struct {
	feedParser *gofeed.Parser
	feedURL    string
}

// NewFeedListing creates a feed-backed listing fetcher.
func NewFeedListing(feedURL string) *FeedListing {
	return &FeedListing{
		feedParser: gofeed.NewParser(),
		feedURL:    feedURL,
	}
}

// List fetches and parses the feed and returns one link per item.
func (l *FeedListing) List(ctx context.Context) ([]Link, error) {
	feed, err := l.feedParser.ParseURLWithContext(l.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	if feed == nil || len(feed.Items) == 0 {
		return nil, fmt.Errorf("feed contains no items")
	}

	links := make([]Link, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		links = append(links, Link{
			URL:   item.Link,
			Title: item.Title,
		})
	}

	if len(links) == 0 {
		return nil, fmt.Errorf("no valid links found in feed items")
	}
	return links, nil
}
