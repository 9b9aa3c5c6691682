package sources

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"

	"github.com/feedscout/feedscout/app/config"
	"github.com/feedscout/feedscout/app/finding"
	"github.com/feedscout/feedscout/app/scrape"
)

// FeedAdapter covers every XML feed source: RSS 2.0 channels, Atom blogs
// and YouTube channel feeds. gofeed normalizes the format differences
// (pubDate vs published, guid vs id, dc:creator vs author, CDATA
// wrapping), so one adapter serves all three kinds.
type FeedAdapter struct {
	source   string
	url      string
	kind     finding.Type
	youtube  bool
	maxItems int
	fetcher  *scrape.Fetcher
	parser   *gofeed.Parser
}

func NewFeedAdapter(src *config.Source, fetcher *scrape.Fetcher) *FeedAdapter {
	kind := finding.TypeArticle
	youtube := src.Kind == config.KindYouTube
	if youtube {
		kind = finding.TypeVideo
	}
	return &FeedAdapter{
		source:   src.ID,
		url:      src.URL,
		kind:     kind,
		youtube:  youtube,
		maxItems: src.Settings.MaxItems,
		fetcher:  fetcher,
		parser:   gofeed.NewParser(),
	}
}

func (a *FeedAdapter) Source() string     { return a.source }
func (a *FeedAdapter) Type() finding.Type { return a.kind }

func (a *FeedAdapter) Extract(ctx context.Context, opts scrape.Options) ([]scrape.Item, error) {
	opts = scrape.Clamp(opts, a.maxItems)

	data, err := a.fetcher.Fetch(ctx, a.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	feed, err := a.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]scrape.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		item, ok := a.normalizeEntry(entry)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return scrape.Limit(items, opts), nil
}

// normalizeEntry converts one feed entry, reporting ok=false for entries
// missing a usable id or a parseable date. A bad entry is skipped, never
// fatal: one malformed entry must not zero out the batch.
func (a *FeedAdapter) normalizeEntry(entry *gofeed.Item) (scrape.Item, bool) {
	key := cmp.Or(entry.GUID, entry.Link)
	if key == "" {
		slog.Debug("Skipping entry without id or link", "source", a.source, "title", entry.Title)
		return scrape.Item{}, false
	}

	date := entry.PublishedParsed
	if date == nil {
		if entry.Published != "" {
			if parsed, err := dateparse.ParseAny(entry.Published); err == nil {
				date = &parsed
			}
		}
	}
	if date == nil {
		// A defaulted date would corrupt downstream since-filtering;
		// dropping the entry is the lesser harm.
		slog.Debug("Skipping entry without parseable date", "source", a.source, "title", entry.Title)
		return scrape.Item{}, false
	}

	metadata := make(map[string]any)
	if author := entryAuthor(entry); author != "" {
		metadata["author"] = author
	}

	if a.youtube {
		if id := videoID(entry); id != "" {
			metadata["video_id"] = id
		}
	}

	body := cmp.Or(entry.Description, entry.Content)
	if a.youtube && body == "" {
		body = mediaDescription(entry)
	}

	return scrape.Item{
		Key:      key,
		Title:    stripHTML(entry.Title),
		Body:     stripHTML(body),
		URL:      entry.Link,
		Date:     *date,
		Hints:    entry.Categories,
		Metadata: metadata,
	}, true
}

func entryAuthor(entry *gofeed.Item) string {
	if len(entry.Authors) > 0 && entry.Authors[0] != nil {
		return strings.TrimSpace(entry.Authors[0].Name)
	}
	if entry.Author != nil {
		return strings.TrimSpace(entry.Author.Name)
	}
	return ""
}

// videoID prefers the feed's own yt:videoId element over anything derived
// from the link: ids survive URL changes.
func videoID(entry *gofeed.Item) string {
	if ext, ok := entry.Extensions["yt"]; ok {
		if nodes, ok := ext["videoId"]; ok && len(nodes) > 0 {
			return nodes[0].Value
		}
	}
	return strings.TrimPrefix(entry.GUID, "yt:video:")
}

// mediaDescription digs the media:group description out of a YouTube
// Atom entry; gofeed leaves it in the media extension tree.
func mediaDescription(entry *gofeed.Item) string {
	media, ok := entry.Extensions["media"]
	if !ok {
		return ""
	}
	for _, group := range media["group"] {
		for _, desc := range group.Children["description"] {
			if desc.Value != "" {
				return desc.Value
			}
		}
	}
	return ""
}
