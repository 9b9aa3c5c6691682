package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/feedscout/feedscout/app/config"
	"github.com/feedscout/feedscout/app/finding"
	"github.com/feedscout/feedscout/app/scrape"
)

// datePattern matches long-form month-name dates like "January 5th, 2026".
var datePattern = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2})(?:st|nd|rd|th)?,\s+(\d{4})`)

// DocsAdapter is the degraded-mode parser for documentation pages with no
// structured feed: it locates month-name dates in the cleaned page text
// and treats everything between one date and the next as that date's
// content block. Segmentation is best effort; a poorly cut block is still
// emitted with whatever text it captured.
type DocsAdapter struct {
	source   string
	url      string
	maxItems int
	fetcher  *scrape.Fetcher
}

func NewDocsAdapter(src *config.Source, fetcher *scrape.Fetcher) *DocsAdapter {
	return &DocsAdapter{source: src.ID, url: src.URL, maxItems: src.Settings.MaxItems, fetcher: fetcher}
}

func (a *DocsAdapter) Source() string     { return a.source }
func (a *DocsAdapter) Type() finding.Type { return finding.TypeArticle }

func (a *DocsAdapter) Extract(ctx context.Context, opts scrape.Options) ([]scrape.Item, error) {
	opts = scrape.Clamp(opts, a.maxItems)

	data, err := a.fetcher.Fetch(ctx, a.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	text := a.pageText(data)

	matches := datePattern.FindAllStringSubmatchIndex(text, -1)
	items := make([]scrape.Item, 0, len(matches))

	for i, match := range matches {
		dateStr := text[match[0]:match[1]]
		date, err := parseLongDate(text[match[2]:match[3]], text[match[4]:match[5]], text[match[6]:match[7]])
		if err != nil {
			slog.Debug("Skipping block with unparseable date", "source", a.source, "date", dateStr)
			continue
		}

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		block := normalizeWhitespace(text[match[1]:end])

		items = append(items, a.normalizeBlock(block, date))
	}

	return scrape.Limit(items, opts), nil
}

// pageText extracts readable text from the raw page, preferring the
// readability extraction and falling back to a bare tag strip when the
// page defeats it.
func (a *DocsAdapter) pageText(data []byte) string {
	pageURL, _ := url.Parse(a.url)

	article, err := readability.FromReader(strings.NewReader(string(data)), pageURL)
	if err == nil && article.TextContent != "" {
		return article.TextContent
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return string(data)
	}
	doc.Find("script, style, nav, footer").Remove()
	return doc.Text()
}

func (a *DocsAdapter) normalizeBlock(block string, date time.Time) scrape.Item {
	title := block
	if idx := strings.Index(block, ". "); idx > 0 && idx < 120 {
		title = block[:idx+1]
	}
	if title == "" {
		title = "Documentation update " + date.Format("January 2, 2006")
	}

	// Docs pages reuse one URL across updates, so the date joins the key.
	key := a.url + "#" + date.Format("2006-01-02")

	return scrape.Item{
		Key:   key,
		Title: title,
		Body:  block,
		URL:   a.url,
		Date:  date,
	}
}

func parseLongDate(month, day, year string) (time.Time, error) {
	return time.Parse("January 2 2006", fmt.Sprintf("%s %s %s", month, day, year))
}
