package scrape

import (
	"context"
	"time"

	"github.com/feedscout/feedscout/app/classify"
	"github.com/feedscout/feedscout/app/finding"
)

// Options bound one scrape call: at most MaxItems records, none dated
// strictly before Since (when set).
type Options struct {
	MaxItems int
	Since    time.Time // zero value means no floor
}

// Item is the intermediate record a source adapter extracts from its
// wire format, carrying just enough for the downstream pipeline stages.
type Item struct {
	Key      string // stable identifying string the Finding id is derived from
	Title    string
	Body     string
	URL      string
	Date     time.Time
	Paths    []string // changed file paths, included in the relevance scan
	Hints    []string // extra keyword hints (feed tags, detected languages)
	Signals  []classify.Signal
	Metadata map[string]any
}

// Adapter is the per-source strategy: it fetches the source and extracts
// intermediate records in feed order, already bounded by opts. Adapters
// never re-sort and never fail the batch for one malformed entry.
type Adapter interface {
	Source() string
	Type() finding.Type
	Extract(ctx context.Context, opts Options) ([]Item, error)
}

// Clamp bounds opts.MaxItems by the source's configured ceiling. A
// non-positive ceiling falls back to DefaultMaxItems so no adapter ever
// extracts unbounded.
func Clamp(opts Options, ceiling int) Options {
	if ceiling <= 0 {
		ceiling = DefaultMaxItems
	}
	if opts.MaxItems <= 0 || opts.MaxItems > ceiling {
		opts.MaxItems = ceiling
	}
	return opts
}

// DefaultMaxItems bounds a scrape when neither the caller nor the source
// configuration supplies a limit.
const DefaultMaxItems = 20

// Limit applies the shared parser contract to extracted items: drop
// anything dated strictly before Since, then truncate to MaxItems,
// preserving feed order.
func Limit(items []Item, opts Options) []Item {
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if !opts.Since.IsZero() && item.Date.Before(opts.Since) {
			continue
		}
		kept = append(kept, item)
		if opts.MaxItems > 0 && len(kept) >= opts.MaxItems {
			break
		}
	}
	return kept
}
