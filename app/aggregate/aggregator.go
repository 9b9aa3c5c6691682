// Package aggregate merges scrape batches across configured sources.
// Sources run one at a time; a failing source contributes zero findings
// and its error is collected rather than aborting the run.
package aggregate

import (
	"context"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/feedscout/feedscout/app/finding"
	"github.com/feedscout/feedscout/app/scrape"
)

type Aggregator struct {
	pipeline *scrape.Pipeline
	adapters []scrape.Adapter
}

func New(pipeline *scrape.Pipeline, adapters []scrape.Adapter) *Aggregator {
	return &Aggregator{pipeline: pipeline, adapters: adapters}
}

// Adapters returns the configured adapters in run order.
func (a *Aggregator) Adapters() []scrape.Adapter {
	return a.adapters
}

// Lookup returns the adapter for a source id.
func (a *Aggregator) Lookup(source string) (scrape.Adapter, bool) {
	for _, adapter := range a.adapters {
		if adapter.Source() == source {
			return adapter, true
		}
	}
	return nil, false
}

// Run scrapes every source sequentially and merges the batches: findings
// are deduplicated by id (first occurrence wins, so run order decides
// which source's copy survives) and sorted newest first. The returned
// error, when non-nil, is a multierror of per-source failures; the
// findings slice is valid either way.
func (a *Aggregator) Run(ctx context.Context, opts scrape.Options) ([]finding.Finding, error) {
	var errs *multierror.Error

	merged := make([]finding.Finding, 0)
	seen := make(map[string]bool)

	for _, adapter := range a.adapters {
		batch, err := a.pipeline.Run(ctx, adapter, opts)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		for _, f := range batch {
			if seen[f.ID] {
				continue
			}
			seen[f.ID] = true
			merged = append(merged, f)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})

	return merged, errs.ErrorOrNil()
}
