package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/feedscout/feedscout/app/classify"
	"github.com/feedscout/feedscout/app/finding"
)

// Pipeline is the single orchestration every source runs through:
// extract intermediate records, then per item score, categorize,
// extract keywords, plan actions, derive the id and assemble the
// Finding. Source differences live entirely in the Adapter.
type Pipeline struct {
	classifier  *classify.Classifier
	categorizer *classify.Categorizer
	keywords    *classify.KeywordExtractor
	actions     *classify.ActionPlanner
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		classifier:  classify.NewClassifier(),
		categorizer: classify.NewCategorizer(),
		keywords:    classify.NewKeywordExtractor(),
		actions:     classify.NewActionPlanner(),
	}
}

// Run scrapes one source. A whole-source failure (fetch error, unparseable
// document) is logged and returned alongside an empty batch; it is the
// caller's decision whether to surface it, and it never aborts other
// sources. Per-item problems are handled inside the adapter and never
// reach this level.
func (p *Pipeline) Run(ctx context.Context, adapter Adapter, opts Options) ([]finding.Finding, error) {
	start := time.Now()

	items, err := adapter.Extract(ctx, opts)
	if err != nil {
		slog.Error("Scrape failed", "source", adapter.Source(), "error", err)
		return []finding.Finding{}, fmt.Errorf("source %s: %w", adapter.Source(), err)
	}

	findings := make([]finding.Finding, 0, len(items))
	for _, item := range items {
		findings = append(findings, p.assemble(adapter, item))
	}

	slog.Info("Scrape completed",
		"source", adapter.Source(),
		"duration", time.Since(start),
		"findings", len(findings))

	return findings, nil
}

func (p *Pipeline) assemble(adapter Adapter, item Item) finding.Finding {
	text := item.Title + " " + item.Body
	if len(item.Paths) > 0 {
		text += " " + strings.Join(item.Paths, " ")
	}

	relevance, reason := p.classifier.Run(text, item.Signals)
	category := p.categorizer.Run(text)
	keywords := p.keywords.Run(text, item.Hints)

	title := finding.Truncate(item.Title, finding.TitleLimit)
	actions := p.actions.Run(relevance, category, title, text)

	metadata := item.Metadata
	if metadata == nil {
		metadata = make(map[string]any)
	}
	metadata["relevance_reason"] = reason

	return finding.Finding{
		ID:          finding.ID(item.Key),
		Source:      adapter.Source(),
		Type:        adapter.Type(),
		Date:        item.Date.UTC().Format(time.RFC3339),
		URL:         item.URL,
		Title:       title,
		Summary:     finding.Truncate(item.Body, finding.SummaryLimit),
		Relevance:   relevance,
		Category:    category,
		Keywords:    keywords,
		ActionItems: actions,
		Metadata:    metadata,
	}
}
