package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/feedscout/feedscout/app/config"
	"github.com/feedscout/feedscout/app/scrape"
)

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>Changelog</title>
  <script>window.analytics = true;</script>
  <style>.hidden { display: none; }</style>
</head>
<body>
  <main>
    <h1>Product changelog</h1>
    <p>February 10th, 2026 Added tool use streaming. The new blocks stream
    incrementally and deprecate the old batch mode.</p>
    <p>January 5th, 2026 Documentation refresh. Reorganized the prompting
    guide and added examples.</p>
    <p>December 20th, 2025 Minor fixes.</p>
  </main>
</body>
</html>`

func docsAdapter(t *testing.T, page string) *DocsAdapter {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)

	src := &config.Source{ID: "changelog", Name: "Changelog", Kind: config.KindDocs, URL: server.URL}
	return NewDocsAdapter(src, NewStubFetcher(t, server))
}

func TestDocsAdapterSegmentsByDate(t *testing.T) {
	adapter := docsAdapter(t, docsPage)

	items, err := adapter.Extract(context.Background(), scrape.Options{MaxItems: 10})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 date blocks, got: %d", len(items))
	}

	first := items[0]
	want := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	if !first.Date.Equal(want) {
		t.Errorf("Expected date %v, got: %v", want, first.Date)
	}
	if first.Title != "Added tool use streaming." {
		t.Errorf("Expected first sentence as title, got: %q", first.Title)
	}
	if first.URL == "" {
		t.Error("Expected page URL on the item")
	}
}

func TestDocsAdapterKeysIncludeDate(t *testing.T) {
	adapter := docsAdapter(t, docsPage)

	items, err := adapter.Extract(context.Background(), scrape.Options{MaxItems: 10})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	seen := map[string]bool{}
	for _, item := range items {
		if seen[item.Key] {
			t.Errorf("Duplicate key %q for same-URL page", item.Key)
		}
		seen[item.Key] = true
	}
}

func TestDocsAdapterSinceFilter(t *testing.T) {
	adapter := docsAdapter(t, docsPage)

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items, err := adapter.Extract(context.Background(), scrape.Options{MaxItems: 10, Since: since})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Expected 2 items after since filter, got: %d", len(items))
	}
}

func TestDocsAdapterNoDatesYieldsEmpty(t *testing.T) {
	adapter := docsAdapter(t, "<html><body><p>No dates anywhere here.</p></body></html>")

	items, err := adapter.Extract(context.Background(), scrape.Options{MaxItems: 10})
	if err != nil {
		t.Fatalf("Expected no error for undated page, got: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected 0 items, got: %d", len(items))
	}
}

func TestDocsAdapterTrailingDateStillEmitted(t *testing.T) {
	// A date at the very end of the page captures an empty block;
	// best effort means it is still emitted, not discarded.
	page := "<html><body><p>Intro text. March 3rd, 2026</p></body></html>"
	adapter := docsAdapter(t, page)

	items, err := adapter.Extract(context.Background(), scrape.Options{MaxItems: 10})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got: %d", len(items))
	}
	if items[0].Title == "" {
		t.Error("Expected fallback title for empty block")
	}
}
