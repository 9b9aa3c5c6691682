// Package sources holds the per-source adapters that extract
// intermediate records from each wire format. All of them run through
// the one pipeline in app/scrape; only extraction differs.
package sources

import (
	"fmt"

	"github.com/feedscout/feedscout/app/config"
	"github.com/feedscout/feedscout/app/github"
	"github.com/feedscout/feedscout/app/scrape"
)

// New builds the adapter for a configured source.
func New(src *config.Source, fetcher *scrape.Fetcher, gh *github.Client) (scrape.Adapter, error) {
	switch src.Kind {
	case config.KindRSS, config.KindAtom, config.KindYouTube:
		return NewFeedAdapter(src, fetcher), nil
	case config.KindGitHubCommits:
		return NewCommitsAdapter(src, gh), nil
	case config.KindGitHubReleases:
		return NewReleasesAdapter(src, gh), nil
	case config.KindDocs:
		return NewDocsAdapter(src, fetcher), nil
	default:
		return nil, fmt.Errorf("unknown source kind: %q", src.Kind)
	}
}
