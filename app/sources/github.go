package sources

import (
	"cmp"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/feedscout/feedscout/app/classify"
	"github.com/feedscout/feedscout/app/config"
	"github.com/feedscout/feedscout/app/finding"
	"github.com/feedscout/feedscout/app/github"
	"github.com/feedscout/feedscout/app/scrape"
)

// File paths whose changes matter structurally even without a keyword
// hit in the commit message.
var importantPaths = []string{
	"src/tools",
	"skills/",
	".claude/",
	"prompts/",
}

// Changed-file extensions surfaced as keyword hints.
var languageHints = map[string]string{
	".py":    "python",
	".ts":    "typescript",
	".tsx":   "typescript",
	".js":    "javascript",
	".go":    "go",
	".rs":    "rust",
	".ipynb": "jupyter notebook",
}

// CommitsAdapter emits one commit per intermediate record, enriched with
// the commit's file-change list when the secondary lookup succeeds.
type CommitsAdapter struct {
	source   string
	repo     string
	maxItems int
	client   *github.Client
}

func NewCommitsAdapter(src *config.Source, client *github.Client) *CommitsAdapter {
	return &CommitsAdapter{source: src.ID, repo: src.Repo, maxItems: src.Settings.MaxItems, client: client}
}

func (a *CommitsAdapter) Source() string     { return a.source }
func (a *CommitsAdapter) Type() finding.Type { return finding.TypeCommit }

func (a *CommitsAdapter) Extract(ctx context.Context, opts scrape.Options) ([]scrape.Item, error) {
	opts = scrape.Clamp(opts, a.maxItems)

	commits, err := a.client.ListCommits(ctx, a.repo, opts.MaxItems, opts.Since)
	if err != nil {
		return nil, err
	}

	items := make([]scrape.Item, 0, len(commits))
	for _, commit := range commits {
		items = append(items, a.normalizeCommit(commit))
	}

	return scrape.Limit(items, opts), nil
}

func (a *CommitsAdapter) normalizeCommit(commit github.Commit) scrape.Item {
	title, body, _ := strings.Cut(commit.Message, "\n")
	body = strings.TrimSpace(body)

	paths := make([]string, 0, len(commit.Files))
	additions, deletions := 0, 0
	for _, f := range commit.Files {
		paths = append(paths, f.Filename)
		additions += f.Additions
		deletions += f.Deletions
	}

	url := fmt.Sprintf("https://github.com/%s/commit/%s", a.repo, commit.SHA)

	return scrape.Item{
		Key:     url,
		Title:   title,
		Body:    body,
		URL:     url,
		Date:    commit.Date,
		Paths:   paths,
		Hints:   detectLanguages(paths),
		Signals: pathSignals(paths),
		Metadata: map[string]any{
			"sha":           commit.SHA,
			"author":        commit.Author,
			"files_changed": len(commit.Files),
			"additions":     additions,
			"deletions":     deletions,
		},
	}
}

func detectLanguages(paths []string) []string {
	var hints []string
	seen := make(map[string]bool)
	for _, p := range paths {
		lang, ok := languageHints[strings.ToLower(path.Ext(p))]
		if !ok || seen[lang] {
			continue
		}
		seen[lang] = true
		hints = append(hints, lang)
	}
	return hints
}

func pathSignals(paths []string) []classify.Signal {
	for _, p := range paths {
		for _, important := range importantPaths {
			if strings.Contains(p, important) {
				return []classify.Signal{{
					Tier:   finding.RelevanceMedium,
					Reason: fmt.Sprintf("touches %s", important),
				}}
			}
		}
	}
	return nil
}

// ReleasesAdapter emits published releases. Prereleases are excluded
// unless the source opts in; the release flagged latest by the listing
// is structurally promoted to high.
type ReleasesAdapter struct {
	source             string
	repo               string
	maxItems           int
	includePrereleases bool
	client             *github.Client
}

func NewReleasesAdapter(src *config.Source, client *github.Client) *ReleasesAdapter {
	return &ReleasesAdapter{
		source:             src.ID,
		repo:               src.Repo,
		maxItems:           src.Settings.MaxItems,
		includePrereleases: src.Settings.IncludePrereleases,
		client:             client,
	}
}

func (a *ReleasesAdapter) Source() string     { return a.source }
func (a *ReleasesAdapter) Type() finding.Type { return finding.TypeRelease }

func (a *ReleasesAdapter) Extract(ctx context.Context, opts scrape.Options) ([]scrape.Item, error) {
	opts = scrape.Clamp(opts, a.maxItems)

	releases, err := a.client.ListReleases(ctx, a.repo, opts.MaxItems)
	if err != nil {
		return nil, err
	}

	items := make([]scrape.Item, 0, len(releases))
	for _, release := range releases {
		if release.Prerelease && !a.includePrereleases {
			continue
		}
		items = append(items, a.normalizeRelease(release))
	}

	return scrape.Limit(items, opts), nil
}

func (a *ReleasesAdapter) normalizeRelease(release github.Release) scrape.Item {
	url := fmt.Sprintf("https://github.com/%s/releases/tag/%s", a.repo, release.TagName)

	var signals []classify.Signal
	if release.Latest {
		signals = []classify.Signal{{
			Tier:   finding.RelevanceHigh,
			Reason: "latest release",
		}}
	}

	return scrape.Item{
		Key:     url,
		Title:   cmp.Or(release.Name, release.TagName),
		Body:    release.Body,
		URL:     url,
		Date:    release.PublishedAt,
		Signals: signals,
		Metadata: map[string]any{
			"tag":        release.TagName,
			"prerelease": release.Prerelease,
		},
	}
}
