package config

// Kind selects which adapter a source runs through.
type Kind string

const (
	KindRSS            Kind = "rss"
	KindAtom           Kind = "atom"
	KindYouTube        Kind = "youtube"
	KindGitHubCommits  Kind = "github_commits"
	KindGitHubReleases Kind = "github_releases"
	KindDocs           Kind = "docs"
)

// Source is one configured origin, loaded from a YAML file.
type Source struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Kind     Kind     `yaml:"kind"`
	URL      string   `yaml:"url"`  // feed/page URL (rss, atom, youtube, docs)
	Repo     string   `yaml:"repo"` // owner/name (github kinds)
	Settings Settings `yaml:"settings"`
}

type Settings struct {
	Enabled            bool `yaml:"enabled"`
	MaxItems           int  `yaml:"max_items"`
	IncludePrereleases bool `yaml:"include_prereleases"`
}
