package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Application configuration
	SourcesDir   string `long:"sources-dir" env:"SOURCES_DIR" default:"./sources" description:"Directory containing source configuration files"`
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Scraping configuration
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"8" description:"Per-fetch timeout in seconds"`
	GitHubToken  string `long:"github-token" env:"GITHUB_TOKEN" description:"GitHub API token (optional, raises rate limits)"`
	GitHubAPIURL string `long:"github-api-url" env:"GITHUB_API_URL" default:"https://api.github.com" description:"GitHub API base URL"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"FeedScout/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Once bool `long:"once" description:"Scrape all enabled sources once, print findings as JSON and exit"`
}

var globalCfg *Cfg

// Once is the one-shot flag, kept out of Cfg because it controls process
// mode rather than component behavior.
var Once bool

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SourcesDir:   raw.SourcesDir,
		Port:         raw.Port,
		APIAccessKey: raw.APIAccessKey,
		FetchTimeout: raw.FetchTimeout,
		GitHubToken:  raw.GitHubToken,
		GitHubAPIURL: raw.GitHubAPIURL,
		UserAgent:    raw.UserAgent,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	Once = raw.Once
	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
