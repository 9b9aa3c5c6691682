package cfg

type Cfg struct {
	// Application configuration
	SourcesDir   string
	Port         string
	APIAccessKey string

	// Scraping configuration
	FetchTimeout int // seconds
	GitHubToken  string
	GitHubAPIURL string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
