// Package github is a minimal REST client for the commit and release
// listings the scrapers consume. Credentials are ambient: a token handed
// in by the caller is attached as a bearer header, nothing else.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.github.com"

// detailConcurrency bounds parallel per-commit file-detail lookups.
const detailConcurrency = 4

type Client struct {
	client    *http.Client
	baseURL   string
	token     string
	userAgent string
	timeout   time.Duration
	limiter   *rate.Limiter
}

func NewClient(client *http.Client, baseURL, token, userAgent string, timeout time.Duration) *Client {
	if client == nil {
		client = &http.Client{}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		userAgent: userAgent,
		timeout:   timeout,
		// GitHub allows 5000 req/h authenticated; stay well under it
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
}

type Commit struct {
	SHA     string
	Author  string
	Date    time.Time
	Message string
	Files   []CommitFile
}

type CommitFile struct {
	Filename  string
	Additions int
	Deletions int
	Changes   int
}

type Release struct {
	TagName     string
	Name        string
	Body        string
	PublishedAt time.Time
	Prerelease  bool
	Latest      bool
}

// Wire shapes for the REST responses. Only the consumed fields are mapped.

type commitListEntry struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
}

type commitDetail struct {
	Files []struct {
		Filename  string `json:"filename"`
		Additions int    `json:"additions"`
		Deletions int    `json:"deletions"`
		Changes   int    `json:"changes"`
	} `json:"files"`
}

type releaseEntry struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
	Prerelease  bool   `json:"prerelease"`
	Draft       bool   `json:"draft"`
}

// ListCommits returns up to perPage commits for owner/repo, newest first
// as the API serves them, each enriched with its file-change list. A
// failed file-detail lookup leaves that one commit with no files and
// never fails the batch.
func (c *Client) ListCommits(ctx context.Context, repo string, perPage int, since time.Time) ([]Commit, error) {
	url := fmt.Sprintf("%s/repos/%s/commits?per_page=%d", c.baseURL, repo, perPage)
	if !since.IsZero() {
		url += "&since=" + since.UTC().Format(time.RFC3339)
	}

	data, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits for %s: %w", repo, err)
	}

	var entries []commitListEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode commit list for %s: %w", repo, err)
	}

	commits := make([]Commit, 0, len(entries))
	for _, entry := range entries {
		date, err := time.Parse(time.RFC3339, entry.Commit.Author.Date)
		if err != nil {
			slog.Debug("Skipping commit with unparseable date", "repo", repo, "sha", entry.SHA)
			continue
		}
		author := entry.Commit.Author.Name
		if entry.Author != nil && entry.Author.Login != "" {
			author = entry.Author.Login
		}
		commits = append(commits, Commit{
			SHA:     entry.SHA,
			Author:  author,
			Date:    date,
			Message: entry.Commit.Message,
		})
	}

	c.enrichFiles(ctx, repo, commits)

	return commits, nil
}

// enrichFiles loads file-change details for each commit concurrently.
// Failures are isolated per commit: the commit keeps an empty file list.
func (c *Client) enrichFiles(ctx context.Context, repo string, commits []Commit) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)

	for i := range commits {
		g.Go(func() error {
			files, err := c.commitFiles(gctx, repo, commits[i].SHA)
			if err != nil {
				slog.Warn("File detail fetch failed, continuing without files",
					"repo", repo, "sha", commits[i].SHA, "error", err)
				return nil
			}
			commits[i].Files = files
			return nil
		})
	}

	// Goroutines never return errors, so this only waits.
	g.Wait()
}

func (c *Client) commitFiles(ctx context.Context, repo, sha string) ([]CommitFile, error) {
	data, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/commits/%s", c.baseURL, repo, sha))
	if err != nil {
		return nil, err
	}

	var detail commitDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode commit detail: %w", err)
	}

	files := make([]CommitFile, 0, len(detail.Files))
	for _, f := range detail.Files {
		files = append(files, CommitFile{
			Filename:  f.Filename,
			Additions: f.Additions,
			Deletions: f.Deletions,
			Changes:   f.Changes,
		})
	}
	return files, nil
}

// ListReleases returns published releases for owner/repo in API order,
// skipping drafts. The newest non-prerelease is flagged Latest.
func (c *Client) ListReleases(ctx context.Context, repo string, perPage int) ([]Release, error) {
	data, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/releases?per_page=%d", c.baseURL, repo, perPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list releases for %s: %w", repo, err)
	}

	var entries []releaseEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode release list for %s: %w", repo, err)
	}

	releases := make([]Release, 0, len(entries))
	latestSeen := false
	for _, entry := range entries {
		if entry.Draft {
			continue
		}
		published, err := time.Parse(time.RFC3339, entry.PublishedAt)
		if err != nil {
			slog.Debug("Skipping release with unparseable date", "repo", repo, "tag", entry.TagName)
			continue
		}
		release := Release{
			TagName:     entry.TagName,
			Name:        entry.Name,
			Body:        entry.Body,
			PublishedAt: published,
			Prerelease:  entry.Prerelease,
		}
		if !latestSeen && !entry.Prerelease {
			release.Latest = true
			latestSeen = true
		}
		releases = append(releases, release)
	}

	return releases, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
