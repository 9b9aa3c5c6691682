package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
}

func TestLoadAllValidSources(t *testing.T) {
	dir := t.TempDir()

	writeSource(t, dir, "blog.yaml", `
id: anthropic-news
name: Anthropic News
kind: rss
url: https://www.anthropic.com/news/rss.xml
settings:
  enabled: true
  max_items: 15
`)
	writeSource(t, dir, "repo.yml", `
id: claude-code-commits
name: Claude Code Commits
kind: github_commits
repo: anthropics/claude-code
settings:
  enabled: true
`)

	sources, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got: %d", len(sources))
	}

	blog := sources["anthropic-news"]
	if blog == nil {
		t.Fatal("Expected source keyed by id")
	}
	if blog.Settings.MaxItems != 15 {
		t.Errorf("Expected max_items 15, got: %d", blog.Settings.MaxItems)
	}

	repo := sources["claude-code-commits"]
	if repo.Settings.MaxItems != 20 {
		t.Errorf("Expected default max_items 20, got: %d", repo.Settings.MaxItems)
	}
}

func TestLoadAllMissingDirectory(t *testing.T) {
	sources, err := NewLoader("/nonexistent/path").LoadAll()
	if err != nil {
		t.Fatalf("Expected no error for missing dir, got: %v", err)
	}
	if len(sources) != 0 {
		t.Errorf("Expected empty map, got: %d entries", len(sources))
	}
}

func TestLoadAllRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.yaml", `
id: bad
name: Bad
kind: telegraph
url: https://example.com
`)

	if _, err := NewLoader(dir).LoadAll(); err == nil {
		t.Error("Expected error for unknown kind")
	}
}

func TestLoadAllRejectsMissingRepo(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.yaml", `
id: bad
name: Bad
kind: github_releases
`)

	if _, err := NewLoader(dir).LoadAll(); err == nil {
		t.Error("Expected error for missing repo")
	}
}

func TestLoadAllRejectsBadRepoFormat(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.yaml", `
id: bad
name: Bad
kind: github_commits
repo: just-a-name
`)

	if _, err := NewLoader(dir).LoadAll(); err == nil {
		t.Error("Expected error for repo without owner")
	}
}

func TestLoadAllRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.yaml", `
id: dup
name: A
kind: rss
url: https://a.example.com/feed
`)
	writeSource(t, dir, "b.yaml", `
id: dup
name: B
kind: rss
url: https://b.example.com/feed
`)

	if _, err := NewLoader(dir).LoadAll(); err == nil {
		t.Error("Expected error for duplicate source ids")
	}
}
