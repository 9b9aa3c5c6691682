package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const commitListJSON = `[
  {
    "sha": "abc123",
    "commit": {
      "message": "Add tool use support\n\nImplements the new tool blocks",
      "author": {"name": "Jordan Dev", "date": "2026-02-01T10:00:00Z"}
    },
    "author": {"login": "jordandev"}
  },
  {
    "sha": "def456",
    "commit": {
      "message": "Fix typo in README",
      "author": {"name": "Sam Writer", "date": "2026-01-30T09:00:00Z"}
    },
    "author": null
  }
]`

const commitDetailJSON = `{
  "files": [
    {"filename": "src/tools/use.py", "additions": 120, "deletions": 4, "changes": 124}
  ]
}`

const releaseListJSON = `[
  {
    "tag_name": "v2.1.0-rc1",
    "name": "v2.1.0 Release Candidate",
    "body": "prerelease notes",
    "published_at": "2026-02-05T00:00:00Z",
    "prerelease": true,
    "draft": false
  },
  {
    "tag_name": "v2.0.0",
    "name": "Version 2.0",
    "body": "Stable release with breaking change to hooks",
    "published_at": "2026-02-01T00:00:00Z",
    "prerelease": false,
    "draft": false
  },
  {
    "tag_name": "v1.9.0",
    "name": "Version 1.9",
    "body": "older release",
    "published_at": "2026-01-01T00:00:00Z",
    "prerelease": false,
    "draft": false
  }
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.Client(), server.URL, "test-token", "feedscout-test", 5*time.Second)
}

func TestListCommits(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got: %s", auth)
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/commits/abc123"),
			strings.HasSuffix(r.URL.Path, "/commits/def456"):
			w.Write([]byte(commitDetailJSON))
		case strings.Contains(r.URL.Path, "/commits"):
			w.Write([]byte(commitListJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	commits, err := c.ListCommits(context.Background(), "acme/agent", 10, time.Time{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("Expected 2 commits, got: %d", len(commits))
	}

	first := commits[0]
	if first.SHA != "abc123" {
		t.Errorf("Expected sha abc123, got: %s", first.SHA)
	}
	if first.Author != "jordandev" {
		t.Errorf("Expected login preferred over name, got: %s", first.Author)
	}
	if len(first.Files) != 1 || first.Files[0].Filename != "src/tools/use.py" {
		t.Errorf("Expected enriched file list, got: %v", first.Files)
	}

	if commits[1].Author != "Sam Writer" {
		t.Errorf("Expected fallback to commit author name, got: %s", commits[1].Author)
	}
}

func TestListCommitsDetailFailureIsolated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/commits/abc123"):
			w.WriteHeader(http.StatusInternalServerError)
		case strings.HasSuffix(r.URL.Path, "/commits/def456"):
			w.Write([]byte(commitDetailJSON))
		case strings.Contains(r.URL.Path, "/commits"):
			w.Write([]byte(commitListJSON))
		}
	})

	commits, err := c.ListCommits(context.Background(), "acme/agent", 10, time.Time{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("Expected both commits despite one detail failure, got: %d", len(commits))
	}
	if len(commits[0].Files) != 0 {
		t.Errorf("Expected empty file list for failed detail fetch, got: %v", commits[0].Files)
	}
	if len(commits[1].Files) != 1 {
		t.Errorf("Expected sibling detail fetch unaffected, got: %v", commits[1].Files)
	}
}

func TestListCommitsNon200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.ListCommits(context.Background(), "acme/agent", 10, time.Time{})
	if err == nil {
		t.Error("Expected error for 403 response")
	}
}

func TestListReleases(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(releaseListJSON))
	})

	releases, err := c.ListReleases(context.Background(), "acme/agent", 10)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(releases) != 3 {
		t.Fatalf("Expected 3 releases, got: %d", len(releases))
	}

	if releases[0].Latest {
		t.Error("Prerelease must not be flagged latest")
	}
	if !releases[1].Latest {
		t.Error("Expected newest non-prerelease flagged latest")
	}
	if releases[2].Latest {
		t.Error("Only one release may be flagged latest")
	}
}

func TestListReleasesMalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := c.ListReleases(context.Background(), "acme/agent", 10)
	if err == nil {
		t.Error("Expected error for malformed JSON")
	}
}
