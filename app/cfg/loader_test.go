package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		SourcesDir:   "./sources",
		Port:         "8080",
		APIAccessKey: "test-key",
		FetchTimeout: 8,
		GitHubToken:  "token",
		GitHubAPIURL: "https://api.github.com",
		UserAgent:    "Test Agent",
		Debug:        true,
		Version:      "test-version",
	}

	if cfg.SourcesDir != "./sources" {
		t.Errorf("Expected sources dir './sources', got '%s'", cfg.SourcesDir)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.FetchTimeout != 8 {
		t.Errorf("Expected fetch timeout 8, got %d", cfg.FetchTimeout)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}
