package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of source configurations
type Loader struct {
	sourcesDir string
}

func NewLoader(sourcesDir string) *Loader {
	return &Loader{sourcesDir: sourcesDir}
}

// LoadAll loads every YAML source definition from the sources directory,
// keyed by source id.
func (l *Loader) LoadAll() (map[string]*Source, error) {
	sources := make(map[string]*Source)

	if _, err := os.Stat(l.sourcesDir); os.IsNotExist(err) {
		return sources, nil
	}

	files, err := filepath.Glob(filepath.Join(l.sourcesDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	ymlFiles, err := filepath.Glob(filepath.Join(l.sourcesDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		source, err := l.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}

		if err := l.validate(source); err != nil {
			return nil, fmt.Errorf("invalid source %s: %w", file, err)
		}

		if _, exists := sources[source.ID]; exists {
			return nil, fmt.Errorf("duplicate source id %q in %s", source.ID, file)
		}

		sources[source.ID] = source
		slog.Debug("Loaded source configuration", "file", file, "id", source.ID)
	}

	return sources, nil
}

func (l *Loader) loadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var source Source
	if err := yaml.Unmarshal(data, &source); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&source)

	return &source, nil
}

func (l *Loader) setDefaults(source *Source) {
	if source.Settings.MaxItems == 0 {
		source.Settings.MaxItems = 20
	}
}

func (l *Loader) validate(source *Source) error {
	if source.ID == "" {
		return fmt.Errorf("source id is required")
	}
	if source.Name == "" {
		return fmt.Errorf("source name is required")
	}

	switch source.Kind {
	case KindRSS, KindAtom, KindYouTube, KindDocs:
		if source.URL == "" {
			return fmt.Errorf("url is required for kind %s", source.Kind)
		}
	case KindGitHubCommits, KindGitHubReleases:
		if source.Repo == "" {
			return fmt.Errorf("repo is required for kind %s", source.Kind)
		}
		if !strings.Contains(source.Repo, "/") {
			return fmt.Errorf("repo must be in owner/name form, got %q", source.Repo)
		}
	default:
		return fmt.Errorf("unknown source kind: %q", source.Kind)
	}

	if source.Settings.MaxItems < 0 {
		return fmt.Errorf("max items must be non-negative")
	}

	return nil
}
