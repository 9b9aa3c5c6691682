package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/feedscout/feedscout/app/aggregate"
	"github.com/feedscout/feedscout/app/api"
	"github.com/feedscout/feedscout/app/cfg"
	"github.com/feedscout/feedscout/app/config"
	"github.com/feedscout/feedscout/app/github"
	"github.com/feedscout/feedscout/app/scrape"
	"github.com/feedscout/feedscout/app/sources"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg.Debug)

	slog.Info("Starting FeedScout", "version", appCfg.Version)

	loader := config.NewLoader(appCfg.SourcesDir)
	sourceConfigs, err := loader.LoadAll()
	if err != nil {
		slog.Error("Failed to load source configurations", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded source configurations", "count", len(sourceConfigs), "dir", appCfg.SourcesDir)

	timeout := time.Duration(appCfg.FetchTimeout) * time.Second
	fetcher := scrape.NewFetcher(&http.Client{}, appCfg.UserAgent, timeout)
	ghClient := github.NewClient(&http.Client{}, appCfg.GitHubAPIURL, appCfg.GitHubToken, appCfg.UserAgent, timeout)

	adapters, err := buildAdapters(sourceConfigs, fetcher, ghClient)
	if err != nil {
		slog.Error("Failed to build source adapters", "error", err)
		os.Exit(1)
	}
	slog.Info("Registered sources", "enabled", len(adapters), "configured", len(sourceConfigs))

	pipeline := scrape.NewPipeline()
	aggregator := aggregate.New(pipeline, adapters)

	if cfg.Once {
		runOnce(aggregator)
		return
	}

	handler := api.NewHandler(sourceConfigs, pipeline, aggregator)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // scrapes run inside request handlers
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// buildAdapters creates one adapter per enabled source, in stable id
// order so aggregate dedup (first occurrence wins) is deterministic.
func buildAdapters(configs map[string]*config.Source, fetcher *scrape.Fetcher, gh *github.Client) ([]scrape.Adapter, error) {
	ids := make([]string, 0, len(configs))
	for id, src := range configs {
		if !src.Settings.Enabled {
			slog.Debug("Source disabled, skipping", "source", id)
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	adapters := make([]scrape.Adapter, 0, len(ids))
	for _, id := range ids {
		adapter, err := sources.New(configs[id], fetcher, gh)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", id, err)
		}
		adapters = append(adapters, adapter)
	}
	return adapters, nil
}

// runOnce scrapes every enabled source and prints the merged findings
// as JSON on stdout. Per-source failures are logged, never fatal.
func runOnce(aggregator *aggregate.Aggregator) {
	findings, err := aggregator.Run(context.Background(), scrape.Options{})
	if err != nil {
		slog.Warn("Some sources failed", "error", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(findings); err != nil {
		slog.Error("Failed to encode findings", "error", err)
		os.Exit(1)
	}
}
