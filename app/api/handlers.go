package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin"

	"github.com/feedscout/feedscout/app/cfg"
	"github.com/feedscout/feedscout/app/scrape"
)

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   cfg.GetVersion(),
		"sources":   len(h.sources),
	})
}

func (h *Handler) ListSources(c *gin.Context) {
	sources := make([]gin.H, 0, len(h.sources))
	for _, src := range h.sources {
		entry := gin.H{
			"id":      src.ID,
			"name":    src.Name,
			"kind":    src.Kind,
			"enabled": src.Settings.Enabled,
		}
		if src.URL != "" {
			entry["url"] = src.URL
		}
		if src.Repo != "" {
			entry["repo"] = src.Repo
		}
		sources = append(sources, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(sources),
		"sources": sources,
	})
}

// GetSourceFindings scrapes one source on demand. A failing source
// responds 200 with zero findings and a warning, matching the policy
// that a broken source contributes nothing rather than breaking callers.
func (h *Handler) GetSourceFindings(c *gin.Context) {
	id := c.Param("source")

	adapter, ok := h.aggregator.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown source: " + id})
		return
	}

	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	findings, err := h.pipeline.Run(c.Request.Context(), adapter, opts)
	response := gin.H{
		"source":   id,
		"count":    len(findings),
		"findings": findings,
	}
	if err != nil {
		slog.Warn("Source scrape failed", "source", id, "error", err)
		response["warning"] = err.Error()
	}

	c.JSON(http.StatusOK, response)
}

// GetAllFindings scrapes every enabled source and returns the merged,
// deduplicated batch, newest first.
func (h *Handler) GetAllFindings(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	findings, err := h.aggregator.Run(c.Request.Context(), opts)
	response := gin.H{
		"count":    len(findings),
		"findings": findings,
	}
	if err != nil {
		slog.Warn("Aggregate scrape finished with source failures", "error", err)
		response["warning"] = err.Error()
	}

	c.JSON(http.StatusOK, response)
}

func parseOptions(c *gin.Context) (scrape.Options, error) {
	var opts scrape.Options

	if raw := c.Query("max"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil || max < 1 {
			return opts, errInvalidParam("max", raw)
		}
		opts.MaxItems = max
	}

	if raw := c.Query("since"); raw != "" {
		since, err := dateparse.ParseAny(raw)
		if err != nil {
			return opts, errInvalidParam("since", raw)
		}
		opts.Since = since
	}

	return opts, nil
}

type paramError struct {
	name, value string
}

func (e paramError) Error() string {
	return "invalid " + e.name + " parameter: " + e.value
}

func errInvalidParam(name, value string) error {
	return paramError{name: name, value: value}
}
