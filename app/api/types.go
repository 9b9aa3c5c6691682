package api

import (
	"github.com/feedscout/feedscout/app/aggregate"
	"github.com/feedscout/feedscout/app/config"
	"github.com/feedscout/feedscout/app/scrape"
)

type Handler struct {
	sources    map[string]*config.Source
	pipeline   *scrape.Pipeline
	aggregator *aggregate.Aggregator
}

func NewHandler(sources map[string]*config.Source, pipeline *scrape.Pipeline, aggregator *aggregate.Aggregator) *Handler {
	return &Handler{
		sources:    sources,
		pipeline:   pipeline,
		aggregator: aggregator,
	}
}
