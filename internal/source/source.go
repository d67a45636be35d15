// Package source aggregates job listings from multiple providers into the
// standardized listing schema. Real providers are enabled by configured
// credentials; the static mock catalog is always available as a fallback.
package source

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/jobscout/internal/job"
)

const (
	defaultMaxPerSource    = 50
	defaultDefaultLocation = "United States"
	httpTimeout            = 15 * time.Second
)

// Config selects and parameterizes the aggregator sources.
type Config struct {
	Adzuna          *AdzunaConfig
	Jooble          *JoobleConfig
	MaxPerSource    int
	DefaultLocation string
}

// AdzunaConfig holds Adzuna API credentials.
type AdzunaConfig struct {
	AppID   string
	APIKey  string
	Country string
}

// JoobleConfig holds the Jooble API key.
type JoobleConfig struct {
	APIKey string
}

type fetcher interface {
	Name() string
	Fetch(ctx context.Context, query, location string, maxResults int) (*job.Listings, error)
}

// Aggregator fans a search out to every enabled source and combines the
// results. A failing source is logged and skipped, never fatal.
type Aggregator struct {
	sources         []fetcher
	maxPerSource    int
	defaultLocation string
	logger          *zap.Logger
}

// New builds an aggregator from the configuration. Sources with missing
// credentials are left out; the mock catalog is always appended last.
func New(cfg *Config, logger *zap.Logger) *Aggregator {
	if cfg == nil {
		cfg = &Config{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := &http.Client{Timeout: httpTimeout}

	a := &Aggregator{
		maxPerSource:    cfg.MaxPerSource,
		defaultLocation: cfg.DefaultLocation,
		logger:          logger,
	}
	if a.maxPerSource <= 0 {
		a.maxPerSource = defaultMaxPerSource
	}
	if a.defaultLocation == "" {
		a.defaultLocation = defaultDefaultLocation
	}

	if cfg.Adzuna != nil && cfg.Adzuna.AppID != "" && cfg.Adzuna.APIKey != "" {
		a.sources = append(a.sources, newAdzuna(cfg.Adzuna, client, logger))
	}
	if cfg.Jooble != nil && cfg.Jooble.APIKey != "" {
		a.sources = append(a.sources, newJooble(cfg.Jooble, client, logger))
	}
	a.sources = append(a.sources, newMock())

	logger.Info("initialized job aggregator", zap.Strings("sources", a.Sources()))

	return a
}

// Sources lists the names of the enabled sources in fetch order.
func (a *Aggregator) Sources() []string {
	names := make([]string, 0, len(a.sources))
	for _, src := range a.sources {
		names = append(names, src.Name())
	}
	return names
}

// Fetch queries every enabled source concurrently and returns the combined
// listings in source order.
func (a *Aggregator) Fetch(ctx context.Context, query, location string) (*job.Listings, error) {
	if strings.TrimSpace(location) == "" {
		location = a.defaultLocation
	}

	results := make([]*job.Listings, len(a.sources))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range a.sources {
		g.Go(func() error {
			listings, err := src.Fetch(gctx, query, location, a.maxPerSource)
			if err != nil {
				a.logger.Error("fetching jobs failed",
					zap.String("source", src.Name()),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			results[i] = listings
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined := &job.Listings{}
	for _, listings := range results {
		combined.Append(listings)
	}

	a.logger.Info("fetched jobs",
		zap.String("query", query),
		zap.String("location", location),
		zap.Int("count", combined.Len()),
	)

	return combined, nil
}
