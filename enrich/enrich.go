// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package enrich backfills missing coordinates on a validated itinerary
// report. Enrichment is strictly best-effort: a failed lookup leaves the
// location's coordinates nil and never fails the pipeline. Calls are spaced
// by a shared rate limiter out of politeness to the geocoding provider.
package enrich

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/voyago/voyago/types"
)

const (
	// defaultInterval is the spacing between geocoding calls.
	defaultInterval = 500 * time.Millisecond

	// defaultConcurrency keeps enrichment sequential unless raised.
	defaultConcurrency = 1
)

// Enricher fills in missing coordinates via the geocoding tool.
type Enricher struct {
	geocode     types.Tool
	limiter     *rate.Limiter
	concurrency int
	logger      *slog.Logger
}

// Option configures an [Enricher].
type Option func(*Enricher)

// WithInterval sets the minimum spacing between geocoding calls.
func WithInterval(d time.Duration) Option {
	return func(e *Enricher) {
		if d <= 0 {
			e.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		e.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithConcurrency bounds how many lookups may be in flight at once. The
// shared limiter still enforces per-provider call spacing.
func WithConcurrency(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) { e.logger = logger }
}

// New returns an [Enricher] over the given geocoding tool.
func New(geocode types.Tool, opts ...Option) *Enricher {
	e := &Enricher{
		geocode:     geocode,
		limiter:     rate.NewLimiter(rate.Every(defaultInterval), 1),
		concurrency: defaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich backfills coordinates for every location in the report lacking
// them, scoping lookups with the destination. Locations that already carry
// coordinates are never touched.
func (e *Enricher) Enrich(ctx context.Context, report *types.ItineraryReport, destination string) {
	if e.geocode == nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for _, loc := range pending(report) {
		g.Go(func() error {
			e.enrichOne(gctx, loc, destination)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()
}

// pending collects every location in the report missing coordinates.
func pending(report *types.ItineraryReport) []*types.Location {
	var locs []*types.Location
	for di := range report.DayPlans {
		for ai := range report.DayPlans[di].Activities {
			if loc := &report.DayPlans[di].Activities[ai].Location; !loc.HasCoordinates() {
				locs = append(locs, loc)
			}
		}
	}
	for i := range report.TopAttractions {
		if loc := &report.TopAttractions[i]; !loc.HasCoordinates() {
			locs = append(locs, loc)
		}
	}
	for i := range report.MustVisitPlaces {
		if loc := &report.MustVisitPlaces[i]; !loc.HasCoordinates() {
			locs = append(locs, loc)
		}
	}
	return locs
}

// enrichOne performs one rate-limited lookup. Both coordinates are assigned
// together or not at all.
func (e *Enricher) enrichOne(ctx context.Context, loc *types.Location, destination string) {
	if err := e.limiter.Wait(ctx); err != nil {
		return
	}

	query := loc.Name
	if destination != "" {
		query = loc.Name + ", " + destination
	}

	result := e.geocode.Call(ctx, types.Query{Text: query})
	if result.Degraded() {
		e.logger.DebugContext(ctx, "geocoding failed", "place", loc.Name, "error", result.Err)
		return
	}

	lat, lng, ok := parseLatLng(result.Output)
	if !ok {
		e.logger.DebugContext(ctx, "unparsable geocoding response", "place", loc.Name, "response", result.Output)
		return
	}
	loc.Latitude = &lat
	loc.Longitude = &lng
}

// parseLatLng parses a "lat,lng" response.
func parseLatLng(s string) (lat, lng float64, ok bool) {
	latText, lngText, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(lngText), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
