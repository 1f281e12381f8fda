// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package service is the top-level itinerary façade. It sequences research,
// generation, parsing, enrichment and markdown synthesis, and converts every
// failure into an [types.ItineraryOutcome] — callers never see a raised error
// or a panic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/voyago/agent"
	"github.com/voyago/voyago/enrich"
	"github.com/voyago/voyago/markdown"
	"github.com/voyago/voyago/model"
	"github.com/voyago/voyago/parser"
	"github.com/voyago/voyago/pkg/logging"
	"github.com/voyago/voyago/prompt"
	"github.com/voyago/voyago/types"
)

// Stage names the pipeline states a request moves through.
type Stage string

const (
	StageIdle       Stage = "idle"
	StageResearch   Stage = "research"
	StageGeneration Stage = "generation"
	StageParsing    Stage = "parsing"
	StageEnriching  Stage = "enriching"
	StageFinalized  Stage = "finalized"
	StageFailed     Stage = "failed"
)

// generationAttempts bounds how often the generation call is retried on
// transport failure. Retry policy lives here, not in the model client.
const generationAttempts = 2

// createdAtLayout is the report timestamp format.
const createdAtLayout = "2006-01-02 15:04:05"

// Service runs the itinerary pipeline. It is built once at process startup
// and is immutable afterwards; request handling only reads it.
type Service struct {
	model      model.Model
	researcher *agent.Researcher
	parser     *parser.ItineraryParser
	enricher   *enrich.Enricher
	logger     *slog.Logger
}

// Option configures a [Service].
type Option func(*options)

type options struct {
	agentOpts  []agent.Option
	enrichOpts []enrich.Option
	logger     *slog.Logger
}

// WithAgentOptions forwards options to the research agent.
func WithAgentOptions(opts ...agent.Option) Option {
	return func(o *options) { o.agentOpts = append(o.agentOpts, opts...) }
}

// WithEnrichOptions forwards options to the coordinate enricher.
func WithEnrichOptions(opts ...enrich.Option) Option {
	return func(o *options) { o.enrichOpts = append(o.enrichOpts, opts...) }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New builds the service and its immutable orchestrator/parser pair. Call it
// once at startup, outside request handling.
func New(m model.Model, tools *types.Toolbox, opts ...Option) (*Service, error) {
	if m == nil {
		return nil, types.ConfigurationError("a generation model is required")
	}
	if tools == nil {
		return nil, types.ConfigurationError("a toolbox is required")
	}

	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	agentOpts := append([]agent.Option{agent.WithLogger(o.logger)}, o.agentOpts...)
	enrichOpts := append([]enrich.Option{enrich.WithLogger(o.logger)}, o.enrichOpts...)

	return &Service{
		model:      m,
		researcher: agent.New(m, tools, agentOpts...),
		parser:     parser.New(),
		enricher:   enrich.New(tools.Geocode, enrichOpts...),
		logger:     o.logger,
	}, nil
}

// GenerateItinerary runs the full pipeline for one request. It never returns
// a raised error: failures, including panics from any stage, come back as an
// outcome with Success=false. Processing time is recorded either way.
func (s *Service) GenerateItinerary(ctx context.Context, req *types.TripRequest) (outcome *types.ItineraryOutcome) {
	start := time.Now()
	stage := StageIdle

	destination := ""
	if req != nil {
		destination = req.Destination
	}
	logger := s.logger.With("request_id", uuid.NewString(), "destination", destination)
	ctx = logging.NewContext(ctx, logger)

	fail := func(err error) *types.ItineraryOutcome {
		logger.ErrorContext(ctx, "itinerary generation failed", "stage", string(stage), "error", err)
		return &types.ItineraryOutcome{
			Success:        false,
			Message:        fmt.Sprintf("Error generating itinerary: %v", err),
			ProcessingTime: elapsedSeconds(start),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			outcome = fail(fmt.Errorf("panic at stage %s: %v", stage, r))
		}
	}()

	if req == nil {
		return fail(&types.ValidationError{Field: "request", Msg: "request is required"})
	}
	if err := req.Validate(); err != nil {
		return fail(err)
	}

	stage = StageResearch
	logger.InfoContext(ctx, "research started", "duration_days", req.Duration)
	research := s.researcher.Research(ctx, req)

	stage = StageGeneration
	raw, err := s.complete(ctx, prompt.Build(req, research))
	if err != nil {
		return fail(err)
	}

	stage = StageParsing
	report, err := s.parser.Parse(raw, req.Duration)
	if err != nil {
		return fail(err)
	}

	stage = StageEnriching
	s.enricher.Enrich(ctx, report, req.Destination)

	report.MarkdownDescription = markdown.Render(report)
	report.CreatedAt = time.Now().Format(createdAtLayout)

	stage = StageFinalized
	elapsed := elapsedSeconds(start)
	logger.InfoContext(ctx, "itinerary generated", "days", report.TotalDays, "processing_time", elapsed)

	return &types.ItineraryOutcome{
		Success:        true,
		Itinerary:      report,
		Message:        "Itinerary generated successfully",
		ProcessingTime: elapsed,
	}
}

// complete issues the generation call, retrying transport failures only.
// Parse failures are not retried; regenerating on bad structure would hide
// systematic prompt problems.
func (s *Service) complete(ctx context.Context, finalPrompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= generationAttempts; attempt++ {
		raw, err := s.model.Complete(ctx, finalPrompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		logging.FromContext(ctx).WarnContext(ctx, "generation attempt failed", "attempt", attempt, "error", err)
	}
	return "", fmt.Errorf("generation failed after %d attempts: %w", generationAttempts, lastErr)
}

// elapsedSeconds returns the elapsed time in seconds, rounded to 2 decimals.
func elapsedSeconds(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*100) / 100
}

// Healthy reports whether the service was fully initialized.
func (s *Service) Healthy() bool {
	return s.model != nil && s.researcher != nil && s.parser != nil
}
