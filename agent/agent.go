// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package agent orchestrates the research phase: it sequences tool calls to
// assemble a bounded research context for a trip, running an iterative
// reasoning loop when possible and a fixed deterministic tool sequence when
// not. Research always produces output; tool failures degrade into inline
// diagnostic notes instead of aborting.
package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/voyago/voyago/model"
	"github.com/voyago/voyago/types"
)

const (
	// defaultMaxIterations bounds the reasoning loop.
	defaultMaxIterations = 15

	// defaultExecutionBudget bounds the reasoning loop's wall-clock time.
	defaultExecutionBudget = 300 * time.Second

	// snippet caps for the deterministic fallback sequence.
	searchSnippetCap  = 800
	rankSnippetCap    = 600
	weatherSnippetCap = 400
	customsSnippetCap = 400
)

// Researcher assembles research context strings from trip requests. It is
// immutable after construction and safe for concurrent use.
type Researcher struct {
	model model.Model
	tools *types.Toolbox

	maxIterations   int
	executionBudget time.Duration
	loopEnabled     bool
	logger          *slog.Logger
}

// Option configures a [Researcher].
type Option func(*Researcher)

// WithMaxIterations bounds the reasoning loop's iteration count.
func WithMaxIterations(n int) Option {
	return func(r *Researcher) { r.maxIterations = n }
}

// WithExecutionBudget bounds the reasoning loop's wall-clock time.
func WithExecutionBudget(d time.Duration) Option {
	return func(r *Researcher) { r.executionBudget = d }
}

// WithLoopMode enables or disables the reasoning loop. When disabled the
// deterministic fallback sequence always runs.
func WithLoopMode(enabled bool) Option {
	return func(r *Researcher) { r.loopEnabled = enabled }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Researcher) { r.logger = logger }
}

// New returns a [Researcher] over the given model and toolbox. The model may
// be nil, in which case only the deterministic sequence runs and its
// summarization step is skipped.
func New(m model.Model, tools *types.Toolbox, opts ...Option) *Researcher {
	r := &Researcher{
		model:           m,
		tools:           tools,
		maxIterations:   defaultMaxIterations,
		executionBudget: defaultExecutionBudget,
		loopEnabled:     true,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Research produces the research context for the request. It never returns
// an error: a failing reasoning loop falls back to the deterministic
// sequence, and failing tools contribute inline diagnostic notes.
func (r *Researcher) Research(ctx context.Context, req *types.TripRequest) string {
	if r.loopEnabled && r.model != nil {
		out, err := r.runLoop(ctx, req)
		if err == nil {
			return out
		}
		r.logger.WarnContext(ctx, "reasoning loop failed, using deterministic fallback", "error", err)
	}
	return r.runFixedSequence(ctx, req)
}

// truncate caps s at n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
