// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging carries a [*slog.Logger] through a [context.Context] so the
// pipeline stages share one request-scoped logger.
package logging

import (
	"context"
	"log/slog"
	"os"
)

// contextKey is how we find [*slog.Logger] in a [context.Context].
type contextKey struct{}

// NewContext returns a new [context.Context], derived from ctx, which carries the provided [*slog.Logger].
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns a [slog.Logger] from ctx.
//
// If no [*slog.Logger] is found, this returns a JSON logger writing to stdout
// at [slog.LevelInfo].
func FromContext(ctx context.Context) *slog.Logger {
	if v := ctx.Value(contextKey{}); v != nil {
		return v.(*slog.Logger)
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
