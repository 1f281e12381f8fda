// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package model wraps the generative text backends behind one completion
// interface. Model selection, sampling temperature and credential resolution
// live here; retry policy does not.
package model

import (
	"context"
)

// Model is a generative text backend: one prompt in, raw text out.
//
// Implementations perform no retries. A missing credential is a
// [github.com/voyago/voyago/types.ConfigurationError] at construction time,
// not a runtime failure.
type Model interface {
	// Name returns the backend model identifier.
	Name() string

	// Complete sends the prompt and returns the raw generated text.
	Complete(ctx context.Context, prompt string) (string, error)
}
