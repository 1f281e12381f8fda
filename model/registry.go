// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
	"regexp"
	"sync"
)

// init registers the built-in backends.
func init() {
	RegisterLLMType(
		[]string{
			`claude-.*`,
		},
		func(ctx context.Context, apiKey, modelName string, opts ...Option) (Model, error) {
			return NewClaude(ctx, apiKey, modelName, opts...)
		},
	)

	RegisterLLMType(
		[]string{
			`gemini-.*`,
			`projects\/.*\/locations\/.*\/publishers\/google\/models\/gemini-.*`,
		},
		func(ctx context.Context, apiKey, modelName string, opts ...Option) (Model, error) {
			return NewGemini(ctx, apiKey, modelName, opts...)
		},
	)
}

// CreatorFunc is a function type that creates a model instance.
type CreatorFunc func(ctx context.Context, apiKey, modelName string, opts ...Option) (Model, error)

// registryEntry pairs a regex pattern with a model creator function.
type registryEntry struct {
	pattern *regexp.Regexp
	creator CreatorFunc
}

// Registry resolves model implementations from model names by regex pattern.
type Registry struct {
	mu      sync.RWMutex
	entries []registryEntry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// GetRegistry returns the singleton registry instance.
func GetRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = &Registry{}
	})
	return defaultRegistry
}

// Register registers a model pattern with a creator function.
func (r *Registry) Register(modelPattern string, creator CreatorFunc) error {
	pattern, err := regexp.Compile(modelPattern)
	if err != nil {
		return fmt.Errorf("invalid model pattern %q: %w", modelPattern, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, registryEntry{pattern: pattern, creator: creator})
	return nil
}

// Resolve returns the creator registered for the given model name.
func (r *Registry) Resolve(modelName string) (CreatorFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.pattern.MatchString(modelName) {
			return entry.creator, nil
		}
	}
	return nil, fmt.Errorf("no model registered for name %q", modelName)
}

// RegisterLLMType registers the creator for every given pattern on the
// singleton registry. Invalid patterns panic; this only runs from init.
func RegisterLLMType(modelPatterns []string, creator CreatorFunc) {
	registry := GetRegistry()
	for _, pattern := range modelPatterns {
		if err := registry.Register(pattern, creator); err != nil {
			panic(err)
		}
	}
}

// New creates the model registered for modelName.
func New(ctx context.Context, apiKey, modelName string, opts ...Option) (Model, error) {
	creator, err := GetRegistry().Resolve(modelName)
	if err != nil {
		return nil, err
	}
	return creator(ctx, apiKey, modelName, opts...)
}
