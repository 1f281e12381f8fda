// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/voyago/voyago/types"
)

const (
	// GeminiDefaultModel is the default model name for [Gemini].
	GeminiDefaultModel = "gemini-2.5-flash"

	// EnvGoogleAPIKey is the environment variable name for the Google AI API key.
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
)

// Gemini is the Google Gemini backend.
type Gemini struct {
	config Config

	name        string
	genAIClient *genai.Client
}

var _ Model = (*Gemini)(nil)

// NewGemini creates a new [Gemini] instance.
//
// If apiKey is empty the [EnvGoogleAPIKey] environment variable is consulted;
// if both are absent a [types.ConfigurationError] is returned.
func NewGemini(ctx context.Context, apiKey, modelName string, opts ...Option) (*Gemini, error) {
	if modelName == "" {
		modelName = GeminiDefaultModel
	}

	if apiKey == "" {
		apiKey = os.Getenv(EnvGoogleAPIKey)
		if apiKey == "" {
			return nil, types.ConfigurationError(fmt.Sprintf("either apiKey arg or %q environment variable must be set", EnvGoogleAPIKey))
		}
	}

	genAIClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	config := newConfig()
	for _, opt := range opts {
		config = opt.apply(config)
	}

	return &Gemini{
		config:      config,
		name:        modelName,
		genAIClient: genAIClient,
	}, nil
}

// Name implements [Model].
func (m *Gemini) Name() string {
	return m.name
}

// Complete implements [Model].
func (m *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				genai.NewPartFromText(prompt),
			},
		},
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(m.config.temperature),
		MaxOutputTokens: m.config.maxOutputTokens,
	}

	response, err := m.genAIClient.Models.GenerateContent(ctx, m.name, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	text := response.Text()
	if text == "" {
		return "", errors.New("gemini API returned an empty completion")
	}
	m.config.logger.DebugContext(ctx, "gemini completion", "model", m.name, "chars", len(text))

	return text, nil
}
