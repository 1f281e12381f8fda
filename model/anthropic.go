// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/voyago/voyago/types"
)

const (
	// ClaudeDefaultModel is the default model name for [Claude].
	ClaudeDefaultModel = string(anthropic.ModelClaude3_5SonnetLatest)

	// EnvAnthropicAPIKey is the environment variable name for the Anthropic API key.
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
)

// Claude is the Anthropic Claude backend.
type Claude struct {
	config Config

	name            string
	anthropicClient anthropic.Client
}

var _ Model = (*Claude)(nil)

// NewClaude creates a new [Claude] instance.
//
// If apiKey is empty the [EnvAnthropicAPIKey] environment variable is
// consulted; if both are absent a [types.ConfigurationError] is returned.
func NewClaude(ctx context.Context, apiKey, modelName string, opts ...Option) (*Claude, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAnthropicAPIKey)
		if apiKey == "" {
			return nil, types.ConfigurationError(fmt.Sprintf("either apiKey arg or %q environment variable must be set", EnvAnthropicAPIKey))
		}
	}

	if modelName == "" {
		modelName = ClaudeDefaultModel
	}

	config := newConfig()
	for _, opt := range opts {
		config = opt.apply(config)
	}

	return &Claude{
		config:          config,
		name:            modelName,
		anthropicClient: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Name implements [Model].
func (m *Claude) Name() string {
	return m.name
}

// Complete implements [Model].
func (m *Claude) Complete(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(m.name),
		MaxTokens:   int64(m.config.maxOutputTokens),
		Temperature: anthropic.Float(float64(m.config.temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	message, err := m.anthropicClient.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude API error: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("claude API returned an empty completion")
	}
	m.config.logger.DebugContext(ctx, "claude completion", "model", m.name, "chars", sb.Len())

	return sb.String(), nil
}
