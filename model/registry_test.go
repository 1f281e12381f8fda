// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package model_test

import (
	"errors"
	"testing"

	"github.com/voyago/voyago/model"
	"github.com/voyago/voyago/types"
)

func TestRegistry_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		modelName string
		wantErr   bool
	}{
		{
			name:      "gemini model",
			modelName: "gemini-2.5-flash",
		},
		{
			name:      "gemini vertex path",
			modelName: "projects/p/locations/us-central1/publishers/google/models/gemini-2.0-flash",
		},
		{
			name:      "claude model",
			modelName: "claude-3-5-sonnet-latest",
		},
		{
			name:      "unknown model",
			modelName: "gpt-4o",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator, err := model.GetRegistry().Resolve(tt.modelName)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q): want error, got creator", tt.modelName)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.modelName, err)
			}
			if creator == nil {
				t.Fatalf("Resolve(%q): nil creator", tt.modelName)
			}
		})
	}
}

func TestNewGemini_MissingCredential(t *testing.T) {
	t.Setenv(model.EnvGoogleAPIKey, "")

	_, err := model.NewGemini(t.Context(), "", "")
	if err == nil {
		t.Fatal("want configuration error for missing API key")
	}
	var confErr types.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("want types.ConfigurationError, got %T: %v", err, err)
	}
}

func TestNewClaude_MissingCredential(t *testing.T) {
	t.Setenv(model.EnvAnthropicAPIKey, "")

	_, err := model.NewClaude(t.Context(), "", "")
	if err == nil {
		t.Fatal("want configuration error for missing API key")
	}
	var confErr types.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("want types.ConfigurationError, got %T: %v", err, err)
	}
}
