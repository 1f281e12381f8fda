// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"VOYAGO_PORT", "VOYAGO_MODEL", "VOYAGO_API_KEY", "VOYAGO_AGENT_LOOP",
		"VOYAGO_AGENT_MAX_ITERATIONS", "VOYAGO_AGENT_BUDGET",
		"VOYAGO_GEOCODE_INTERVAL", "VOYAGO_GEOCODE_CONCURRENCY",
		"VOYAGO_CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8000" {
		t.Errorf("Server.Port = %q, want 8000", cfg.Server.Port)
	}
	if !cfg.Agent.LoopEnabled {
		t.Error("Agent.LoopEnabled = false, want true by default")
	}
	if cfg.Agent.MaxIterations != 15 {
		t.Errorf("Agent.MaxIterations = %d, want 15", cfg.Agent.MaxIterations)
	}
	if cfg.Enrich.Interval != 500*time.Millisecond {
		t.Errorf("Enrich.Interval = %v, want 500ms", cfg.Enrich.Interval)
	}
	if diff := cmp.Diff([]string{"*"}, cfg.CORS.AllowedOrigins); diff != "" {
		t.Errorf("CORS.AllowedOrigins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VOYAGO_PORT", "9191")
	t.Setenv("VOYAGO_MODEL", "claude-sonnet-4-20250514")
	t.Setenv("VOYAGO_AGENT_LOOP", "false")
	t.Setenv("VOYAGO_AGENT_BUDGET", "90s")
	t.Setenv("VOYAGO_GEOCODE_CONCURRENCY", "4")
	t.Setenv("VOYAGO_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	if cfg.Server.Port != "9191" {
		t.Errorf("Server.Port = %q", cfg.Server.Port)
	}
	if cfg.Model.Name != "claude-sonnet-4-20250514" {
		t.Errorf("Model.Name = %q", cfg.Model.Name)
	}
	if cfg.Agent.LoopEnabled {
		t.Error("Agent.LoopEnabled = true, want false")
	}
	if cfg.Agent.ExecutionBudget != 90*time.Second {
		t.Errorf("Agent.ExecutionBudget = %v", cfg.Agent.ExecutionBudget)
	}
	if cfg.Enrich.Concurrency != 4 {
		t.Errorf("Enrich.Concurrency = %d", cfg.Enrich.Concurrency)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if diff := cmp.Diff(want, cfg.CORS.AllowedOrigins); diff != "" {
		t.Errorf("CORS.AllowedOrigins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("VOYAGO_AGENT_MAX_ITERATIONS", "lots")
	t.Setenv("VOYAGO_GEOCODE_INTERVAL", "soon")

	cfg := Load()

	if cfg.Agent.MaxIterations != 15 {
		t.Errorf("Agent.MaxIterations = %d, want default 15", cfg.Agent.MaxIterations)
	}
	if cfg.Enrich.Interval != 500*time.Millisecond {
		t.Errorf("Enrich.Interval = %v, want default 500ms", cfg.Enrich.Interval)
	}
}
