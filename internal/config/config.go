// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/voyago/voyago/model"
)

// Config holds all configuration for the voyago server.
type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Agent  AgentConfig
	Enrich EnrichConfig
	Tools  ToolsConfig
	CORS   CORSConfig
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// ModelConfig selects the generation model. The API key matching the model
// family is read by the model registry itself when the key here is empty.
type ModelConfig struct {
	Name   string
	APIKey string
}

// AgentConfig tunes the research agent.
type AgentConfig struct {
	LoopEnabled     bool
	MaxIterations   int
	ExecutionBudget time.Duration
}

// EnrichConfig tunes coordinate enrichment.
type EnrichConfig struct {
	Interval    time.Duration
	Concurrency int
}

// ToolsConfig overrides the outbound tool endpoints, mainly for testing
// against local fixtures.
type ToolsConfig struct {
	SearchBaseURL  string
	GeocodeBaseURL string
	UserAgent      string
}

// CORSConfig holds the CORS settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("VOYAGO_PORT", "8000"),
			ShutdownTimeout: getDurationEnv("VOYAGO_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Model: ModelConfig{
			Name:   getEnv("VOYAGO_MODEL", model.GeminiDefaultModel),
			APIKey: os.Getenv("VOYAGO_API_KEY"),
		},
		Agent: AgentConfig{
			LoopEnabled:     getBoolEnv("VOYAGO_AGENT_LOOP", true),
			MaxIterations:   getIntEnv("VOYAGO_AGENT_MAX_ITERATIONS", 15),
			ExecutionBudget: getDurationEnv("VOYAGO_AGENT_BUDGET", 300*time.Second),
		},
		Enrich: EnrichConfig{
			Interval:    getDurationEnv("VOYAGO_GEOCODE_INTERVAL", 500*time.Millisecond),
			Concurrency: getIntEnv("VOYAGO_GEOCODE_CONCURRENCY", 1),
		},
		Tools: ToolsConfig{
			SearchBaseURL:  os.Getenv("VOYAGO_SEARCH_URL"),
			GeocodeBaseURL: os.Getenv("VOYAGO_GEOCODE_URL"),
			UserAgent:      os.Getenv("VOYAGO_USER_AGENT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getSliceEnv("VOYAGO_CORS_ORIGINS", []string{"*"}),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getSliceEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
