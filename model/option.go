// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"log/slog"
)

// Config holds the sampling and observability knobs shared by all backends.
type Config struct {
	// temperature is the sampling temperature. The default suits
	// creative-but-structured output.
	temperature float32

	// maxOutputTokens bounds the completion length.
	maxOutputTokens int32

	// logger is the logger used for logging.
	logger *slog.Logger
}

func newConfig() Config {
	return Config{
		temperature:     0.7,
		maxOutputTokens: 8192,
		logger:          slog.Default(),
	}
}

// Option is a function that modifies the [Config] model.
type Option interface {
	apply(base Config) Config
}

type temperatureOption float32

func (o temperatureOption) apply(base Config) Config {
	base.temperature = float32(o)
	return base
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float32) Option {
	return temperatureOption(temperature)
}

type maxOutputTokensOption int32

func (o maxOutputTokensOption) apply(base Config) Config {
	base.maxOutputTokens = int32(o)
	return base
}

// WithMaxOutputTokens bounds the completion length.
func WithMaxOutputTokens(n int32) Option {
	return maxOutputTokensOption(n)
}

type loggerOption struct{ *slog.Logger }

func (o loggerOption) apply(base Config) Config {
	base.logger = o.Logger
	return base
}

// WithLogger sets the logger for the model.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger}
}
