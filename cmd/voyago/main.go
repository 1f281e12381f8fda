// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Command voyago runs the travel itinerary HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voyago/voyago"
	"github.com/voyago/voyago/agent"
	"github.com/voyago/voyago/enrich"
	"github.com/voyago/voyago/internal/config"
	"github.com/voyago/voyago/model"
	"github.com/voyago/voyago/server"
	"github.com/voyago/voyago/service"
	"github.com/voyago/voyago/tool/tools"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	m, err := model.New(ctx, cfg.Model.APIKey, cfg.Model.Name, model.WithLogger(logger))
	if err != nil {
		return err
	}

	var clientOpts []tools.ClientOption
	if cfg.Tools.SearchBaseURL != "" {
		clientOpts = append(clientOpts, tools.WithSearchBaseURL(cfg.Tools.SearchBaseURL))
	}
	if cfg.Tools.GeocodeBaseURL != "" {
		clientOpts = append(clientOpts, tools.WithGeocodeBaseURL(cfg.Tools.GeocodeBaseURL))
	}
	if cfg.Tools.UserAgent != "" {
		clientOpts = append(clientOpts, tools.WithUserAgent(cfg.Tools.UserAgent))
	}
	toolbox := tools.NewToolbox(tools.NewClient(&http.Client{Timeout: 15 * time.Second}, clientOpts...))

	svc, err := service.New(m, toolbox,
		service.WithLogger(logger),
		service.WithAgentOptions(
			agent.WithLoopMode(cfg.Agent.LoopEnabled),
			agent.WithMaxIterations(cfg.Agent.MaxIterations),
			agent.WithExecutionBudget(cfg.Agent.ExecutionBudget),
		),
		service.WithEnrichOptions(
			enrich.WithInterval(cfg.Enrich.Interval),
			enrich.WithConcurrency(cfg.Enrich.Concurrency),
		),
	)
	if err != nil {
		return err
	}

	srv := server.New(svc, server.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
	})

	logger.Info("voyago starting", "version", voyago.Version, "model", m.Name())
	return srv.Run(ctx, ":"+cfg.Server.Port, cfg.Server.ShutdownTimeout)
}
