// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the itinerary service over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/cors"

	"github.com/voyago/voyago/service"
	"github.com/voyago/voyago/types"
)

// Server routes HTTP requests to the itinerary service.
type Server struct {
	svc     *service.Service
	logger  *slog.Logger
	handler http.Handler
}

// Options configures the HTTP surface.
type Options struct {
	// AllowedOrigins is passed to the CORS layer. Empty means allow all.
	AllowedOrigins []string

	Logger *slog.Logger
}

// New builds the server and its routing table.
func New(svc *service.Service, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{svc: svc, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/travel/plan", s.handlePlan)
	mux.HandleFunc("GET /api/travel/health", s.handleHealth)
	mux.HandleFunc("GET /healthz", s.handleLiveness)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	s.handler = c.Handler(mux)

	return s
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// errorResponse is the body returned for non-pipeline failures such as a
// malformed request payload.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// healthResponse is the health endpoint body.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Version string `json:"version,omitempty"`
}

// handlePlan decodes a trip request and runs the full pipeline. Pipeline
// failures come back as a 500 with the outcome body; the outcome shape is the
// same either way.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req types.TripRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	outcome := s.svc.GenerateItinerary(r.Context(), &req)

	status := http.StatusOK
	if !outcome.Success {
		status = http.StatusInternalServerError
	}
	s.writeJSON(w, status, outcome)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.svc.Healthy() {
		s.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Service: "voyago"})
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Service: "voyago"})
}

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "alive"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encoding failed", "error", err)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
