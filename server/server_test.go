// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/voyago/voyago/agent"
	"github.com/voyago/voyago/enrich"
	"github.com/voyago/voyago/service"
	"github.com/voyago/voyago/types"
)

type fixedModel struct {
	output string
}

func (m *fixedModel) Name() string { return "test-model" }

func (m *fixedModel) Complete(context.Context, string) (string, error) {
	return m.output, nil
}

type fixedTool struct {
	kind   types.ToolKind
	output string
}

func (t *fixedTool) Name() string         { return t.kind.String() }
func (t *fixedTool) Description() string  { return "test tool" }
func (t *fixedTool) Kind() types.ToolKind { return t.kind }

func (t *fixedTool) Call(context.Context, types.Query) types.Result {
	return types.Result{Output: t.output}
}

// oneDayItinerary is a minimal valid report for a one day trip, fenced the
// way models usually return it.
const oneDayItinerary = "```json\n" + `{
	"summary": "One packed day.",
	"destination": "Lisbon",
	"total_days": 1,
	"day_plans": [{
		"day_number": 1,
		"title": "Old town on foot",
		"activities": [{
			"name": "Alfama walk",
			"location": {"name": "Alfama", "latitude": 38.71, "longitude": -9.13}
		}]
	}]
}` + "\n```"

func newTestServer(t *testing.T, modelOutput string) *Server {
	t.Helper()

	tools := &types.Toolbox{
		Search:  &fixedTool{kind: types.ToolSearch, output: "search hit"},
		Rank:    &fixedTool{kind: types.ToolRank, output: "1. Alfama"},
		Weather: &fixedTool{kind: types.ToolWeather, output: "sunny"},
		Customs: &fixedTool{kind: types.ToolCustoms, output: "greet politely"},
		Geocode: &fixedTool{kind: types.ToolGeocode, output: "38.71,-9.13"},
	}
	svc, err := service.New(&fixedModel{output: modelOutput}, tools,
		service.WithAgentOptions(agent.WithLoopMode(false)),
		service.WithEnrichOptions(enrich.WithInterval(0)),
	)
	if err != nil {
		t.Fatalf("service.New: %v", err)
	}
	return New(svc, Options{})
}

func TestPlanEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, oneDayItinerary)

	body := `{"destination": "Lisbon", "duration": 1, "client_version": "2.1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/travel/plan", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var outcome types.ItineraryOutcome
	if err := sonic.Unmarshal(rec.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !outcome.Success {
		t.Fatalf("Success = false, message: %s", outcome.Message)
	}
	if outcome.Itinerary == nil || outcome.Itinerary.Destination != "Lisbon" {
		t.Errorf("unexpected itinerary: %+v", outcome.Itinerary)
	}
	if outcome.Itinerary.MarkdownDescription == "" {
		t.Error("markdown_description is empty")
	}
}

func TestPlanEndpointPipelineFailure(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "no json here, sorry")

	req := httptest.NewRequest(http.MethodPost, "/api/travel/plan", strings.NewReader(`{"destination": "Lisbon", "duration": 1}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var outcome types.ItineraryOutcome
	if err := sonic.Unmarshal(rec.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if outcome.Success {
		t.Error("Success = true in a 500 body")
	}
	if outcome.Message == "" {
		t.Error("Message is empty on failure")
	}
}

func TestPlanEndpointBadBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, oneDayItinerary)

	req := httptest.NewRequest(http.MethodPost, "/api/travel/plan", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, oneDayItinerary)

	for _, path := range []string{"/api/travel/health", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, oneDayItinerary)

	req := httptest.NewRequest(http.MethodOptions, "/api/travel/plan", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
