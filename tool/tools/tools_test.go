// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package tools_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/voyago/voyago/tool/tools"
	"github.com/voyago/voyago/types"
)

const searchPage = `<html><body>
<div class="result">
  <a rel="nofollow" class="result__a" href="https://example.com/louvre">Louvre <b>Museum</b></a>
  <a class="result__snippet" href="#">World famous museum with an average temperature-controlled gallery &amp; art.</a>
</div>
<div class="result">
  <a rel="nofollow" class="result__a" href="https://example.com/orsay">Mus&#233;e d&#39;Orsay</a>
  <a class="result__snippet" href="#">Impressionist collection on the Seine.</a>
</div>
</body></html>`

func newSearchServer(t *testing.T, status int, page string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchTool_Call(t *testing.T) {
	srv := newSearchServer(t, http.StatusOK, searchPage)
	client := tools.NewClient(srv.Client(), tools.WithSearchBaseURL(srv.URL))

	got := tools.NewSearchTool(client).Call(t.Context(), types.Query{Text: "museums in Paris"})
	if got.Degraded() {
		t.Fatalf("unexpected degraded result: %v", got.Err)
	}
	if !strings.Contains(got.Output, "Title: Louvre Museum") {
		t.Errorf("output missing first title:\n%s", got.Output)
	}
	if !strings.Contains(got.Output, "Musée d'Orsay") {
		t.Errorf("output should unescape HTML entities:\n%s", got.Output)
	}
	if !strings.Contains(got.Output, "Source: https://example.com/louvre") {
		t.Errorf("output missing source URL:\n%s", got.Output)
	}
	if !strings.Contains(got.Output, "\n---\n") {
		t.Errorf("results should be separated by ---:\n%s", got.Output)
	}
}

func TestSearchTool_NoResults(t *testing.T) {
	srv := newSearchServer(t, http.StatusOK, "<html><body>nothing here</body></html>")
	client := tools.NewClient(srv.Client(), tools.WithSearchBaseURL(srv.URL))

	got := tools.NewSearchTool(client).Call(t.Context(), types.Query{Text: "x"})
	if got.Degraded() {
		t.Fatalf("empty page should not degrade: %v", got.Err)
	}
	if got.Output != "No search results found." {
		t.Errorf("got %q", got.Output)
	}
}

func TestSearchTool_ServerError(t *testing.T) {
	srv := newSearchServer(t, http.StatusInternalServerError, "")
	client := tools.NewClient(srv.Client(), tools.WithSearchBaseURL(srv.URL))

	got := tools.NewSearchTool(client).Call(t.Context(), types.Query{Text: "x"})
	if !got.Degraded() {
		t.Fatal("want degraded result on 500")
	}
	if note := got.ContextText(); !strings.HasPrefix(note, "[tool error: ") {
		t.Errorf("context text should carry the diagnostic prefix, got %q", note)
	}
}

func TestRankTool_Call(t *testing.T) {
	srv := newSearchServer(t, http.StatusOK, searchPage)
	client := tools.NewClient(srv.Client(), tools.WithSearchBaseURL(srv.URL))

	got := tools.NewRankTool(client).Call(t.Context(), types.Query{Category: "museums", Location: "Paris"})
	if got.Degraded() {
		t.Fatalf("unexpected degraded result: %v", got.Err)
	}
	if !strings.HasPrefix(got.Output, "1. Louvre Museum") {
		t.Errorf("ranked list should be numbered:\n%s", got.Output)
	}
	if !strings.Contains(got.Output, "2. Musée d'Orsay") {
		t.Errorf("ranked list missing second entry:\n%s", got.Output)
	}
}

func TestWeatherTool_FiltersIrrelevantSnippets(t *testing.T) {
	srv := newSearchServer(t, http.StatusOK, searchPage)
	client := tools.NewClient(srv.Client(), tools.WithSearchBaseURL(srv.URL))

	got := tools.NewWeatherTool(client).Call(t.Context(), types.Query{Location: "Paris"})
	if got.Degraded() {
		t.Fatalf("unexpected degraded result: %v", got.Err)
	}
	// Only the first snippet mentions a weather keyword.
	if !strings.Contains(got.Output, "temperature-controlled") {
		t.Errorf("weather output should keep the temperature snippet:\n%s", got.Output)
	}
	if strings.Contains(got.Output, "Impressionist") {
		t.Errorf("weather output should drop non-weather snippets:\n%s", got.Output)
	}
}

func TestCustomsTool_Call(t *testing.T) {
	srv := newSearchServer(t, http.StatusOK, searchPage)
	client := tools.NewClient(srv.Client(), tools.WithSearchBaseURL(srv.URL))

	got := tools.NewCustomsTool(client).Call(t.Context(), types.Query{Location: "Paris"})
	if got.Degraded() {
		t.Fatalf("unexpected degraded result: %v", got.Err)
	}
	if !strings.Contains(got.Output, "World famous museum") {
		t.Errorf("customs output missing snippets:\n%s", got.Output)
	}
}

func TestGeocodeTool_Call(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Eiffel Tower, Paris" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`[{"lat":"48.8584","lon":"2.2945","display_name":"Tour Eiffel"}]`))
	}))
	defer srv.Close()
	client := tools.NewClient(srv.Client(), tools.WithGeocodeBaseURL(srv.URL))

	got := tools.NewGeocodeTool(client).Call(t.Context(), types.Query{Text: "Eiffel Tower, Paris"})
	if got.Degraded() {
		t.Fatalf("unexpected degraded result: %v", got.Err)
	}
	if got.Output != "48.8584,2.2945" {
		t.Errorf("got %q, want %q", got.Output, "48.8584,2.2945")
	}
}

func TestGeocodeTool_NoHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	client := tools.NewClient(srv.Client(), tools.WithGeocodeBaseURL(srv.URL))

	got := tools.NewGeocodeTool(client).Call(t.Context(), types.Query{Text: "nowhere at all"})
	if !got.Degraded() {
		t.Fatalf("want degraded result for empty hit list, got %q", got.Output)
	}
}

func TestToolbox_ByName(t *testing.T) {
	tb := tools.NewToolbox(tools.NewClient(nil))

	for _, want := range []string{
		"search_travel_information",
		"rank_attractions_by_category",
		"get_weather_info",
		"get_local_customs_tips",
		"get_place_coordinates",
	} {
		tl, ok := tb.ByName(want)
		if !ok {
			t.Fatalf("ByName(%q): not found", want)
		}
		if tl.Name() != want {
			t.Errorf("tool name = %q, want %q", tl.Name(), want)
		}
	}

	if _, ok := tb.ByName("no_such_tool"); ok {
		t.Error("ByName should reject unknown names")
	}
}
