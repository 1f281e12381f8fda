// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/voyago/voyago/types"
)

func validReportJSON(days int) string {
	plans := ""
	for i := 1; i <= days; i++ {
		if i > 1 {
			plans += ","
		}
		activities := "[]"
		if i == 1 {
			activities = `[{"name":"Louvre visit","location":{"name":"Louvre Museum","rating":9.0},"priority":1}]`
		}
		plans += fmt.Sprintf(`{"day_number":%d,"title":"Day %d","activities":%s}`, i, i, activities)
	}
	return fmt.Sprintf(`{"summary":"A trip","destination":"Paris","total_days":%d,"day_plans":[%s]}`, days, plans)
}

func TestExtractJSON_FencedRoundTrip(t *testing.T) {
	got, err := extractJSON("```json\n{\"a\":1}\n```")
	if err != nil {
		t.Fatalf("extractJSON: %v", err)
	}
	want := map[string]any{"a": float64(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extractJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractJSON_BareFence(t *testing.T) {
	got, err := extractJSON("```\n{\"a\":1}\n```")
	if err != nil {
		t.Fatalf("extractJSON: %v", err)
	}
	if got["a"] != float64(1) {
		t.Errorf("got %v", got)
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	got, err := extractJSON("Here is your itinerary:\n{\"a\":1}\nEnjoy your trip!")
	if err != nil {
		t.Fatalf("extractJSON: %v", err)
	}
	if got["a"] != float64(1) {
		t.Errorf("got %v", got)
	}
}

func TestParse_NormalizesRatings(t *testing.T) {
	report, err := New().Parse(validReportJSON(3), 3)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rating := report.DayPlans[0].Activities[0].Location.Rating
	if rating == nil {
		t.Fatal("rating dropped during parse")
	}
	if *rating != 4.5 {
		t.Errorf("rating = %v, want 4.5 (9.0 halved)", *rating)
	}
}

func TestParse_RatingAtOrBelowFiveUnchanged(t *testing.T) {
	raw := `{"summary":"s","destination":"d","total_days":1,"day_plans":[
		{"day_number":1,"title":"t","activities":[{"name":"a","location":{"name":"l","rating":4.8}}]}]}`

	report, err := New().Parse(raw, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := *report.DayPlans[0].Activities[0].Location.Rating; got != 4.8 {
		t.Errorf("rating = %v, want 4.8 unchanged", got)
	}
}

func TestParse_RatingAboveTenRejected(t *testing.T) {
	// 11.2 halves to 5.6, still out of bounds, so validation must reject it.
	raw := `{"summary":"s","destination":"d","total_days":1,"day_plans":[
		{"day_number":1,"title":"t","activities":[{"name":"a","location":{"name":"l","rating":11.2}}]}]}`

	_, err := New().Parse(raw, 1)
	var vErr *types.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestParse_NormalizesNestedSections(t *testing.T) {
	raw := `{"summary":"s","destination":"d","total_days":1,
		"day_plans":[{"day_number":1,"title":"t","activities":[{"name":"a","location":{"name":"l"}}]}],
		"top_attractions":[{"name":"tower","rating":8.9}],
		"must_visit_places":[{"name":"square","rating":10}],
		"accommodation_recommendations":[{"name":"hotel","rating":7.0}]}`

	report, err := New().Parse(raw, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := *report.TopAttractions[0].Rating; got != 4.5 {
		t.Errorf("attraction rating = %v, want 4.5", got)
	}
	if got := *report.MustVisitPlaces[0].Rating; got != 5.0 {
		t.Errorf("place rating = %v, want 5.0", got)
	}
	if got := *report.AccommodationRecommendations[0].Rating; got != 3.5 {
		t.Errorf("accommodation rating = %v, want 3.5", got)
	}
}

func TestParse_OneSidedCoordinatesDropped(t *testing.T) {
	raw := `{"summary":"s","destination":"d","total_days":1,"day_plans":[
		{"day_number":1,"title":"t","activities":[{"name":"a","location":{"name":"l","latitude":48.85}}]}]}`

	report, err := New().Parse(raw, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	loc := report.DayPlans[0].Activities[0].Location
	if loc.Latitude != nil || loc.Longitude != nil {
		t.Errorf("one-sided coordinates must be dropped, got lat=%v lng=%v", loc.Latitude, loc.Longitude)
	}
}

func TestParse_DayCountMismatch(t *testing.T) {
	_, err := New().Parse(validReportJSON(2), 5)
	var vErr *types.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for mismatched day count, got %v", err)
	}
}

func TestParse_NonContiguousDayNumbers(t *testing.T) {
	raw := `{"summary":"s","destination":"d","total_days":2,"day_plans":[
		{"day_number":1,"title":"a","activities":[{"name":"x","location":{"name":"y"}}]},
		{"day_number":3,"title":"b","activities":[]}]}`

	_, err := New().Parse(raw, 2)
	var vErr *types.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for non-contiguous day numbers, got %v", err)
	}
}

func TestParse_MissingSummary(t *testing.T) {
	raw := `{"destination":"d","total_days":1,"day_plans":[
		{"day_number":1,"title":"t","activities":[{"name":"a","location":{"name":"l"}}]}]}`

	_, err := New().Parse(raw, 1)
	var vErr *types.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for missing summary, got %v", err)
	}
}

func TestParse_NoActivities(t *testing.T) {
	raw := `{"summary":"s","destination":"d","total_days":1,"day_plans":[
		{"day_number":1,"title":"t","activities":[]}]}`

	_, err := New().Parse(raw, 1)
	var vErr *types.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for a report with no activities, got %v", err)
	}
}

func TestParse_NoJSON(t *testing.T) {
	_, err := New().Parse("I could not produce an itinerary, sorry.", 3)
	var pErr *types.ParseError
	if !errors.As(err, &pErr) {
		t.Fatalf("want ParseError, got %v", err)
	}
}
