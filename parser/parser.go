// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package parser coerces raw model output into a validated
// [types.ItineraryReport]: JSON extraction, rating normalization, then
// structural validation, strictly in that order. Normalization must run
// before validation because the schema enforces the 0-5 rating bound and
// would otherwise reject valid-but-misscaled output.
package parser

import (
	"fmt"
	"math"
	"strings"

	"github.com/bytedance/sonic"
	deepcopy "github.com/tiendc/go-deepcopy"

	"github.com/voyago/voyago/types"
)

// ItineraryParser parses generation output into itinerary reports.
type ItineraryParser struct{}

// New returns a new [ItineraryParser].
func New() *ItineraryParser {
	return &ItineraryParser{}
}

// Parse extracts the JSON object from raw, normalizes ratings onto the 0-5
// scale, and validates the result. wantDays is the day count the caller
// requested; a report with any other day count is rejected.
//
// The error is a [*types.ParseError] when no JSON object can be extracted and
// a [*types.ValidationError] when the extracted object violates the schema.
func (p *ItineraryParser) Parse(raw string, wantDays int) (*types.ItineraryReport, error) {
	data, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	data, err = normalize(data)
	if err != nil {
		return nil, &types.ParseError{Msg: "normalizing report", Err: err}
	}

	encoded, err := sonic.Marshal(data)
	if err != nil {
		return nil, &types.ParseError{Msg: "re-encoding report", Err: err}
	}
	var report types.ItineraryReport
	if err := sonic.Unmarshal(encoded, &report); err != nil {
		return nil, &types.ValidationError{Msg: fmt.Sprintf("report does not match the itinerary schema: %v", err)}
	}

	if err := validate(&report, wantDays); err != nil {
		return nil, err
	}
	return &report, nil
}

// stripFences removes a single leading/trailing markdown code fence.
func stripFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

// extractJSON parses the stripped text, falling back to the substring between
// the first "{" and the last "}".
func extractJSON(raw string) (map[string]any, error) {
	text := stripFences(raw)

	var data map[string]any
	strictErr := sonic.Unmarshal([]byte(text), &data)
	if strictErr == nil {
		return data, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, &types.ParseError{Msg: "output contains no JSON object", Err: strictErr}
	}
	if err := sonic.Unmarshal([]byte(text[start:end+1]), &data); err != nil {
		return nil, &types.ParseError{Msg: "output contains no parsable JSON object", Err: err}
	}
	return data, nil
}

// normalize rewrites every known rating-bearing field onto the 0-5 scale and
// drops one-sided coordinate pairs. It works on a deep copy so the caller's
// mapping is never mutated.
func normalize(data map[string]any) (map[string]any, error) {
	var copied map[string]any
	if err := deepcopy.Copy(&copied, data); err != nil {
		return nil, err
	}
	data = copied

	for _, dayPlan := range asMaps(data["day_plans"]) {
		for _, activity := range asMaps(dayPlan["activities"]) {
			if location, ok := activity["location"].(map[string]any); ok {
				normalizePlace(location)
			}
		}
	}
	for _, key := range []string{"top_attractions", "must_visit_places", "accommodation_recommendations"} {
		for _, entry := range asMaps(data[key]) {
			normalizePlace(entry)
		}
	}
	return data, nil
}

// asMaps interprets v as a list of JSON objects, tolerating anything else.
func asMaps(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	maps := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			maps = append(maps, m)
		}
	}
	return maps
}

// normalizePlace applies the rating rule to one object and enforces the
// both-or-neither coordinate invariant.
func normalizePlace(m map[string]any) {
	if rating, ok := asNumber(m["rating"]); ok && rating > 5 {
		// A value above 5 is read as a 0-10 scale and halved.
		m["rating"] = math.Round(rating/2*10) / 10
	}

	_, hasLat := asNumber(m["latitude"])
	_, hasLng := asNumber(m["longitude"])
	if hasLat != hasLng {
		delete(m, "latitude")
		delete(m, "longitude")
	}
}

// asNumber extracts a numeric JSON value.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
