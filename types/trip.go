// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// TripRequest describes what the caller wants planned. The recognized fields
// are typed; anything else the caller sends is kept in Extra and ignored by
// the pipeline rather than rejected.
type TripRequest struct {
	// Destination is the only strictly required field. Free text.
	Destination string `json:"destination"`

	// Duration is the number of days to plan, >= 1.
	Duration int `json:"duration"`

	StartDate         string `json:"start_date,omitempty"`
	DifficultyLevel   string `json:"difficulty_level,omitempty"`
	BudgetRange       string `json:"budget_range,omitempty"`
	Interests         string `json:"interests,omitempty"`
	GroupSize         int    `json:"group_size,omitempty"`
	AccommodationType string `json:"accommodation_type,omitempty"`
	Notes             string `json:"notes,omitempty"`

	// Extra holds unrecognized request fields verbatim.
	Extra map[string]any `json:"-"`
}

// tripRequestKeys are the JSON keys consumed by the typed fields above.
var tripRequestKeys = map[string]bool{
	"destination":        true,
	"duration":           true,
	"start_date":         true,
	"difficulty_level":   true,
	"budget_range":       true,
	"interests":          true,
	"group_size":         true,
	"accommodation_type": true,
	"notes":              true,
}

// UnmarshalJSON decodes the recognized fields and routes everything else into
// Extra.
func (r *TripRequest) UnmarshalJSON(data []byte) error {
	type plain TripRequest
	var p plain
	if err := sonic.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if tripRequestKeys[key] {
			delete(raw, key)
		}
	}

	*r = TripRequest(p)
	if len(raw) > 0 {
		r.Extra = raw
	}
	return nil
}

// Validate reports whether the request is plannable at all.
func (r *TripRequest) Validate() error {
	if r.Destination == "" {
		return &ValidationError{Field: "destination", Msg: "destination is required"}
	}
	if r.Duration < 1 {
		return &ValidationError{Field: "duration", Msg: fmt.Sprintf("duration must be at least 1 day, got %d", r.Duration)}
	}
	if r.GroupSize < 0 {
		return &ValidationError{Field: "group_size", Msg: fmt.Sprintf("group_size must be positive, got %d", r.GroupSize)}
	}
	return nil
}

// Difficulty returns the requested difficulty level, defaulting to "moderate".
func (r *TripRequest) Difficulty() string {
	if r.DifficultyLevel == "" {
		return "moderate"
	}
	return r.DifficultyLevel
}

// Budget returns the requested budget range, defaulting to "moderate".
func (r *TripRequest) Budget() string {
	if r.BudgetRange == "" {
		return "moderate"
	}
	return r.BudgetRange
}

// InterestsOrDefault returns the requested interests, defaulting to "general sightseeing".
func (r *TripRequest) InterestsOrDefault() string {
	if r.Interests == "" {
		return "general sightseeing"
	}
	return r.Interests
}

// Travelers returns the group size, defaulting to a single traveler.
func (r *TripRequest) Travelers() int {
	if r.GroupSize < 1 {
		return 1
	}
	return r.GroupSize
}

// Accommodation returns the requested accommodation type, defaulting to "mixed".
func (r *TripRequest) Accommodation() string {
	if r.AccommodationType == "" {
		return "mixed"
	}
	return r.AccommodationType
}
