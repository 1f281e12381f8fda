// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"

	"github.com/voyago/voyago/types"
)

// validate enforces the structural invariants of a finished report.
func validate(report *types.ItineraryReport, wantDays int) error {
	if report.Summary == "" {
		return &types.ValidationError{Field: "summary", Msg: "summary is required"}
	}
	if report.Destination == "" {
		return &types.ValidationError{Field: "destination", Msg: "destination is required"}
	}
	if report.TotalDays < 1 {
		return &types.ValidationError{Field: "total_days", Msg: fmt.Sprintf("total_days must be at least 1, got %d", report.TotalDays)}
	}
	if wantDays > 0 && report.TotalDays != wantDays {
		return &types.ValidationError{Field: "total_days", Msg: fmt.Sprintf("requested %d days but report covers %d", wantDays, report.TotalDays)}
	}

	if len(report.DayPlans) == 0 {
		return &types.ValidationError{Field: "day_plans", Msg: "at least one day plan is required"}
	}
	if len(report.DayPlans) != report.TotalDays {
		return &types.ValidationError{Field: "day_plans", Msg: fmt.Sprintf("total_days is %d but %d day plans are present", report.TotalDays, len(report.DayPlans))}
	}

	haveActivity := false
	for i, day := range report.DayPlans {
		if day.DayNumber != i+1 {
			return &types.ValidationError{Field: "day_plans", Msg: fmt.Sprintf("day %d has day_number %d; day numbers must run 1..%d in order", i+1, day.DayNumber, report.TotalDays)}
		}
		if day.Title == "" {
			return &types.ValidationError{Field: "day_plans", Msg: fmt.Sprintf("day %d is missing a title", day.DayNumber)}
		}
		for _, activity := range day.Activities {
			haveActivity = true
			if activity.Name == "" {
				return &types.ValidationError{Field: "day_plans", Msg: fmt.Sprintf("day %d has an unnamed activity", day.DayNumber)}
			}
			if activity.Location.Name == "" {
				return &types.ValidationError{Field: "day_plans", Msg: fmt.Sprintf("activity %q on day %d is missing a location name", activity.Name, day.DayNumber)}
			}
			if activity.Priority != 0 && (activity.Priority < 1 || activity.Priority > 5) {
				return &types.ValidationError{Field: "day_plans", Msg: fmt.Sprintf("activity %q has priority %d outside 1-5", activity.Name, activity.Priority)}
			}
			if err := validateRating(activity.Location.Rating, fmt.Sprintf("activity %q location", activity.Name)); err != nil {
				return err
			}
		}
	}
	if !haveActivity {
		return &types.ValidationError{Field: "day_plans", Msg: "the report must contain at least one activity"}
	}

	for _, attraction := range report.TopAttractions {
		if attraction.Name == "" {
			return &types.ValidationError{Field: "top_attractions", Msg: "attraction is missing a name"}
		}
		if err := validateRating(attraction.Rating, fmt.Sprintf("attraction %q", attraction.Name)); err != nil {
			return err
		}
	}
	for _, place := range report.MustVisitPlaces {
		if place.Name == "" {
			return &types.ValidationError{Field: "must_visit_places", Msg: "place is missing a name"}
		}
		if err := validateRating(place.Rating, fmt.Sprintf("place %q", place.Name)); err != nil {
			return err
		}
	}
	for _, acc := range report.AccommodationRecommendations {
		if acc.Name == "" {
			return &types.ValidationError{Field: "accommodation_recommendations", Msg: "accommodation is missing a name"}
		}
		if err := validateRating(acc.Rating, fmt.Sprintf("accommodation %q", acc.Name)); err != nil {
			return err
		}
	}
	for _, transport := range report.TransportationTips {
		if transport.Type == "" {
			return &types.ValidationError{Field: "transportation_tips", Msg: "transportation entry is missing a type"}
		}
	}

	return nil
}

// validateRating enforces the post-normalization 0-5 bound.
func validateRating(rating *float64, where string) error {
	if rating == nil {
		return nil
	}
	if *rating < 0 || *rating > 5 {
		return &types.ValidationError{Field: "rating", Msg: fmt.Sprintf("%s has rating %.1f outside 0-5", where, *rating)}
	}
	return nil
}
