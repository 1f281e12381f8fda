// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package types

// Location is a named place. Latitude and longitude are either both set or
// both nil; enrichment never assigns one without the other.
type Location struct {
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	ReviewCount int     `json:"review_count,omitempty"`
	Category   string   `json:"category,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
	ImageAlt   string   `json:"image_alt,omitempty"`
}

// HasCoordinates reports whether both coordinates are populated.
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Activity is one scheduled item in a day plan.
type Activity struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Location      Location `json:"location"`
	StartTime     string   `json:"start_time,omitempty"`
	EndTime       string   `json:"end_time,omitempty"`
	DurationHours float64  `json:"duration_hours,omitempty"`
	CostEstimate  string   `json:"cost_estimate,omitempty"`
	Tips          []string `json:"tips,omitempty"`
	Priority      int      `json:"priority,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	BookingInfo   string   `json:"booking_info,omitempty"`
}

// DayPlan is the plan for one day of the trip.
type DayPlan struct {
	DayNumber     int        `json:"day_number"`
	Date          string     `json:"date,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Theme         string     `json:"theme,omitempty"`
	Activities    []Activity `json:"activities"`
	EstimatedCost string     `json:"estimated_cost,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Highlights    []string   `json:"highlights,omitempty"`
}

// Accommodation is one lodging recommendation.
type Accommodation struct {
	Name                 string   `json:"name"`
	Type                 string   `json:"type,omitempty"`
	Location             string   `json:"location,omitempty"`
	Address              string   `json:"address,omitempty"`
	PriceRange           string   `json:"price_range,omitempty"`
	Rating               *float64 `json:"rating,omitempty"`
	ReviewCount          int      `json:"review_count,omitempty"`
	RecommendationReason string   `json:"recommendation_reason,omitempty"`
	ImageURL             string   `json:"image_url,omitempty"`
	Amenities            []string `json:"amenities,omitempty"`
	BookingURL           string   `json:"booking_url,omitempty"`
}

// Transportation is one transport recommendation.
type Transportation struct {
	Type          string   `json:"type"`
	Route         string   `json:"route,omitempty"`
	EstimatedCost string   `json:"estimated_cost,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Tips          []string `json:"tips,omitempty"`
}

// ItineraryReport is the validated root entity produced by the pipeline.
type ItineraryReport struct {
	Summary        string `json:"summary"`
	Destination    string `json:"destination"`
	TotalDays      int    `json:"total_days"`
	TravelType     string `json:"travel_type,omitempty"`
	BudgetEstimate string `json:"budget_estimate,omitempty"`

	DayPlans []DayPlan `json:"day_plans"`

	TopAttractions  []Location `json:"top_attractions,omitempty"`
	MustVisitPlaces []Location `json:"must_visit_places,omitempty"`

	AccommodationRecommendations []Accommodation `json:"accommodation_recommendations,omitempty"`

	TransportationTips []Transportation `json:"transportation_tips,omitempty"`
	LocalTransport     string           `json:"local_transport,omitempty"`

	GeneralTips     []string `json:"general_tips,omitempty"`
	CulturalNotes   []string `json:"cultural_notes,omitempty"`
	BestTimeToVisit string   `json:"best_time_to_visit,omitempty"`
	WeatherInfo     string   `json:"weather_info,omitempty"`

	DestinationImage string `json:"destination_image,omitempty"`
	CoverImage       string `json:"cover_image,omitempty"`

	CreatedAt   string `json:"created_at,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`

	// MarkdownDescription is derived from the validated report, never parsed
	// from model output.
	MarkdownDescription string `json:"markdown_description,omitempty"`
}

// ItineraryOutcome is what the service returns to the caller, success or not.
type ItineraryOutcome struct {
	Success        bool             `json:"success"`
	Itinerary      *ItineraryReport `json:"itinerary,omitempty"`
	Message        string           `json:"message,omitempty"`
	ProcessingTime float64          `json:"processing_time"`
}
