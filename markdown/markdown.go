// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package markdown renders a validated itinerary report into a human-readable
// document. Rendering is pure and deterministic: identical reports produce
// byte-identical output. Sections are emitted only when their backing data is
// present, in a fixed order.
package markdown

import (
	"fmt"
	"strings"

	"github.com/voyago/voyago/types"
)

// topListLimit caps the attraction and must-visit lists.
const topListLimit = 10

// Render produces the markdown document for the report.
func Render(report *types.ItineraryReport) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s Travel Itinerary\n", report.Destination)

	md.WriteString("## Overview\n")
	md.WriteString(report.Summary + "\n")
	md.WriteString("\n---\n")

	md.WriteString("## Travel Details\n")
	fmt.Fprintf(&md, "- **Duration:** %d days\n", report.TotalDays)
	if report.TravelType != "" {
		fmt.Fprintf(&md, "- **Travel Type:** %s\n", report.TravelType)
	}
	if report.BudgetEstimate != "" {
		fmt.Fprintf(&md, "- **Estimated Budget:** %s\n", report.BudgetEstimate)
	}
	if report.BestTimeToVisit != "" {
		fmt.Fprintf(&md, "- **Best Time to Visit:** %s\n", report.BestTimeToVisit)
	}
	md.WriteString("\n")

	renderDayPlans(&md, report.DayPlans)
	renderTopAttractions(&md, report.TopAttractions)
	renderMustVisit(&md, report.MustVisitPlaces)
	renderAccommodations(&md, report.AccommodationRecommendations)
	renderTransportation(&md, report.TransportationTips, report.LocalTransport)

	if len(report.GeneralTips) > 0 {
		md.WriteString("## General Travel Tips\n\n")
		for _, tip := range report.GeneralTips {
			fmt.Fprintf(&md, "- %s\n", tip)
		}
		md.WriteString("\n")
	}

	if len(report.CulturalNotes) > 0 {
		md.WriteString("## Cultural Information\n\n")
		for _, note := range report.CulturalNotes {
			fmt.Fprintf(&md, "- %s\n", note)
		}
		md.WriteString("\n")
	}

	if report.WeatherInfo != "" {
		md.WriteString("## Weather Information\n\n")
		md.WriteString(report.WeatherInfo + "\n\n")
	}

	if report.BestTimeToVisit != "" {
		md.WriteString("## Best Time to Visit\n\n")
		md.WriteString(report.BestTimeToVisit + "\n\n")
	}

	return md.String()
}

func renderDayPlans(md *strings.Builder, dayPlans []types.DayPlan) {
	if len(dayPlans) == 0 {
		return
	}

	md.WriteString("## Day-by-Day Itinerary\n\n")
	for _, day := range dayPlans {
		fmt.Fprintf(md, "### Day %d: %s\n\n", day.DayNumber, day.Title)
		if day.Description != "" {
			fmt.Fprintf(md, "*%s*\n\n", day.Description)
		}

		if len(day.Activities) > 0 {
			md.WriteString("#### Activities\n\n")
			for i, activity := range day.Activities {
				fmt.Fprintf(md, "**%d. %s**\n\n", i+1, activity.Name)
				if activity.Description != "" {
					md.WriteString(activity.Description + "\n\n")
				}
				if activity.Location.Name != "" {
					fmt.Fprintf(md, "- **Location:** %s", activity.Location.Name)
					if activity.Location.Address != "" {
						fmt.Fprintf(md, " (%s)", activity.Location.Address)
					}
					if activity.Location.Rating != nil {
						fmt.Fprintf(md, " ⭐ %g/5", *activity.Location.Rating)
					}
					md.WriteString("\n")
				}
				if activity.StartTime != "" && activity.EndTime != "" {
					fmt.Fprintf(md, "- **Time:** %s - %s\n", activity.StartTime, activity.EndTime)
				}
				if activity.CostEstimate != "" {
					fmt.Fprintf(md, "- **Cost:** %s\n", activity.CostEstimate)
				}
				if len(activity.Tips) > 0 {
					fmt.Fprintf(md, "- **Tips:** %s\n", strings.Join(activity.Tips, ", "))
				}
				md.WriteString("\n")
			}
		}

		if len(day.Highlights) > 0 {
			fmt.Fprintf(md, "**Highlights:** %s\n\n", strings.Join(day.Highlights, ", "))
		}
		if day.EstimatedCost != "" {
			fmt.Fprintf(md, "**Estimated Cost:** %s\n\n", day.EstimatedCost)
		}
		if day.Notes != "" {
			fmt.Fprintf(md, "*Note: %s*\n\n", day.Notes)
		}
		md.WriteString("---\n\n")
	}
}

func renderTopAttractions(md *strings.Builder, attractions []types.Location) {
	if len(attractions) == 0 {
		return
	}

	md.WriteString("## Top Attractions\n\n")
	for i, attraction := range attractions {
		if i == topListLimit {
			break
		}
		fmt.Fprintf(md, "%d. **%s**", i+1, attraction.Name)
		if attraction.Rating != nil {
			fmt.Fprintf(md, " ⭐ %g/5", *attraction.Rating)
		}
		if attraction.Address != "" {
			fmt.Fprintf(md, "\n   - %s", attraction.Address)
		}
		if attraction.Category != "" {
			fmt.Fprintf(md, "\n   - Category: %s", attraction.Category)
		}
		md.WriteString("\n\n")
	}
}

func renderMustVisit(md *strings.Builder, places []types.Location) {
	if len(places) == 0 {
		return
	}

	md.WriteString("## Must-Visit Places\n\n")
	for i, place := range places {
		if i == topListLimit {
			break
		}
		fmt.Fprintf(md, "- **%s**", place.Name)
		if place.Rating != nil {
			fmt.Fprintf(md, " ⭐ %g/5", *place.Rating)
		}
		md.WriteString("\n")
	}
	md.WriteString("\n")
}

func renderAccommodations(md *strings.Builder, accommodations []types.Accommodation) {
	if len(accommodations) == 0 {
		return
	}

	md.WriteString("## Accommodation Recommendations\n\n")
	for _, acc := range accommodations {
		fmt.Fprintf(md, "### %s\n\n", acc.Name)
		accType := acc.Type
		if accType == "" {
			accType = "Not specified"
		}
		fmt.Fprintf(md, "- **Type:** %s\n", accType)
		if acc.Location != "" {
			fmt.Fprintf(md, "- **Location:** %s\n", acc.Location)
		}
		if acc.PriceRange != "" {
			fmt.Fprintf(md, "- **Price Range:** %s\n", acc.PriceRange)
		}
		if acc.Rating != nil {
			fmt.Fprintf(md, "- **Rating:** ⭐ %g/5", *acc.Rating)
			if acc.ReviewCount > 0 {
				fmt.Fprintf(md, " (%d reviews)", acc.ReviewCount)
			}
			md.WriteString("\n")
		}
		if acc.RecommendationReason != "" {
			fmt.Fprintf(md, "- **Why:** %s\n", acc.RecommendationReason)
		}
		if len(acc.Amenities) > 0 {
			fmt.Fprintf(md, "- **Amenities:** %s\n", strings.Join(acc.Amenities, ", "))
		}
		md.WriteString("\n")
	}
}

func renderTransportation(md *strings.Builder, tips []types.Transportation, localTransport string) {
	if len(tips) > 0 {
		md.WriteString("## Transportation\n\n")
		for _, transport := range tips {
			fmt.Fprintf(md, "### %s\n\n", transport.Type)
			if transport.Route != "" {
				fmt.Fprintf(md, "- **Route:** %s\n", transport.Route)
			}
			if transport.EstimatedCost != "" {
				fmt.Fprintf(md, "- **Cost:** %s\n", transport.EstimatedCost)
			}
			if transport.Duration != "" {
				fmt.Fprintf(md, "- **Duration:** %s\n", transport.Duration)
			}
			if len(transport.Tips) > 0 {
				md.WriteString("**Tips:**\n")
				for _, tip := range transport.Tips {
					fmt.Fprintf(md, "- %s\n", tip)
				}
			}
			md.WriteString("\n")
		}
	}

	if localTransport != "" {
		fmt.Fprintf(md, "### Local Transportation\n\n%s\n\n", localTransport)
	}
}
