// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompt renders trip requests and research context into the exact
// instruction text sent to the generation model. Rendering is deterministic;
// the only non-determinism in the pipeline lives behind the model itself.
package prompt

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/voyago/voyago/types"
)

// requirementLine renders one "Label: value" requirement, falling back to
// "not specified" for empty values.
func requirementLine(label, value string) string {
	if value == "" {
		value = "not specified"
	}
	return label + ": " + value
}

// Build renders the final generation prompt from the request and the research
// context gathered by the agent. It is a pure function of its inputs.
func Build(req *types.TripRequest, researchContext string) string {
	var sb strings.Builder

	sb.WriteString(heredoc.Doc(`
		You are an expert travel planner AI assistant. Create a comprehensive travel itinerary.

		User Requirements:
	`))
	sb.WriteString(fmt.Sprintf("Destination: %s\n", req.Destination))
	sb.WriteString(fmt.Sprintf("Duration: %d days\n", req.Duration))
	sb.WriteString(requirementLine("Start Date", req.StartDate) + "\n")
	sb.WriteString(requirementLine("Difficulty Level", req.DifficultyLevel) + "\n")
	sb.WriteString(requirementLine("Budget Range", req.BudgetRange) + "\n")
	sb.WriteString(requirementLine("Interests", req.Interests) + "\n")
	sb.WriteString(fmt.Sprintf("Group Size: %d people\n", req.Travelers()))
	sb.WriteString(requirementLine("Accommodation Type", req.AccommodationType) + "\n")
	if req.Notes != "" {
		sb.WriteString("Additional Notes: " + req.Notes + "\n")
	}

	sb.WriteString(heredoc.Doc(`

		Instructions:
		1. Create detailed day-by-day itinerary with specific activities
		2. Include times, locations, and costs for each activity
		3. Provide ratings and reviews for all recommended places
		4. Include image URLs when available from search results
		5. Add accommodation recommendations with details
		6. Include transportation tips and local information
		7. Provide cultural tips and best practices

	`))

	sb.WriteString(heredoc.Docf(`
		CRITICAL RULES:
		1. Create EXACTLY %d day plans, with day_number running from 1 to %d.

		2. For all locations, places, and attractions, you MUST include latitude and longitude coordinates
		   when you know them; leave them out otherwise.

		3. ALL RATINGS MUST BE ON A 0-5 SCALE (not 0-10). If you find ratings on a 0-10 scale, divide by 2.
		   Example: If a place has 8.9/10 rating, convert it to 4.5/5.

		Output Format:
	`, req.Duration, req.Duration))
	sb.WriteString(FormatInstructions)

	if researchContext != "" {
		sb.WriteString(heredoc.Doc(`

			Research Findings from Agent:
		`))
		sb.WriteString(researchContext)
		sb.WriteString("\n")
	}

	sb.WriteString(heredoc.Docf(`

		Based on the research findings above and the user requirements, generate a comprehensive itinerary report in the exact JSON format specified in the format instructions.
		Make sure to:
		1. Create exactly %d day plans
		2. Match activities to the %s difficulty level
		3. Keep recommendations within the %s budget range
		4. Focus on interests: %s
		5. Ensure activities are suitable for a group of %d
		6. Recommend %s accommodation types
		7. Use the information gathered from the tools to create accurate and detailed plans
	`, req.Duration, req.Difficulty(), req.Budget(), req.InterestsOrDefault(), req.Travelers(), req.Accommodation()))

	return sb.String()
}
