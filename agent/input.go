// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/voyago/voyago/types"
)

// BuildInput renders the natural-language research brief for a trip request.
func BuildInput(req *types.TripRequest) string {
	var sb strings.Builder

	startDate := req.StartDate
	if startDate == "" {
		startDate = "not specified"
	}

	fmt.Fprintf(&sb, "Plan a %d-day trip to %s\n\n", req.Duration, req.Destination)
	sb.WriteString("Trip Details:\n")
	fmt.Fprintf(&sb, "- Duration: %d days\n", req.Duration)
	fmt.Fprintf(&sb, "- Start Date: %s\n", startDate)
	fmt.Fprintf(&sb, "- Difficulty Level: %s\n", req.Difficulty())
	fmt.Fprintf(&sb, "- Budget Range: %s\n", req.Budget())
	fmt.Fprintf(&sb, "- Interests: %s\n", req.InterestsOrDefault())
	fmt.Fprintf(&sb, "- Group Size: %d people\n", req.Travelers())
	fmt.Fprintf(&sb, "- Accommodation Preference: %s\n", req.Accommodation())
	if req.Notes != "" {
		fmt.Fprintf(&sb, "- Additional Notes: %s\n", req.Notes)
	}

	sb.WriteString("\n")
	sb.WriteString(heredoc.Docf(`
		Research Requirements:
		1. Search for top attractions and activities in %s that match interests: %s
		2. Find places suitable for groups of %d people
		3. Get ratings and reviews for recommended places
		4. Find %s accommodation options within %s budget range
		5. Research activities matching %s difficulty level
		6. Get weather information for the travel period
		7. Get local customs and cultural tips for %s
		8. Research transportation options suitable for %d travelers

		Use the available tools to gather comprehensive information about %s.
	`,
		req.Destination, req.InterestsOrDefault(),
		req.Travelers(),
		req.Accommodation(), req.Budget(),
		req.Difficulty(),
		req.Destination,
		req.Travelers(),
		req.Destination,
	))

	return strings.TrimSpace(sb.String())
}
