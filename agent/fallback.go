// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/voyago/voyago/types"
)

// summaryPrompt turns the raw tool findings into a research summary.
var summaryPrompt = heredoc.Doc(`
	You are an expert travel planner AI. Based on the research findings below, provide a comprehensive summary.

	Research Findings:
	%s

	Research Brief:
	%s

	Provide a well-structured summary including:
	1. Top attractions and must-visit places
	2. Ratings and reviews when mentioned
	3. Price information if available
	4. Weather and best time to visit
	5. Cultural tips and local customs
	6. General recommendations

	Comprehensive Summary:
`)

// runFixedSequence executes the deterministic tool sequence: general search,
// attraction ranking, weather, customs, then one summarization call. Every
// step degrades gracefully; the sequence always returns usable context.
func (r *Researcher) runFixedSequence(ctx context.Context, req *types.TripRequest) string {
	dest := req.Destination

	var findings []string

	search := r.tools.Search.Call(ctx, types.Query{Text: dest + " travel guide attractions"})
	findings = append(findings, "Search Results: "+truncate(search.ContextText(), searchSnippetCap))

	rank := r.tools.Rank.Call(ctx, types.Query{Category: "attractions", Location: dest})
	findings = append(findings, "Top Attractions: "+truncate(rank.ContextText(), rankSnippetCap))

	weather := r.tools.Weather.Call(ctx, types.Query{Location: dest, Month: req.StartDate})
	findings = append(findings, "Weather: "+truncate(weather.ContextText(), weatherSnippetCap))

	customs := r.tools.Customs.Call(ctx, types.Query{Location: dest})
	findings = append(findings, "Cultural Tips: "+truncate(customs.ContextText(), customsSnippetCap))

	findings = append(findings, "Note: Coordinates will be automatically fetched for all places in the final itinerary.")

	combined := strings.Join(findings, "\n")
	if r.model == nil {
		return combined
	}

	summary, err := r.model.Complete(ctx, fmt.Sprintf(summaryPrompt, combined, BuildInput(req)))
	if err != nil {
		r.logger.WarnContext(ctx, "research summarization failed, returning raw findings", "error", err)
		return combined
	}
	return summary
}
