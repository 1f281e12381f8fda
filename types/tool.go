// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"
)

// ToolKind enumerates the closed set of research capabilities. The agent's
// tool sequence dispatches on these variants rather than on free-form names.
type ToolKind int

const (
	// ToolSearch performs a general web search.
	ToolSearch ToolKind = iota
	// ToolRank ranks attractions of a category at a location.
	ToolRank
	// ToolWeather looks up weather for a location.
	ToolWeather
	// ToolCustoms looks up local customs and etiquette.
	ToolCustoms
	// ToolGeocode resolves a place query to "lat,lng".
	ToolGeocode
)

// String returns the canonical tool name for the kind.
func (k ToolKind) String() string {
	switch k {
	case ToolSearch:
		return "search_travel_information"
	case ToolRank:
		return "rank_attractions_by_category"
	case ToolWeather:
		return "get_weather_info"
	case ToolCustoms:
		return "get_local_customs_tips"
	case ToolGeocode:
		return "get_place_coordinates"
	default:
		return "unknown"
	}
}

// Query carries the arguments of one tool call. Which fields are read
// depends on the tool kind.
type Query struct {
	// Text is the free-text query, or the place name for geocoding.
	Text string
	// Location scopes rank, weather and customs lookups.
	Location string
	// Category selects what to rank.
	Category string
	// Month optionally scopes weather lookups.
	Month string
}

// Result is the outcome of one tool call. Failures are values here, never
// raised errors: callers branch on Degraded instead of recovering panics.
type Result struct {
	Output string
	Err    error
}

// Degraded reports whether the call failed.
func (r Result) Degraded() bool { return r.Err != nil }

// ContextText returns the output suitable for folding into a research
// context: the payload on success, an inline diagnostic note on failure.
func (r Result) ContextText() string {
	if r.Err != nil {
		return "[tool error: " + r.Err.Error() + "]"
	}
	return r.Output
}

// Tool is one research capability. Implementations never panic and never
// return a raised error past their boundary; all failures arrive as
// [Result.Err].
type Tool interface {
	// Name returns the stable tool name (used by the reasoning loop).
	Name() string
	// Description tells the reasoning loop what the tool does.
	Description() string
	// Kind identifies the capability variant.
	Kind() ToolKind
	// Call executes the tool.
	Call(ctx context.Context, q Query) Result
}

// Toolbox is the closed, statically checkable set of tools the research
// agent may use.
type Toolbox struct {
	Search  Tool
	Rank    Tool
	Weather Tool
	Customs Tool
	Geocode Tool
}

// All returns every populated tool in declaration order.
func (tb *Toolbox) All() []Tool {
	var all []Tool
	for _, t := range []Tool{tb.Search, tb.Rank, tb.Weather, tb.Customs, tb.Geocode} {
		if t != nil {
			all = append(all, t)
		}
	}
	return all
}

// ByName resolves a tool by its stable name.
func (tb *Toolbox) ByName(name string) (Tool, bool) {
	for _, t := range tb.All() {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}
