// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/voyago/voyago/tool"
	"github.com/voyago/voyago/types"
)

// weatherKeywords mark search snippets that actually talk about weather.
var weatherKeywords = []string{"temperature", "weather", "climate", "°c", "°f"}

// WeatherTool looks up weather information for a location.
type WeatherTool struct {
	*tool.Tool

	client *Client
}

var _ types.Tool = (*WeatherTool)(nil)

// NewWeatherTool returns the new [WeatherTool].
func NewWeatherTool(client *Client) *WeatherTool {
	return &WeatherTool{
		Tool: tool.New(types.ToolWeather,
			`Get weather information for a location. Input: a location and optionally a month.`),
		client: client,
	}
}

// Call implements [types.Tool].
func (t *WeatherTool) Call(ctx context.Context, q types.Query) types.Result {
	query := "weather " + q.Location
	if q.Month != "" {
		query += " " + q.Month
	}

	results, err := t.client.search(ctx, query, 3)
	if err != nil {
		return types.Result{Err: fmt.Errorf("weather lookup for %q: %w", q.Location, err)}
	}

	var relevant []string
	for _, r := range results {
		lower := strings.ToLower(r.Snippet)
		for _, kw := range weatherKeywords {
			if strings.Contains(lower, kw) {
				relevant = append(relevant, r.Snippet)
				break
			}
		}
	}
	if len(relevant) == 0 {
		return types.Result{Output: fmt.Sprintf("Weather information for %s not readily available.", q.Location)}
	}
	if len(relevant) > 2 {
		relevant = relevant[:2]
	}
	return types.Result{Output: strings.Join(relevant, "\n")}
}
