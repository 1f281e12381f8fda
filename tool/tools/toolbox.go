// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"github.com/voyago/voyago/types"
)

// NewToolbox assembles the full capability set over one shared client.
func NewToolbox(client *Client) *types.Toolbox {
	return &types.Toolbox{
		Search:  NewSearchTool(client),
		Rank:    NewRankTool(client),
		Weather: NewWeatherTool(client),
		Customs: NewCustomsTool(client),
		Geocode: NewGeocodeTool(client),
	}
}
