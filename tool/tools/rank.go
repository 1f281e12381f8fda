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

// RankTool ranks attractions of a category at a location by review presence
// in search results.
type RankTool struct {
	*tool.Tool

	client *Client
}

var _ types.Tool = (*RankTool)(nil)

// NewRankTool returns the new [RankTool].
func NewRankTool(client *Client) *RankTool {
	return &RankTool{
		Tool: tool.New(types.ToolRank,
			`Rank attractions by category in a location. Input: a category such as "museums" and a location.`),
		client: client,
	}
}

// Call implements [types.Tool].
func (t *RankTool) Call(ctx context.Context, q types.Query) types.Result {
	category := q.Category
	if category == "" {
		category = "attractions"
	}

	query := fmt.Sprintf("top %s %s best rated reviews", category, q.Location)
	results, err := t.client.search(ctx, query, 8)
	if err != nil {
		return types.Result{Err: fmt.Errorf("ranking %s in %q: %w", category, q.Location, err)}
	}
	if len(results) == 0 {
		return types.Result{Output: fmt.Sprintf("Could not find %s in %s.", category, q.Location)}
	}

	var sb strings.Builder
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s\n   %s\n\n", i+1, r.Title, r.Snippet)
	}
	return types.Result{Output: strings.TrimRight(sb.String(), "\n")}
}
