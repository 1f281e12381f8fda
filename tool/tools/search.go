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

// SearchTool performs a general travel information web search.
type SearchTool struct {
	*tool.Tool

	client *Client
}

var _ types.Tool = (*SearchTool)(nil)

// NewSearchTool returns the new [SearchTool].
func NewSearchTool(client *Client) *SearchTool {
	return &SearchTool{
		Tool: tool.New(types.ToolSearch,
			`Search the web for travel information. Input: a search query such as "best restaurants in Paris".`),
		client: client,
	}
}

// Call implements [types.Tool].
func (t *SearchTool) Call(ctx context.Context, q types.Query) types.Result {
	results, err := t.client.search(ctx, q.Text, 5)
	if err != nil {
		return types.Result{Err: fmt.Errorf("searching %q: %w", q.Text, err)}
	}
	if len(results) == 0 {
		return types.Result{Output: "No search results found."}
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nDescription: %s\nSource: %s\n", r.Title, r.Snippet, r.URL))
	}
	return types.Result{Output: strings.Join(blocks, "\n---\n")}
}
