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

// CustomsTool looks up local customs, etiquette and cultural tips.
type CustomsTool struct {
	*tool.Tool

	client *Client
}

var _ types.Tool = (*CustomsTool)(nil)

// NewCustomsTool returns the new [CustomsTool].
func NewCustomsTool(client *Client) *CustomsTool {
	return &CustomsTool{
		Tool: tool.New(types.ToolCustoms,
			`Get local customs, etiquette and cultural tips for a location. Input: a location.`),
		client: client,
	}
}

// Call implements [types.Tool].
func (t *CustomsTool) Call(ctx context.Context, q types.Query) types.Result {
	query := fmt.Sprintf("%s local customs etiquette culture tips travelers", q.Location)
	results, err := t.client.search(ctx, query, 5)
	if err != nil {
		return types.Result{Err: fmt.Errorf("customs lookup for %q: %w", q.Location, err)}
	}
	if len(results) == 0 {
		return types.Result{Output: fmt.Sprintf("Local customs information for %s not available.", q.Location)}
	}

	tips := make([]string, 0, 3)
	for _, r := range results {
		if r.Snippet == "" {
			continue
		}
		tips = append(tips, r.Snippet)
		if len(tips) == 3 {
			break
		}
	}
	if len(tips) == 0 {
		return types.Result{Output: fmt.Sprintf("Local customs information for %s not available.", q.Location)}
	}
	return types.Result{Output: strings.Join(tips, "\n---\n")}
}
