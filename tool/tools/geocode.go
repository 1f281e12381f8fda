// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"

	"github.com/voyago/voyago/tool"
	"github.com/voyago/voyago/types"
)

// GeocodeTool resolves a place query to a "lat,lng" string via Nominatim.
type GeocodeTool struct {
	*tool.Tool

	client *Client
}

var _ types.Tool = (*GeocodeTool)(nil)

// NewGeocodeTool returns the new [GeocodeTool].
func NewGeocodeTool(client *Client) *GeocodeTool {
	return &GeocodeTool{
		Tool: tool.New(types.ToolGeocode,
			`Get the coordinates of a place as "latitude,longitude". Input: a place name, optionally with the city appended.`),
		client: client,
	}
}

// nominatimHit is the subset of a Nominatim search hit we read.
// Nominatim serializes coordinates as strings.
type nominatimHit struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Call implements [types.Tool].
func (t *GeocodeTool) Call(ctx context.Context, q types.Query) types.Result {
	c := t.client

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.geocodeBaseURL, url.QueryEscape(q.Text))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return types.Result{Err: fmt.Errorf("geocoding %q: %w", q.Text, err)}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return types.Result{Err: fmt.Errorf("geocoding %q: %w", q.Text, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Result{Err: fmt.Errorf("geocoding %q: status %d", q.Text, resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return types.Result{Err: fmt.Errorf("geocoding %q: %w", q.Text, err)}
	}

	var hits []nominatimHit
	if err := sonic.Unmarshal(body, &hits); err != nil {
		return types.Result{Err: fmt.Errorf("geocoding %q: decoding response: %w", q.Text, err)}
	}
	if len(hits) == 0 || hits[0].Lat == "" || hits[0].Lon == "" {
		return types.Result{Err: fmt.Errorf("no geocoding result for %q", q.Text)}
	}

	return types.Result{Output: hits[0].Lat + "," + hits[0].Lon}
}
