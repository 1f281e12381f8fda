// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package tools implements the concrete research tools: DuckDuckGo-backed
// web search variants and Nominatim geocoding. Every tool converts failures
// into [types.Result] values at its boundary; nothing here panics or raises
// past the tool contract.
package tools

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	defaultSearchBaseURL  = "https://html.duckduckgo.com/html/"
	defaultGeocodeBaseURL = "https://nominatim.openstreetmap.org"

	// Nominatim rejects requests without an identifying user agent.
	defaultUserAgent = "voyago/0.1 (travel itinerary engine)"
)

// Client is the HTTP plumbing shared by all tools. Base URLs are injectable
// so tests run against httptest servers.
type Client struct {
	hc             *http.Client
	searchBaseURL  string
	geocodeBaseURL string
	userAgent      string
}

// ClientOption configures a [Client].
type ClientOption func(*Client)

// WithSearchBaseURL overrides the search endpoint.
func WithSearchBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.searchBaseURL = baseURL }
}

// WithGeocodeBaseURL overrides the geocoding endpoint.
func WithGeocodeBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.geocodeBaseURL = baseURL }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a tool client. A nil hc gets a 15 second timeout client.
func NewClient(hc *http.Client, opts ...ClientOption) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}

	c := &Client{
		hc:             hc,
		searchBaseURL:  defaultSearchBaseURL,
		geocodeBaseURL: defaultGeocodeBaseURL,
		userAgent:      defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResult is one scraped web search hit.
type searchResult struct {
	Title   string
	Snippet string
	URL     string
}

var (
	resultLinkRe    = regexp.MustCompile(`(?s)<a[^>]+class="result__a"[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	resultSnippetRe = regexp.MustCompile(`(?s)<a[^>]+class="result__snippet"[^>]*>(.*?)</a>`)
	tagRe           = regexp.MustCompile(`<[^>]*>`)
)

// stripTags flattens an HTML fragment to plain text.
func stripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(tagRe.ReplaceAllString(s, "")))
}

// search queries the DuckDuckGo HTML endpoint and scrapes up to maxResults hits.
func (c *Client) search(ctx context.Context, query string, maxResults int) ([]searchResult, error) {
	form := url.Values{"q": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchBaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	page := string(body)
	links := resultLinkRe.FindAllStringSubmatch(page, maxResults)
	snippets := resultSnippetRe.FindAllStringSubmatch(page, maxResults)

	results := make([]searchResult, 0, len(links))
	for i, link := range links {
		r := searchResult{
			URL:   stripTags(link[1]),
			Title: stripTags(link[2]),
		}
		if i < len(snippets) {
			r.Snippet = stripTags(snippets[i][1])
		}
		results = append(results, r)
	}
	return results, nil
}
