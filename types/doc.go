// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package types defines the shared contracts of the itinerary pipeline: the
// trip request and itinerary report data model, the error taxonomy, and the
// closed tool capability set used by the research agent.
package types
