// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package voyago is a tool-augmented travel itinerary generation engine: it
// orchestrates web research tools and a generative model, coerces the model
// output into a strictly validated itinerary report, and backfills missing
// geographic coordinates.
package voyago

// Version is the version of the Voyago engine.
var Version = "v0.1.0"
