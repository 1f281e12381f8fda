// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package types

// ConfigurationError indicates the deployment is unusable, such as a missing
// generation credential. It is raised eagerly at construction time and is
// never folded into an [ItineraryOutcome].
type ConfigurationError string

// Error returns a string representation of the [ConfigurationError].
func (e ConfigurationError) Error() string {
	return "configuration error: " + string(e)
}

// ParseError reports that no parsable JSON object could be extracted from the
// raw model output.
type ParseError struct {
	Msg string
	Err error
}

// Error returns a string representation of the [ParseError].
func (e *ParseError) Error() string {
	if e.Err != nil {
		return "parse error: " + e.Msg + ": " + e.Err.Error()
	}
	return "parse error: " + e.Msg
}

// Unwrap returns the underlying decode error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports that an extracted report (or an inbound request)
// violates a structural invariant.
type ValidationError struct {
	Field string
	Msg   string
}

// Error returns a string representation of the [ValidationError].
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "validation error: " + e.Field + ": " + e.Msg
	}
	return "validation error: " + e.Msg
}
