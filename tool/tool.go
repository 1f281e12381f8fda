// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

// Package tool provides the base implementation shared by all research tools.
package tool

import (
	"github.com/voyago/voyago/types"
)

// Tool carries the identity every concrete tool shares: a stable name, a
// description for the reasoning loop, and the capability variant.
type Tool struct {
	name        string
	description string
	kind        types.ToolKind
}

// New returns the base tool for the given kind. The name is the kind's
// canonical name.
func New(kind types.ToolKind, description string) *Tool {
	return &Tool{
		name:        kind.String(),
		description: description,
		kind:        kind,
	}
}

// Name implements part of [types.Tool].
func (t *Tool) Name() string {
	return t.name
}

// Description implements part of [types.Tool].
func (t *Tool) Description() string {
	return t.description
}

// Kind implements part of [types.Tool].
func (t *Tool) Kind() types.ToolKind {
	return t.kind
}
