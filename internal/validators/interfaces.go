// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks bookmark values against the field schema before
// they reach a store. The client validates local edits; the emulator
// validates what it receives on insert and merge.
package validators

import "context"

// Validator checks value and returns every violation joined into one error.
// When fields is non-empty only the named schema fields are checked, which
// is what a partial merge needs.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
