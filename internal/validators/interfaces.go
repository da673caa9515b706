// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for item operations.
//
// A Validator checks a value and may be scoped to a subset of named fields.
// Validation is decoupled from the transport layers and from storage, so the
// same rules apply to the web UI, the JSON API and the terminal client.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
