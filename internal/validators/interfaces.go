// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the strict entity schema at the store and
// transport boundaries.
//
// A Validator accepts any value and dispatches on its concrete type. Unknown
// types are rejected with ErrUnsupportedType. Field-level failures are joined
// and wrapped in ErrInvalidEntity; the optional field list narrows the check
// to the named fields only.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
