// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoOwnerInContext is returned when an authenticated handler runs
	// without the owner id the auth middleware stores in the context.
	ErrNoOwnerInContext = errors.New("no owner id in request context")
)
