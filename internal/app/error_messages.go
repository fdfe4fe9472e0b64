// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response texts shared by the medi-vault server
// handlers and middleware.
//
// Every Msg* constant is written into an HTTP response body when a request is
// rejected before it reaches the service layer, or when the cause must not be
// echoed to the caller.
package app

const (
	// MsgInvalidJSON is returned when a request body is not a single JSON
	// object of the expected shape.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or its expiry time has passed.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoOwnerInContext is returned by entity handlers reached without an
	// authenticated owner.
	MsgNoOwnerInContext = "no owner in request context"

	// MsgSessionIssueFailed is returned when the credentials were accepted
	// but no token could be signed for them.
	MsgSessionIssueFailed = "could not issue a session"
)
