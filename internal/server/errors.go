// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when there is no HTTP
	// router or no address to bind it to.
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrListenFailed wraps the listener error of a server that stopped
	// before it was asked to.
	ErrListenFailed = errors.New("server stopped listening")
)
