// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-medi-vault/internal/crypto"
	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/internal/vault"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

// humanizeError turns service and vault errors into the sentences shown on
// screen. Unknown errors are shown as they are.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, vault.ErrAuthenticationFailed):
		return "Incorrect passcode."
	case errors.Is(err, vault.ErrPasscodeTooShort):
		return "Passcode must be at least 4 characters."
	case errors.Is(err, vault.ErrPasscodeMismatch):
		return "Passcodes do not match."
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return "This document cannot be decrypted with the current passcode."
	case errors.Is(err, service.ErrWrongCredentials):
		return "Wrong email or password."
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return "This email is already registered."
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Check the email and password."
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, service.ErrRemoteUnavailable) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the sync server is unavailable."
	}

	return err.Error()
}
