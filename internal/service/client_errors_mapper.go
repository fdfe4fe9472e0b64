// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-medi-vault/internal/adapter"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, validators.ErrInvalidEntity), errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrWrongCredentials
	case errors.Is(err, adapter.ErrConflict):
		return ErrEmailAlreadyRegistered
	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return err
}
