// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Remote Store Client: the transport-layer
// facade the medi-vault client uses to reach the sync backend.
//
// The primary abstraction is [RemoteStore], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-medi-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the CRUD facade over the sync backend. Every data call takes
// the owner's bearer token explicitly; the store keeps no session state.
//
// Entities returned by the list and create calls carry server-only fields
// ([models.ServerFields]) that callers strip before local insertion.
type RemoteStore interface {
	// Register creates an account and returns its authenticated session.
	// Returns [ErrConflict] (wrapped) when the email is already taken.
	Register(ctx context.Context, creds models.Credentials) (models.AccountSession, error)

	// Login authenticates an existing account. Returns [ErrUnauthorized]
	// (wrapped) for unknown emails and wrong passwords alike.
	Login(ctx context.Context, creds models.Credentials) (models.AccountSession, error)

	ListRecords(ctx context.Context, token string) ([]models.RemoteRecord, error)
	CreateRecord(ctx context.Context, token string, rec models.Record) (models.RemoteRecord, error)
	// DeleteRecord removes the record with the given server id.
	DeleteRecord(ctx context.Context, token string, id string) error

	ListVitals(ctx context.Context, token string) ([]models.RemoteVital, error)
	CreateVital(ctx context.Context, token string, vital models.Vital) (models.RemoteVital, error)

	ListReminders(ctx context.Context, token string) ([]models.RemoteReminder, error)
	CreateReminder(ctx context.Context, token string, reminder models.Reminder) (models.RemoteReminder, error)
}
