// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ServerFields are the attributes the remote store adds to every entity it
// keeps. They never reach the local store.
type ServerFields struct {
	// ServerID is the remote identifier, used only for remote deletion.
	ServerID string `json:"id"`
	// Owner is the identifier of the account that owns the entity.
	Owner int64 `json:"owner"`
	// Revision is the server-side revision counter.
	Revision int64 `json:"revision"`
	// ServerCreatedAt is when the remote store accepted the entity.
	ServerCreatedAt time.Time `json:"serverCreatedAt"`
}

// RemoteRecord is a [Record] as returned by the remote store.
type RemoteRecord struct {
	ServerFields
	Record
}

// Stripped returns the record without server-only fields.
func (r RemoteRecord) Stripped() Record {
	rec := r.Record
	rec.ID = 0
	return rec
}

// RemoteVital is a [Vital] as returned by the remote store.
type RemoteVital struct {
	ServerFields
	Vital
}

// Stripped returns the vital without server-only fields.
func (r RemoteVital) Stripped() Vital {
	v := r.Vital
	v.ID = 0
	return v
}

// RemoteReminder is a [Reminder] as returned by the remote store.
type RemoteReminder struct {
	ServerFields
	Reminder
}

// Stripped returns the reminder without server-only fields.
func (r RemoteReminder) Stripped() Reminder {
	rem := r.Reminder
	rem.ID = 0
	return rem
}
