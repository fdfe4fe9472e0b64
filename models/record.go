// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record categories offered by the upload form.
const (
	CategoryPrescription = "Prescriptions"
	CategoryLabReport    = "Lab Reports"
	CategoryImaging      = "Imaging (X-Rays/MRI)"
	CategoryVaccination  = "Vaccinations"
	CategoryOther        = "Other"
)

// Categories returns all record categories in display order.
func Categories() []string {
	return []string{
		CategoryPrescription,
		CategoryLabReport,
		CategoryImaging,
		CategoryVaccination,
		CategoryOther,
	}
}

// Record is an encrypted medical document together with the plaintext
// metadata shown in lists and used for sync matching.
//
// The document itself lives only in EncryptedData/IV/Salt, which always come
// from a single [EncryptedBlob] and travel between stores unchanged.
type Record struct {
	// ID is the local row identifier. It is never sent to the remote store.
	ID int64 `json:"-"`

	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Doctor   string `json:"doctor,omitempty"`
	Hospital string `json:"hospital,omitempty"`
	Date     string `json:"date,omitempty"`
	Size     int64  `json:"size,omitempty"`

	EncryptedData string `json:"encryptedData"`
	IV            string `json:"iv"`
	Salt          string `json:"salt"`

	CreatedAt time.Time `json:"createdAt"`
}

// Kind implements [Entity].
func (r Record) Kind() EntityKind { return KindRecord }

// NaturalKey implements [Entity]: records match on (name, date).
func (r Record) NaturalKey() string { return joinKey(r.Name, r.Date) }

// Blob returns the encrypted payload of the record.
func (r Record) Blob() EncryptedBlob {
	return EncryptedBlob{Content: r.EncryptedData, IV: r.IV, Salt: r.Salt}
}

// WithBlob returns a copy of r carrying blob as its encrypted payload.
func (r Record) WithBlob(blob EncryptedBlob) Record {
	r.EncryptedData = blob.Content
	r.IV = blob.IV
	r.Salt = blob.Salt
	return r
}

// TableName returns the name of the table records are stored in.
func (r Record) TableName() string {
	return "records"
}
