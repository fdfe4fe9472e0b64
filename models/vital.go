// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Vital is a single health measurement such as heart rate or blood pressure.
// All measurement fields are kept as entered by the user.
type Vital struct {
	ID int64 `json:"-"`

	Type      string `json:"type"`
	Value     string `json:"value"`
	Unit      string `json:"unit"`
	Timestamp string `json:"timestamp"`

	CreatedAt time.Time `json:"createdAt"`
}

// Kind implements [Entity].
func (v Vital) Kind() EntityKind { return KindVital }

// NaturalKey implements [Entity]: vitals match on their timestamp.
func (v Vital) NaturalKey() string { return v.Timestamp }

func (v Vital) TableName() string {
	return "vitals"
}
