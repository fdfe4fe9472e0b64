// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Reminder is a medication schedule entry.
type Reminder struct {
	ID int64 `json:"-"`

	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Time         string `json:"time,omitempty"`
	IsActive     bool   `json:"isActive"`
	NextDose     string `json:"nextDose,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Kind implements [Entity].
func (r Reminder) Kind() EntityKind { return KindReminder }

// NaturalKey implements [Entity]: reminders match on the medicine name.
func (r Reminder) NaturalKey() string { return r.MedicineName }

func (r Reminder) TableName() string {
	return "reminders"
}
