// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncDirection tells which way a reconciliation pass copies items.
type SyncDirection string

const (
	SyncPush SyncDirection = "push"
	SyncPull SyncDirection = "pull"
)

// SyncItem identifies one entity copied during a pass.
type SyncItem struct {
	Kind       EntityKind `json:"kind"`
	NaturalKey string     `json:"naturalKey"`
}

// SyncFailure describes a step that failed during a pass. An empty
// NaturalKey means the whole kind was aborted (for example because listing
// one of the stores failed).
type SyncFailure struct {
	Kind       EntityKind `json:"kind"`
	NaturalKey string     `json:"naturalKey,omitempty"`
	Err        error      `json:"-"`
	Reason     string     `json:"reason"`
}

// SyncReport is the outcome of one reconciliation pass.
//
// Applied lists the items pushed (push direction) or inserted locally (pull
// direction). A pass with no authenticated session is Skipped and performs
// no I/O.
type SyncReport struct {
	Direction  SyncDirection `json:"direction"`
	Skipped    bool          `json:"skipped"`
	Applied    []SyncItem    `json:"applied"`
	Failed     []SyncFailure `json:"failed"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// Complete reports whether the pass ran and nothing failed.
func (r SyncReport) Complete() bool {
	return !r.Skipped && len(r.Failed) == 0
}

// AppliedOf returns the number of applied items of the given kind.
func (r SyncReport) AppliedOf(kind EntityKind) int {
	n := 0
	for _, item := range r.Applied {
		if item.Kind == kind {
			n++
		}
	}
	return n
}

// Merge appends the items and failures of other to r.
func (r *SyncReport) Merge(other SyncReport) {
	r.Applied = append(r.Applied, other.Applied...)
	r.Failed = append(r.Failed, other.Failed...)
}
