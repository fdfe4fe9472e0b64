// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// EntityKind names one of the synchronized entity families.
type EntityKind string

const (
	KindRecord   EntityKind = "record"
	KindVital    EntityKind = "vital"
	KindReminder EntityKind = "reminder"
)

// Kinds lists every entity family in reconciliation order.
var Kinds = []EntityKind{KindRecord, KindVital, KindReminder}

// Entity is implemented by every locally stored entity that takes part in
// reconciliation.
//
// NaturalKey returns the plaintext metadata tuple used to decide whether two
// entities on different stores describe the same logical item. It is a
// heuristic match and never a database identifier: two different documents
// sharing the same tuple are treated as the same item.
type Entity interface {
	Kind() EntityKind
	NaturalKey() string
}

// naturalKeySeparator joins tuple components. The unit separator cannot be
// typed into the metadata inputs, so ("a b", "c") and ("a", "b c") never
// collide.
const naturalKeySeparator = "\x1f"

func joinKey(parts ...string) string {
	return strings.Join(parts, naturalKeySeparator)
}
