package utils

import "github.com/google/uuid"

// EntityIDs issues the server-side ids of records, vitals and reminders.
// Ids are UUIDv7, so they sort in creation order.
type EntityIDs struct{}

func NewEntityIDs() EntityIDs {
	return EntityIDs{}
}

// Generate returns a new id. It falls back to a random UUIDv4 when the clock
// source for v7 is unavailable.
func (EntityIDs) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// IsEntityID reports whether s is a canonical hyphenated UUID, the only form
// the entity tables accept as a primary key.
func IsEntityID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
