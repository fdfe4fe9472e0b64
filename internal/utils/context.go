// Package utils holds the small helpers shared by the medi-vault server and
// client: the request owner in a context, JSON request and response helpers,
// bearer tokens, the resty client and entity ids.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return "medi-vault context key " + string(c)
}

// ownerCtxKey holds the id of the authenticated account that owns every
// entity a request touches.
const ownerCtxKey = contextKey("owner")

// WithOwner returns a copy of ctx carrying owner.
func WithOwner(ctx context.Context, owner int64) context.Context {
	return context.WithValue(ctx, ownerCtxKey, owner)
}

// OwnerFromContext returns the owner stored by [WithOwner]. Zero and negative
// ids are never issued, so they are reported as missing.
func OwnerFromContext(ctx context.Context) (int64, bool) {
	owner, ok := ctx.Value(ownerCtxKey).(int64)
	if !ok || owner <= 0 {
		return 0, false
	}
	return owner, true
}
