package models

import "time"

// Token is a signed bearer token issued by the remote store.
//
// SignedString is the compact JWS form sent in the Authorization header.
// UserID is the owner identifier carried in the "sub" claim.
type Token struct {
	SignedString string    `json:"-"`
	UserID       int64     `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
