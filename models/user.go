// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a remote store account.
type User struct {
	// UserID is the internal identifier of the user. It is the owner
	// reference attached to every stored entity.
	UserID int64 `json:"id"`

	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password. It never
	// leaves the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials carry the email and password submitted to register or log in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountSession is the authenticated remote session persisted on the client.
type AccountSession struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// Authenticated reports whether the session carries a bearer token.
func (s AccountSession) Authenticated() bool {
	return s.Token != ""
}
