// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-medi-vault/internal/crypto"
)

// Session is the in-memory session key of one unlocked period.
//
// The key material lives in a memguard LockedBuffer: guarded pages excluded
// from swap and core dumps, read-only while alive, wiped on Destroy. It is
// handed to callers only for the duration of a WithKey callback. A Session
// cannot be formatted or marshalled.
type Session struct {
	mu  sync.RWMutex
	buf *memguard.LockedBuffer
}

// NewSession moves passcode into locked memory and wipes the source slice.
func NewSession(passcode []byte) (*Session, error) {
	if len(passcode) == 0 {
		return nil, crypto.ErrEmptyPassword
	}

	return newSession(memguard.NewBufferFromBytes(passcode))
}

func newSession(buf *memguard.LockedBuffer) (*Session, error) {
	if !buf.IsAlive() {
		return nil, ErrSessionClosed
	}
	buf.Freeze()

	return &Session{buf: buf}, nil
}

// WithKey calls fn with the session key. The slice must not be retained or
// modified; it becomes unreadable once fn returns and the session is
// destroyed.
func (s *Session) WithKey(fn func(key []byte) error) error {
	if s == nil {
		return ErrSessionClosed
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.buf == nil || !s.buf.IsAlive() {
		return ErrSessionClosed
	}
	return fn(s.buf.Bytes())
}

// Alive reports whether the session still holds its key.
func (s *Session) Alive() bool {
	if s == nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf != nil && s.buf.IsAlive()
}

// Destroy wipes the key. It waits for running WithKey callbacks and is safe to
// call more than once.
func (s *Session) Destroy() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf != nil {
		s.buf.Destroy()
		s.buf = nil
	}
}

func (s *Session) String() string {
	return "vault.Session(redacted)"
}

func (s *Session) GoString() string {
	return s.String()
}

// MarshalJSON always fails.
func (s *Session) MarshalJSON() ([]byte, error) {
	return nil, ErrSessionNotSerializable
}
