// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the device passcode vault: setup with a one-time
// recovery key, unlock and lock, and the [Session] that carries the session
// key between unlock and lock.
//
// The vault persists only a verification hash of the passcode and the
// recovery key, under the "passcode" and "recoveryKey" settings. The passcode
// itself is the key material and never leaves locked memory.
package vault

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-medi-vault/internal/crypto"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

// MinPasscodeLength is the minimum passcode length in characters. Four
// characters is far below what a passcode-derived key needs; the limit is
// kept for compatibility with existing vaults.
const MinPasscodeLength = 4

// Vault is the unlock state machine of one device.
//
//	UNINITIALIZED --Setup--> AWAITING_CONFIRMATION --AcknowledgeRecoveryKey--> UNLOCKED
//	UNINITIALIZED|LOCKED --Unlock--> UNLOCKED --Lock--> LOCKED
//
// All methods are safe for concurrent use. Passcode slices handed to Setup
// and Unlock are wiped before the call returns.
type Vault struct {
	mu sync.Mutex

	settings store.SettingsRepository
	logger   *logger.Logger

	state    State
	resolved bool

	// pending holds the passcode between Setup and AcknowledgeRecoveryKey.
	pending *memguard.LockedBuffer
	session *Session
}

func New(settings store.SettingsRepository, logger *logger.Logger) *Vault {
	return &Vault{
		settings: settings,
		logger:   logger,
		state:    StateUninitialized,
	}
}

// Status returns the current state. On first use it reads the settings table
// to tell a fresh device from a configured, locked one.
func (v *Vault) Status(ctx context.Context) (State, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.resolve(ctx); err != nil {
		return v.state, err
	}
	return v.state, nil
}

func (v *Vault) resolve(ctx context.Context) error {
	if v.resolved {
		return nil
	}

	_, err := v.settings.GetSetting(ctx, models.SettingPasscode)
	switch {
	case errors.Is(err, store.ErrSettingNotFound):
		v.state = StateUninitialized
	case err != nil:
		v.logger.Err(err).Str("func", "Vault.resolve").Msg("error reading vault configuration")
		return fmt.Errorf("error reading vault configuration: %w", err)
	default:
		v.state = StateLocked
	}

	v.resolved = true
	return nil
}

// Setup configures a fresh vault with passcode and returns the recovery key.
// The key is returned only here and must be shown to the user before
// AcknowledgeRecoveryKey is called.
//
// Returns ErrPasscodeTooShort or ErrAlreadyConfigured; setup is never
// repeated over an existing credential.
func (v *Vault) Setup(ctx context.Context, passcode []byte) (string, error) {
	defer memguard.WipeBytes(passcode)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.resolve(ctx); err != nil {
		return "", err
	}
	if utf8.RuneCount(passcode) < MinPasscodeLength {
		return "", ErrPasscodeTooShort
	}
	if v.state != StateUninitialized {
		return "", ErrAlreadyConfigured
	}

	recoveryKey, err := crypto.GenerateRecoveryKey()
	if err != nil {
		return "", fmt.Errorf("error generating recovery key: %w", err)
	}

	err = v.settings.SaveCredential(ctx, models.Credential{
		PasscodeHash: crypto.HashPasscode(passcode),
		RecoveryKey:  recoveryKey,
	})
	if errors.Is(err, store.ErrCredentialExists) {
		// another process set this database up after we last looked
		v.state = StateLocked
		v.logger.Warn().Str("func", "Vault.Setup").Msg("vault was configured concurrently")
		return "", ErrAlreadyConfigured
	}
	if err != nil {
		v.logger.Err(err).Str("func", "Vault.Setup").Msg("error saving vault credential")
		return "", fmt.Errorf("error saving vault credential: %w", err)
	}

	v.pending = memguard.NewBufferFromBytes(passcode)
	v.state = StateAwaitingConfirmation
	v.logger.Info().Str("func", "Vault.Setup").Msg("vault configured, awaiting recovery key confirmation")

	return recoveryKey, nil
}

// AcknowledgeRecoveryKey completes setup and opens the first session.
func (v *Vault) AcknowledgeRecoveryKey() (*Session, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != StateAwaitingConfirmation || v.pending == nil {
		return nil, ErrInvalidTransition
	}

	session, err := newSession(v.pending)
	v.pending = nil
	if err != nil {
		v.state = StateLocked
		return nil, err
	}

	v.replaceSession(session)
	return session, nil
}

// Unlock verifies passcode against the stored hash and opens a new session.
//
// A missing credential and a wrong passcode both return
// ErrAuthenticationFailed and leave the state unchanged. Storage failures are
// returned wrapped.
func (v *Vault) Unlock(ctx context.Context, passcode []byte) (*Session, error) {
	defer memguard.WipeBytes(passcode)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.resolve(ctx); err != nil {
		return nil, err
	}
	if v.state == StateAwaitingConfirmation {
		return nil, ErrInvalidTransition
	}

	hash, err := v.settings.GetSetting(ctx, models.SettingPasscode)
	if errors.Is(err, store.ErrSettingNotFound) {
		v.logger.Warn().Str("func", "Vault.Unlock").Msg("unlock failed")
		return nil, ErrAuthenticationFailed
	}
	if err != nil {
		v.logger.Err(err).Str("func", "Vault.Unlock").Msg("error reading vault credential")
		return nil, fmt.Errorf("error reading vault credential: %w", err)
	}

	if !crypto.VerifyPasscode(passcode, hash) {
		v.logger.Warn().Str("func", "Vault.Unlock").Msg("unlock failed")
		return nil, ErrAuthenticationFailed
	}

	session, err := NewSession(passcode)
	if err != nil {
		return nil, err
	}

	v.replaceSession(session)
	v.logger.Info().Str("func", "Vault.Unlock").Msg("vault unlocked")
	return session, nil
}

func (v *Vault) replaceSession(session *Session) {
	if v.session != nil {
		v.session.Destroy()
	}
	v.session = session
	v.state = StateUnlocked
}

// Lock destroys the session key. It is always safe to call; a device that
// was never configured stays UNINITIALIZED.
func (v *Vault) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.session != nil {
		v.session.Destroy()
		v.session = nil
	}
	if v.pending != nil {
		v.pending.Destroy()
		v.pending = nil
	}

	if v.resolved && v.state != StateUninitialized {
		v.state = StateLocked
	}
}

// Session returns the live session, if the vault is unlocked.
func (v *Vault) Session() (*Session, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != StateUnlocked || !v.session.Alive() {
		return nil, false
	}
	return v.session, true
}

// ConfirmPasscode checks the second entry of a new passcode against the first.
func ConfirmPasscode(passcode, confirmation []byte) error {
	if subtle.ConstantTimeCompare(passcode, confirmation) != 1 {
		return ErrPasscodeMismatch
	}
	return nil
}
