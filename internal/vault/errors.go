package vault

import "errors"

var (
	// ErrAuthenticationFailed is returned by Unlock both when no vault is
	// configured and when the passcode is wrong.
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrAlreadyConfigured    = errors.New("vault is already configured")
	ErrPasscodeTooShort     = errors.New("passcode is too short")
	ErrPasscodeMismatch     = errors.New("passcodes do not match")
	ErrInvalidTransition    = errors.New("invalid vault state transition")

	ErrSessionClosed          = errors.New("vault session is closed")
	ErrSessionNotSerializable = errors.New("vault session cannot be serialized")
)
