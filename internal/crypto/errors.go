package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned for every failure to open an encrypted
	// blob. Callers cannot tell a wrong passcode from a corrupted record.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidDataURL indicates a payload that is not a base64 data URL.
	// After decryption it means the content cannot be trusted.
	ErrInvalidDataURL = errors.New("invalid data url")

	// ErrEmptyPassword is returned when encryption is attempted without key
	// material.
	ErrEmptyPassword = errors.New("empty password")
)
