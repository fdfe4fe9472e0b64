// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// RecoveryKeySize is the number of random bytes in a recovery key (128 bits).
const RecoveryKeySize = 16

// HashPasscode returns the verification hash stored for a passcode: the
// lowercase hex SHA-256 digest. It is a verification record only and is
// never used as key material.
func HashPasscode(passcode []byte) string {
	sum := sha256.Sum256(passcode)
	return hex.EncodeToString(sum[:])
}

// VerifyPasscode reports whether passcode hashes to storedHash. The
// comparison runs in constant time.
func VerifyPasscode(passcode []byte, storedHash string) bool {
	computed := HashPasscode(passcode)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// GenerateRecoveryKey returns a fresh random recovery key, hex-encoded and
// upper-cased for readability.
func GenerateRecoveryKey() (string, error) {
	raw := make([]byte, RecoveryKeySize)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate recovery key: %w", err)
	}
	return fmt.Sprintf("%X", raw), nil
}
