// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-medi-vault/models"
)

// Parameters shared by both sides of the cipher. Encryption and decryption
// must agree on all of them.
const (
	// KeySize is the derived AES key length (256 bits).
	KeySize = 32
	// SaltSize is the KDF salt length (128 bits).
	SaltSize = 16
	// IVSize is the AES-GCM nonce length (128 bits).
	IVSize = 16
	// KDFIterations is the PBKDF2 iteration count. It is kept at the value
	// existing vaults were written with; raising it makes old records
	// unreadable.
	KDFIterations = 1000
)

// aesCipher is the private implementation of [Cipher]: PBKDF2-HMAC-SHA256
// key derivation and AES-256-GCM with a 128-bit nonce.
type aesCipher struct {
	iterations int
	random     io.Reader
}

// NewCipher constructs a [Cipher] with the fixed vault parameters.
func NewCipher() Cipher {
	return &aesCipher{
		iterations: KDFIterations,
		random:     rand.Reader,
	}
}

// Encrypt implements [Cipher]. Content is base64 (standard encoding) of the
// sealed plaintext including the GCM tag; IV and Salt are lowercase hex.
func (c *aesCipher) Encrypt(plaintext string, password []byte) (models.EncryptedBlob, error) {
	if len(password) == 0 {
		return models.EncryptedBlob{}, ErrEmptyPassword
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate salt: %w", err)
	}
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate iv: %w", err)
	}

	gcm, err := c.aead(password, salt)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)

	return models.EncryptedBlob{
		Content: base64.StdEncoding.EncodeToString(sealed),
		IV:      hex.EncodeToString(iv),
		Salt:    hex.EncodeToString(salt),
	}, nil
}

// Decrypt implements [Cipher].
func (c *aesCipher) Decrypt(blob models.EncryptedBlob, password []byte) (string, error) {
	salt, err := hex.DecodeString(blob.Salt)
	if err != nil || len(salt) != SaltSize {
		return "", ErrDecryptionFailed
	}
	iv, err := hex.DecodeString(blob.IV)
	if err != nil || len(iv) != IVSize {
		return "", ErrDecryptionFailed
	}
	sealed, err := base64.StdEncoding.DecodeString(blob.Content)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	gcm, err := c.aead(password, salt)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// deriveKey stretches password with salt into a [KeySize] key.
func (c *aesCipher) deriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, c.iterations, KeySize, sha256.New)
}

func (c *aesCipher) aead(password, salt []byte) (cipher.AEAD, error) {
	key := c.deriveKey(password, salt)
	defer wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
