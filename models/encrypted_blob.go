// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedBlob is the output of one encryption call.
//
// Content, IV and Salt are always produced together and must be consumed
// together: decrypting with the IV or Salt of another blob fails. IV and Salt
// are hex-encoded and are not secret.
type EncryptedBlob struct {
	Content string `json:"content"`
	IV      string `json:"iv"`
	Salt    string `json:"salt"`
}

// IsZero reports whether the blob carries no ciphertext.
func (b EncryptedBlob) IsZero() bool {
	return b.Content == "" && b.IV == "" && b.Salt == ""
}
