package crypto

import "github.com/MKhiriev/go-medi-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher is the stateless symmetric cipher used for encryption at rest.
//
// Every Encrypt call draws a fresh salt and IV, derives a 256-bit key from
// the password and the salt and seals the plaintext. The salt and IV travel
// next to the ciphertext in the returned [models.EncryptedBlob]; they are not
// secret. Decrypt re-derives the key from the same password and salt.
//
// The cipher knows nothing about storage, sessions or the network.
type Cipher interface {
	// Encrypt seals plaintext under a key derived from password.
	Encrypt(plaintext string, password []byte) (models.EncryptedBlob, error)

	// Decrypt opens blob with a key derived from password and blob.Salt.
	// Any mismatch (wrong password, foreign IV or salt, tampered content)
	// returns ErrDecryptionFailed.
	Decrypt(blob models.EncryptedBlob, password []byte) (string, error)
}

// KeySource lends the session key to fn for the duration of the call.
// Implementations must not let the key outlive fn.
type KeySource interface {
	WithKey(fn func(key []byte) error) error
}
