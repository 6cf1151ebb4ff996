package encrypter

import "errors"

var (
	// ErrInvalidKeyLength is returned when the AES key length is wrong.
	ErrInvalidKeyLength = errors.New("encryption key must be 16, 24, or 32 bytes long")
	// ErrCiphertextTooShort is returned when the ciphertext cannot hold a nonce.
	ErrCiphertextTooShort = errors.New("ciphertext is too short")
	// ErrDecryptionFailed is returned when the ciphertext or key is invalid.
	ErrDecryptionFailed = errors.New("decryption failed: invalid ciphertext or key")
)
