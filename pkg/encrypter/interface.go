package encrypter

// Encrypter provides symmetric encryption for secrets at rest and secure
// hashing for shared keys. Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	HashSecret(secret string) (string, error)
	CheckSecretHash(secret, hash string) bool
}

// New creates a new Encrypter with the provided AES key (16, 24 or 32 bytes).
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}

type implEncrypter struct {
	key string
}
