package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts and decrypts opaque payloads with a room key.
//
// The server side of the scheme never sees plaintext at rest: everything
// written to a storage backend passes through Encrypt first, and only a
// caller holding the room key can read it back.
//
// Implementations must be stateless and safe for concurrent use.
type Cipher interface {
	// Encrypt seals plaintext under key and returns the ciphertext together
	// with the freshly generated initialization vector. An IV is never reused.
	Encrypt(key string, plaintext []byte) (ciphertext, iv []byte, err error)

	// Decrypt opens ciphertext sealed with the given iv and key. A wrong key,
	// a tampered ciphertext or a tampered iv yields an error wrapping
	// [ErrDecryption] and no plaintext. An empty key additionally wraps
	// [ErrInvalidKey].
	Decrypt(iv, ciphertext []byte, key string) ([]byte, error)
}
