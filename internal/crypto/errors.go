package crypto

import "errors"

var (
	// ErrDecryption is returned when a payload cannot be authenticated under
	// the supplied key and IV. The payload must be treated as unreadable.
	ErrDecryption = errors.New("decryption failed")

	// ErrInvalidKey is returned when the room key is empty.
	ErrInvalidKey = errors.New("invalid room key")

	// ErrEncryption is returned when sealing a payload fails.
	ErrEncryption = errors.New("encryption failed")
)
