// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// ivSize is the AES-GCM nonce length in bytes.
	ivSize = 12

	// roomKeySize is the length of keys produced by GenerateRoomKey (AES-128).
	roomKeySize = 16

	// stretchedKeySize is the length of keys derived from passphrases.
	stretchedKeySize = 32

	hkdfInfo = "scene-keeper room key"
)

// aesGCMCipher is the default implementation of [Cipher].
type aesGCMCipher struct {
	random io.Reader
}

// NewCipher constructs the AES-GCM [Cipher].
//
// Room keys are expected in the form collaborating clients generate them:
// the base64url (unpadded) encoding of 16, 24 or 32 random bytes. Any other
// non-empty string is treated as a passphrase and stretched to a 256-bit
// key with HKDF-SHA256.
func NewCipher() Cipher {
	return &aesGCMCipher{random: rand.Reader}
}

// Encrypt implements [Cipher]. A new random 12-byte IV is read for every call.
func (c *aesGCMCipher) Encrypt(key string, plaintext []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	iv := make([]byte, ivSize)
	if _, err = io.ReadFull(c.random, iv); err != nil {
		return nil, nil, fmt.Errorf("%w: generate iv: %w", ErrEncryption, err)
	}

	return gcm.Seal(nil, iv, plaintext, nil), iv, nil
}

// Decrypt implements [Cipher].
func (c *aesGCMCipher) Decrypt(iv, ciphertext []byte, key string) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: iv has %d bytes, want %d", ErrDecryption, len(iv), gcm.NonceSize())
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plaintext, nil
}

// GenerateRoomKey returns a new random room key in the base64url form
// accepted by [NewCipher].
func GenerateRoomKey() (string, error) {
	key := make([]byte, roomKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate room key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}

func newGCM(key string) (cipher.AEAD, error) {
	raw, err := keyMaterial(key)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// keyMaterial turns a room key string into raw AES key bytes.
func keyMaterial(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	if decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(key, "=")); err == nil {
		switch len(decoded) {
		case 16, 24, 32:
			return decoded, nil
		}
	}

	stretched := make([]byte, stretchedKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(key), nil, []byte(hkdfInfo)), stretched); err != nil {
		return nil, fmt.Errorf("derive room key: %w", err)
	}
	return stretched, nil
}
