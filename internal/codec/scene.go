// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts scenes and attachments to and from the encrypted
// byte layouts stored by the persistence backends.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/scene-keeper/internal/crypto"
	"github.com/MKhiriev/scene-keeper/internal/scene"
	"github.com/MKhiriev/scene-keeper/models"
)

// SceneCodec seals element collections into [models.StoredSceneEnvelope]
// values and opens them again.
type SceneCodec struct {
	cipher    crypto.Cipher
	versioner scene.Versioner
}

// NewSceneCodec constructs a SceneCodec.
func NewSceneCodec(cipher crypto.Cipher, versioner scene.Versioner) *SceneCodec {
	return &SceneCodec{
		cipher:    cipher,
		versioner: versioner,
	}
}

// Encode computes the scene version of elements, serializes them to JSON and
// encrypts the result under roomKey.
func (c *SceneCodec) Encode(elements models.Elements, roomKey string) (models.StoredSceneEnvelope, error) {
	if elements == nil {
		elements = models.Elements{}
	}

	plaintext, err := models.EncodeJSON(elements)
	if err != nil {
		return models.StoredSceneEnvelope{}, fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	ciphertext, iv, err := c.cipher.Encrypt(roomKey, plaintext)
	if err != nil {
		return models.StoredSceneEnvelope{}, fmt.Errorf("encrypt scene: %w", err)
	}

	return models.StoredSceneEnvelope{
		SceneVersion: c.versioner.Version(elements),
		IV:           iv,
		Ciphertext:   ciphertext,
	}, nil
}

// Decode decrypts envelope under roomKey and deserializes the element list.
// A wrong key or a corrupted envelope yields an error wrapping
// [crypto.ErrDecryption].
func (c *SceneCodec) Decode(envelope models.StoredSceneEnvelope, roomKey string) (models.Elements, error) {
	plaintext, err := c.cipher.Decrypt(envelope.IV, envelope.Ciphertext, roomKey)
	if err != nil {
		return nil, fmt.Errorf("decrypt scene: %w", err)
	}

	var elements models.Elements
	if err = json.Unmarshal(plaintext, &elements); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	return elements, nil
}

// Version returns the scene version of elements.
func (c *SceneCodec) Version(elements models.Elements) int64 {
	return c.versioner.Version(elements)
}
