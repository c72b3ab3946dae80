// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON keys of the element fields read by the persistence layer.
const (
	elementKeyID           = "id"
	elementKeyVersion      = "version"
	elementKeyVersionNonce = "versionNonce"
	elementKeyIsDeleted    = "isDeleted"
	elementKeyUpdated      = "updated"
	elementKeyIndex        = "index"
)

// Element is a single drawable unit of a collaborative scene.
//
// The persistence layer treats elements as opaque JSON objects: only the
// identity and change-tracking fields below are decoded into struct fields,
// every other key is kept in compact form and written back unchanged, so
// elements produced by newer clients survive a round trip through an older
// server. Encoding with [EncodeJSON] leaves <, > and & unescaped.
type Element struct {
	// ID is the stable identifier of the element within a scene.
	ID string

	// Version is incremented by the client on every local mutation.
	Version int64

	// VersionNonce is a random value regenerated on every mutation and used
	// to break ties between concurrent edits carrying the same Version.
	VersionNonce int64

	// IsDeleted marks a tombstoned element. Tombstones are persisted so that
	// deletions propagate to other clients.
	IsDeleted bool

	// Updated is the client wall-clock time (epoch ms) of the last mutation.
	Updated int64

	// Index is the fractional ordering index of the element, if any.
	Index string

	extra map[string]json.RawMessage
}

// Elements is an ordered collection of scene elements.
type Elements []Element

// Field returns the raw JSON value of an application-defined field.
func (e Element) Field(name string) (json.RawMessage, bool) {
	v, ok := e.extra[name]
	return v, ok
}

// WithField returns a copy of e with the application-defined field name set
// to the JSON encoding of value. Keys owned by the struct fields cannot be
// set this way.
func (e Element) WithField(name string, value any) (Element, error) {
	switch name {
	case elementKeyID, elementKeyVersion, elementKeyVersionNonce, elementKeyIsDeleted, elementKeyUpdated, elementKeyIndex:
		return e, fmt.Errorf("field %q is reserved", name)
	}

	raw, err := EncodeJSON(value)
	if err != nil {
		return e, fmt.Errorf("marshal element field %q: %w", name, err)
	}

	extra := make(map[string]json.RawMessage, len(e.extra)+1)
	for k, v := range e.extra {
		extra[k] = v
	}
	extra[name] = raw
	e.extra = extra

	return e, nil
}

// MarshalJSON implements [json.Marshaler].
func (e Element) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(e.extra)+6)
	for k, v := range e.extra {
		fields[k] = v
	}

	fields[elementKeyID] = e.ID
	fields[elementKeyVersion] = e.Version
	fields[elementKeyVersionNonce] = e.VersionNonce
	fields[elementKeyIsDeleted] = e.IsDeleted
	if e.Updated != 0 {
		fields[elementKeyUpdated] = e.Updated
	}
	if e.Index != "" {
		fields[elementKeyIndex] = e.Index
	}

	return EncodeJSON(fields)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (e *Element) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var decoded Element
	targets := map[string]any{
		elementKeyID:           &decoded.ID,
		elementKeyVersion:      &decoded.Version,
		elementKeyVersionNonce: &decoded.VersionNonce,
		elementKeyIsDeleted:    &decoded.IsDeleted,
		elementKeyUpdated:      &decoded.Updated,
		elementKeyIndex:        &decoded.Index,
	}

	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		delete(fields, key)

		if string(raw) == "null" {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("element field %q: %w", key, err)
		}
	}

	for key, raw := range fields {
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("element field %q: %w", key, err)
		}
		fields[key] = buf.Bytes()
	}
	if len(fields) > 0 {
		decoded.extra = fields
	}

	*e = decoded
	return nil
}

// EncodeJSON marshals v like [json.Marshal] without escaping <, > and &, so
// element payloads keep their bytes through a round trip.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
