// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionID identifies a live transport connection (a websocket, or a
// client-chosen id for stateless HTTP callers). It is only ever used as a
// cache key; it carries no authority.
type ConnectionID string

// RoomIdentity addresses a shared scene and carries the symmetric key that
// protects it. RoomKey is never passed to a storage backend.
type RoomIdentity struct {
	RoomID  string `json:"room_id"`
	RoomKey string `json:"-"`
}

// IsComplete reports whether both the room id and the room key are known.
func (r RoomIdentity) IsComplete() bool {
	return r.RoomID != "" && r.RoomKey != ""
}

// StoredSceneEnvelope is the value persisted for a room's scene document.
//
// Ciphertext only decrypts under the room key together with the paired IV;
// the server never holds the plaintext or the key, so a corrupted envelope
// cannot be recovered.
type StoredSceneEnvelope struct {
	SceneVersion int64  `json:"scene_version" bson:"sceneVersion"`
	IV           []byte `json:"iv" bson:"iv"`
	Ciphertext   []byte `json:"ciphertext" bson:"ciphertext"`
}

// SaveStatus describes the outcome of a successful save call.
type SaveStatus string

const (
	// SaveStatusNotModified means the scene was already known to be persisted
	// for the connection and no store call was made.
	SaveStatusNotModified SaveStatus = "not_modified"

	// SaveStatusSaved means a new envelope was committed.
	SaveStatusSaved SaveStatus = "saved"
)

// SaveResult is returned by a successful scene save.
type SaveResult struct {
	Status SaveStatus `json:"status"`

	// SceneVersion is the version of the committed envelope. Zero when
	// Status is SaveStatusNotModified.
	SceneVersion int64 `json:"scene_version,omitempty"`

	// ReconciledElements holds the merged scene when a previous envelope
	// existed. It is nil for the first write to a room, in which case the
	// caller's elements were stored as is.
	ReconciledElements Elements `json:"reconciled_elements,omitempty"`
}

// MergeContext carries the local client state the reconciler needs: the
// elements that are being interacted with right now must not be replaced by
// remote copies.
type MergeContext struct {
	EditingElementID  string `json:"editing_element_id,omitempty"`
	ResizingElementID string `json:"resizing_element_id,omitempty"`
	DraggingElementID string `json:"dragging_element_id,omitempty"`
}

// IsActive reports whether the element with the given id is being edited,
// resized, or dragged locally.
func (m MergeContext) IsActive(elementID string) bool {
	if elementID == "" {
		return false
	}
	return elementID == m.EditingElementID ||
		elementID == m.ResizingElementID ||
		elementID == m.DraggingElementID
}
