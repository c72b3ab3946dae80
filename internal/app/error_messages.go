// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the HTTP routes and the
// websocket portal, so both transports describe failures with the same
// wording.
package app

const (
	// MsgMissingRoomKey is returned when a route or socket that decrypts data
	// is opened without the X-Room-Key header.
	MsgMissingRoomKey = "missing `X-Room-Key` header"

	// MsgSceneNotFound is returned by a load of a room that has no scene.
	MsgSceneNotFound = "scene not found"

	// MsgInvalidMessage is sent over a socket when a frame is not a JSON
	// portal message.
	MsgInvalidMessage = "invalid message"

	// MsgUnknownMessageType is sent over a socket for a message whose type is
	// not save, load or is-saved.
	MsgUnknownMessageType = "unknown message type"

	// MsgInternalError replaces storage and driver failures in socket
	// replies.
	MsgInternalError = "internal error"
)
