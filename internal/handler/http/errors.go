// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/scene-keeper/internal/app"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the room-token middleware
	// when tokens are enforced and the request carries no "Authorization"
	// header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrRoomNotAuthorized is returned when a valid token was issued for a
	// different room than the one addressed by the request.
	ErrRoomNotAuthorized = errors.New("token does not grant access to this room")

	// ErrMissingRoomKey is returned when a route that decrypts data is
	// called without the X-Room-Key header.
	ErrMissingRoomKey = errors.New(app.MsgMissingRoomKey)

	// ErrSceneNotFound is returned by a load of a room that has no scene.
	ErrSceneNotFound = errors.New(app.MsgSceneNotFound)
)
