// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the remote client of a scene-keeper server.
//
// [SceneAdapter] mirrors the REST routes. Non-2xx responses are mapped to the
// sentinel errors in errors.go, so callers can use [errors.Is] regardless of
// the status code details (e.g. [ErrForbidden] for a wrong room key).
package adapter

import (
	"context"

	"github.com/MKhiriev/scene-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SceneAdapter talks to a scene-keeper server.
//
// The adapter behaves like one connection: the first response that carries
// an X-Connection-ID header fixes the id used by later requests, so the
// server's version cache recognizes repeated saves of the same scene.
type SceneAdapter interface {
	// SetToken stores the room token attached to every request. An empty
	// token disables the Authorization header.
	SetToken(token string)

	// ConnectionID returns the connection id in use, or "" before the first
	// scene request.
	ConnectionID() models.ConnectionID

	// Version fetches the server's build version and store backend.
	Version(ctx context.Context) (models.VersionResponse, error)

	// LoadScene reads and decrypts the room's scene on the server. An absent
	// room yields an error wrapping [ErrNotFound].
	LoadScene(ctx context.Context, room models.RoomIdentity) (models.Elements, error)

	// SaveScene persists elements. A scene the server already holds for this
	// connection yields a NotModified result.
	SaveScene(ctx context.Context, room models.RoomIdentity, req models.SaveSceneRequest) (models.SaveResult, error)

	// IsSaved asks whether elements are persisted for this connection.
	IsSaved(ctx context.Context, room models.RoomIdentity, elements models.Elements) (bool, error)

	// SaveFiles uploads a batch of encrypted attachments.
	SaveFiles(ctx context.Context, req models.SaveFilesRequest) (models.SaveFilesResponse, error)

	// LoadFiles downloads and decrypts a batch of attachments with key.
	LoadFiles(ctx context.Context, key string, req models.LoadFilesRequest) (models.LoadFilesResponse, error)
}
