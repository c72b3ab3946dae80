// Package utils provides helpers shared by the transports: typed context
// keys, JSON response writing, room-token handling, identifier generation
// and the HTTP client used by the remote adapter.
package utils

import (
	"context"

	"github.com/MKhiriev/scene-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ConnectionIDCtxKey stores the [models.ConnectionID] of the caller.
	ConnectionIDCtxKey = contextKey("connectionID")

	// RoomIDCtxKey stores the room id authorized by a verified room token.
	RoomIDCtxKey = contextKey("roomID")
)

// WithConnectionID returns a copy of ctx carrying connID.
func WithConnectionID(ctx context.Context, connID models.ConnectionID) context.Context {
	return context.WithValue(ctx, ConnectionIDCtxKey, connID)
}

// GetConnectionIDFromContext retrieves the caller's connection id.
// ok is false when the value is missing or has an unexpected type.
func GetConnectionIDFromContext(ctx context.Context) (models.ConnectionID, bool) {
	connID, ok := ctx.Value(ConnectionIDCtxKey).(models.ConnectionID)
	return connID, ok
}

// WithRoomID returns a copy of ctx carrying the authorized room id.
func WithRoomID(ctx context.Context, roomID string) context.Context {
	return context.WithValue(ctx, RoomIDCtxKey, roomID)
}

// GetRoomIDFromContext retrieves the room id stored by the room-token
// middleware.
func GetRoomIDFromContext(ctx context.Context) (string, bool) {
	roomID, ok := ctx.Value(RoomIDCtxKey).(string)
	return roomID, ok
}
