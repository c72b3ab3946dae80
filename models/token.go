package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoomToken wraps a JWT that grants access to a single room.
//
// The room id travels in the "sub" (subject) claim. The token never carries
// the room key: it authorizes access to the encrypted envelope, not to its
// plaintext.
type RoomToken struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// RoomID is a cached copy of the subject claim.
	RoomID string `json:"-"`
}

// String returns the compact serialized token.
func (t RoomToken) String() string {
	return t.SignedString
}
