package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/scene-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned when a room token cannot be issued
	// because a required parameter is empty or zero.
	ErrInvalidTokenParams = errors.New("invalid params for generating room token")

	// ErrInvalidToken is returned when a room token fails verification.
	ErrInvalidToken = errors.New("invalid room token")

	// ErrInvalidAuthorizationHeader is returned when the header does not
	// carry a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// GenerateRoomToken issues an HS256 JWT that grants access to roomID.
//
// The token carries iss, sub (the room id), iat and exp claims. It never
// carries the room key.
func GenerateRoomToken(issuer, roomID string, tokenDuration time.Duration, signKey string) (models.RoomToken, error) {
	if issuer == "" || roomID == "" || tokenDuration <= 0 || signKey == "" {
		return models.RoomToken{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   roomID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.RoomToken{}, fmt.Errorf("error occurred during signing room token: %w", err)
	}

	return models.RoomToken{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		RoomID:           roomID,
	}, nil
}

// ValidateAndParseRoomToken verifies the signature, issuer and expiry of a
// room token and returns it with RoomID populated from the subject claim.
func ValidateAndParseRoomToken(tokenString, tokenSignKey, tokenIssuer string) (models.RoomToken, error) {
	var claims models.RoomToken
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.RoomToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return models.RoomToken{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	claims.Token = token
	claims.SignedString = tokenString
	claims.RoomID = claims.Subject
	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
