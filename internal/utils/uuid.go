package utils

import (
	"github.com/MKhiriev/scene-keeper/models"
	"github.com/google/uuid"
)

// UUIDGenerator issues time-ordered identifiers for traces and connections.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ConnectionID returns a fresh connection id.
func (g *UUIDGenerator) ConnectionID() models.ConnectionID {
	return models.ConnectionID(g.Generate())
}
