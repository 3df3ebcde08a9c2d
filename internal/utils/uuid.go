// Package utils provides general-purpose helpers shared across packages.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side identifiers for swipe records.
// Version 7 UUIDs are time-ordered, so local insertion order stays
// recoverable from the IDs themselves.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID string, falling back to v4 when the platform's
// entropy source refuses a v7 (the only way NewV7 can fail).
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}

	return uuid.NewString()
}
