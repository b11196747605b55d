package utils

import "github.com/google/uuid"

// UUIDGenerator produces string identifiers for new records.
// UUIDv7 is preferred because it is time-ordered, which keeps primary-key
// indexes append-mostly; v4 is used as a fallback when v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
