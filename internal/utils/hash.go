package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from the given plaintext password.
// The salt is generated by bcrypt itself and embedded in the returned hash.
//
// Returns an error if the password is empty or hashing fails (e.g. the
// password exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the given
// bcrypt hash. The comparison is performed by bcrypt and is safe against
// timing attacks.
func CheckPasswordHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
