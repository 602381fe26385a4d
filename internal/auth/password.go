// Package auth provides password hashing and JWT token handling.
// It is consumed by the user service (hashing at registration, verification
// at login) and by the auth middleware (token parsing).
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of the plaintext password at the
// default cost. bcrypt is a one-way adaptive hash — the plaintext is never
// recoverable and is never stored.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

// VerifyPassword compares a plaintext password against a bcrypt hash.
// Returns nil on match, an error otherwise.
func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
