package ports

import (
	"fooddelivery/internal/core/domain/model/user"
)

// PasswordHasher hashes and verifies account passwords. The domain only
// ever stores the hash.
type PasswordHasher interface {
	// Hash derives a storable hash from a raw password.
	Hash(password string) (string, error)

	// Verify reports whether the raw password matches the stored hash.
	Verify(hash, password string) bool
}

// TokenProvider issues signed authentication tokens for signed-in users.
type TokenProvider interface {
	// Generate returns a signed token carrying the user's identity.
	Generate(u *user.User) (string, error)
}
