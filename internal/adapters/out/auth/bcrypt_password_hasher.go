package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher hashes passwords with bcrypt. The cost is fixed at
// the library default.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a bcrypt-backed password hasher.
func NewBcryptPasswordHasher() BcryptPasswordHasher {
	return BcryptPasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a storable hash from a raw password.
func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the raw password matches the stored hash.
func (h BcryptPasswordHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
