package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for newly hashed passwords. Stored hashes
// carry their own cost, so changing this only affects future hashes.
const bcryptCost = bcrypt.DefaultCost

// HashPassword derives a bcrypt hash from the plaintext password. The
// returned string embeds the salt and cost and is stored as-is.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the
// stored bcrypt hash. A malformed hash counts as a mismatch.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
