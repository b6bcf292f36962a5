package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateSecureRandomString generates a cryptographically secure random
// string of the specified byte length, hex encoded.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// RandomDigits returns n cryptographically random decimal digits. Used as a
// collision-avoidance suffix when the document number allocator is down.
func RandomDigits(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("n must be positive")
	}
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to read random digit: %w", err)
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
