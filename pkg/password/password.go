// Package password wraps credential hashing and carries the migration path
// for seed accounts whose rows still hold the raw password.
package password

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of a plaintext password.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// IsLegacy reports whether a stored credential predates bcrypt hashing.
// Legacy rows hold the raw password instead of a hash; on a successful login
// against such a row the caller is expected to rehash and persist it.
func IsLegacy(stored string) bool {
	return !strings.HasPrefix(stored, "$2a$") &&
		!strings.HasPrefix(stored, "$2b$") &&
		!strings.HasPrefix(stored, "$2y$")
}

// Verify checks a plaintext password against the stored credential, falling
// back to an exact comparison for legacy rows.
func Verify(plain, stored string) bool {
	if IsLegacy(stored) {
		return stored == plain
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
