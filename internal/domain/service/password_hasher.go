// Package service declares the infrastructure capabilities the use cases
// depend on: hashing, tokens, event publishing and catalog export.
package service

// PasswordHasher turns registration passwords into stored hashes and checks
// login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
