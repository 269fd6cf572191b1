// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way digests and
// checks candidates against stored digests.
//
// There is deliberately no way to recover a plaintext from a digest.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Two calls with the same
	// plaintext produce different digests.
	Hash(plaintext string) (string, error)

	// Compare reports whether plaintext reproduces hash. A mismatch is
	// (false, nil); an error means the stored hash itself is unusable.
	// The comparison runs in constant time.
	Compare(plaintext, hash string) (bool, error)
}
