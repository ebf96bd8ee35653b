package ports

// PasswordHasher is a one-way salted hash. Hash rejects empty plaintext with
// domain.ErrInvalidInput. Verify reports a legitimate mismatch as
// (false, nil); an error means the stored hash itself is unusable.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) (bool, error)
}
