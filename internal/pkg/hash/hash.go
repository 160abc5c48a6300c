package hash

// Hash abstracts a one-way hashing scheme.
type Hash interface {
	// Hash returns the hash of the input string.
	Hash(str string) ([]byte, error)
	// Verify reports whether the plaintext matches the given hash.
	Verify(hashed, str string) bool
}
