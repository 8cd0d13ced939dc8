package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Digest computes a cryptographic digest of a file, returned as a lowercase
// hex string. Verification takes it as a capability so tests can inject a
// fake without touching real hash material.
type Digest interface {
	Sum(path string) (string, error)
}

// SHA256 is the production Digest used for release artifacts.
type SHA256 struct{}

// Sum returns the SHA-256 digest of the file at path as lowercase hex.
func (SHA256) Sum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
