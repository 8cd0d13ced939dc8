// Package checksum authenticates downloaded artifacts against a release
// checksum manifest: a plain-text file with one "<hex-digest> <name>" pair
// per line. Every failure here is a hard failure for the installer — an
// unverified binary is never installed.
package checksum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrManifestUnavailable is returned when the checksum manifest could
	// not be fetched or read.
	ErrManifestUnavailable = errors.New("checksum manifest unavailable")
	// ErrDigestUnavailable is returned when the digest cannot be computed.
	ErrDigestUnavailable = errors.New("digest computation unavailable")
	// ErrEntryNotFound is returned when the manifest has no entry for the
	// artifact.
	ErrEntryNotFound = errors.New("no manifest entry for artifact")
	// ErrChecksumMismatch is returned when the computed digest differs from
	// the manifest entry.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Manifest maps artifact names to expected hex digests.
type Manifest map[string]string

// ParseManifest reads a plain-text checksum manifest. Each useful line is
// "<hex-digest><whitespace><name>"; blank lines and lines that don't split
// into exactly two fields are skipped.
func ParseManifest(r io.Reader) (Manifest, error) {
	m := make(Manifest)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) != 2 {
			continue
		}
		m[parts[1]] = parts[0]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading manifest: %v", ErrManifestUnavailable, err)
	}

	return m, nil
}

// Verify computes the artifact's digest and compares it to the manifest
// entry under key. The comparison is exact string equality of the hex
// digests; no case folding is applied.
func Verify(artifactPath string, manifest Manifest, key string, digest Digest) error {
	expected, ok := manifest[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEntryNotFound, key)
	}

	computed, err := digest.Sum(artifactPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDigestUnavailable, err)
	}

	if computed != expected {
		return fmt.Errorf("%w: expected %s, computed %s", ErrChecksumMismatch, expected, computed)
	}

	return nil
}
