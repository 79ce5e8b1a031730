// Package fingerprint provides stable content fingerprints for duplicate
// detection across export runs.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Prefix identifies the digest algorithm in emitted keys.
const Prefix = "sha256:"

// Content computes the dedupe key for an article's assembled text. The
// digest is taken over the UTF-8 bytes, so two articles with byte-identical
// content always share a key regardless of titles or authors.
func Content(text string) string {
	hash := sha256.Sum256([]byte(text))

	return Prefix + hex.EncodeToString(hash[:])
}

// IsKey reports whether s looks like a key produced by Content.
func IsKey(s string) bool {
	if !strings.HasPrefix(s, Prefix) {
		return false
	}

	digest := s[len(Prefix):]
	if len(digest) != sha256.Size*2 {
		return false
	}

	_, err := hex.DecodeString(digest)

	return err == nil
}
