// Package passphrase generates backup passphrases for wallet key recovery.
package passphrase

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"io"
	"strings"
)

const entropyBytes = 20

var encoder = base32.StdEncoding.WithPadding(base32.NoPadding)

// Random returns a new random backup passphrase. The passphrase is an
// opaque secret; it is grouped with dashes purely for readability when a
// user has to copy it by hand.
func Random() (string, error) {
	raw := make([]byte, entropyBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("failed to generate passphrase: %w", err)
	}

	encoded := encoder.EncodeToString(raw)

	var groups []string
	for len(encoded) > 0 {
		n := 4
		if len(encoded) < n {
			n = len(encoded)
		}
		groups = append(groups, encoded[:n])
		encoded = encoded[n:]
	}
	return strings.Join(groups, "-"), nil
}
