package testutil

import (
	"crypto/sha256"
	"io"
	"math/rand/v2"
)

// DefaultSeed is used by NewSeededReader when the seed is empty.
const DefaultSeed = "formatkit"

// NewSeededReader returns a deterministic byte stream derived from seed.
//
// It stands in for crypto/rand when UUIDs must be reproducible, e.g. in
// scenario traces compared against golden files. Never use it for real
// identifiers.
//
// Thread-safety: the returned reader is NOT safe for concurrent use.
func NewSeededReader(seed string) io.Reader {
	if seed == "" {
		seed = DefaultSeed
	}
	return rand.NewChaCha8(sha256.Sum256([]byte(seed)))
}
