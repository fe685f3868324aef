package strutil

import (
	"io"

	"github.com/google/uuid"
)

// UUID returns a random RFC 4122 version 4 UUID in its 36-character
// lower-case hyphenated form, e.g. "9b2f6c1e-8a4d-4f0b-9c3e-2d7a5b1f0e64".
//
// The 16 random bytes come from crypto/rand. Panics if the operating system
// random source fails.
func UUID() string {
	return uuid.Must(uuid.NewRandom()).String()
}

// UUIDFromReader is UUID with the random bytes read from r.
// The version nibble and variant bits are overwritten after reading.
func UUIDFromReader(r io.Reader) (string, error) {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
