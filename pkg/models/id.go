package models

import (
	mrand "math/rand/v2"
	"regexp"

	"github.com/google/uuid"
)

// uuidV4Pattern matches the canonical 8-4-4-4-12 UUID form with the version
// nibble fixed to 4 and the variant nibble in {8, 9, a, b}.
var uuidV4Pattern = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// NewID returns a fresh UUID v4 string. Random bytes come from crypto/rand;
// if the system entropy source is unavailable, a math/rand fallback is used
// so that id generation never fails outright.
func NewID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}

	var b uuid.UUID
	for i := 0; i < len(b); i += 8 {
		v := mrand.Uint64()
		for j := 0; j < 8; j++ {
			b[i+j] = byte(v >> (8 * j))
		}
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10xx
	return b.String()
}

// IsValidUUIDv4 reports whether s is a UUID-v4-shaped string. It accepts
// either case and returns false, never panicking, for any malformed input.
func IsValidUUIDv4(s string) bool {
	return uuidV4Pattern.MatchString(s)
}
