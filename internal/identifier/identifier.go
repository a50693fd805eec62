// Package identifier mints the short random keys under which meal plans
// are stored.
package identifier

import "math/rand/v2"

const (
	// Length is part of the public contract: stored plan keys are exactly
	// 7 characters long.
	Length = 7

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// New returns a 7-character identifier with each character drawn uniformly
// from A-Z0-9. The randomness is not cryptographic and collisions are not
// checked against existing store keys; with 36^7 possible values the risk
// is accepted and a colliding create simply overwrites (last writer wins).
func New() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// Valid reports whether id is a well-formed plan identifier: exactly 7
// alphanumeric characters. Lowercase is accepted on input even though New
// only emits uppercase.
func Valid(id string) bool {
	if len(id) != Length {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
