// Package shortcode generates the short identifiers under which shared
// prompts are stored.
package shortcode

import "crypto/rand"

// Alphabet is the 36-symbol set codes are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the fixed code length.
const Length = 7

// New returns a random 7-character code over [a-z0-9].
//
// Each random byte is reduced modulo 36, which skews the distribution
// slightly toward the first 4 symbols of the alphabet. The codes are not
// security tokens, only collision-resistant enough for human-shareable
// links, so the bias is accepted. Uniqueness is probabilistic: callers do
// not retry on collision, and a colliding write overwrites the earlier
// record.
func New() string {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand is documented to never fail on supported platforms.
		panic("shortcode: crypto/rand failed: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf)
}
