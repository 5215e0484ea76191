package svgtree

import "crypto/rand"

const uidAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// makeUID returns a fresh 8-character lowercase-alphanumeric token. Two
// documents only need distinct tokens with overwhelming probability, not
// certainty, so a modulo bias over 36 symbols is acceptable.
func makeUID() string {
	b := make([]byte, 8)
	rand.Read(b) // never fails, see crypto/rand docs
	for i, c := range b {
		b[i] = uidAlphabet[int(c)%len(uidAlphabet)]
	}
	return string(b)
}
