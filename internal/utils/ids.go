// internal/utils/ids.go
package utils

import (
	"crypto/rand"
	"strings"
)

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewOrderReference returns a short uppercase alphanumeric reference for
// display on receipts. Generated from crypto/rand; ambiguous glyphs
// (O/0, I/1) are excluded from the alphabet.
func NewOrderReference() string {
	return randomCode(9)
}

// NewProductID returns a store-listing id carrying the reserved "p-"
// prefix that keeps persisted listings apart from the mock sets.
func NewProductID() string {
	return "p-" + strings.ToLower(randomCode(10))
}

func randomCode(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	var b strings.Builder
	b.Grow(length)
	for _, c := range buf {
		b.WriteByte(referenceAlphabet[int(c)%len(referenceAlphabet)])
	}
	return b.String()
}
