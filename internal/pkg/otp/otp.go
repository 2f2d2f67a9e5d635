package otp

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// DefaultLength is the number of digits used when Generate receives a
// non-positive length.
const DefaultLength = 6

// digits is the character set used for code generation.
const digits = "0123456789"

// Generator produces one-time codes.
type Generator interface {
	// Generate returns a code of the given number of decimal digits.
	Generate(length int) string
}

// NumericCode generates fixed-length decimal codes.
//
// Each digit is selected uniformly at random using crypto/rand, so codes
// are not predictable from prior outputs.
type NumericCode struct{}

// NewNumericCode returns a new NumericCode generator.
func NewNumericCode() *NumericCode {
	return &NumericCode{}
}

// Generate returns a code of length decimal digits.
func (g *NumericCode) Generate(length int) string {
	if length < 1 {
		length = DefaultLength
	}

	max := big.NewInt(int64(len(digits)))

	var sb strings.Builder
	sb.Grow(length)
	for range length {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// there is no meaningful recovery for an auth code.
			panic(err)
		}
		sb.WriteByte(digits[n.Int64()])
	}

	return sb.String()
}
