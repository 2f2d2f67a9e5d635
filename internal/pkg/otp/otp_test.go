package otp

import "testing"

func TestNumericCodeLength(t *testing.T) {
	gen := NewNumericCode()

	for _, length := range []int{1, 4, 6, 8, 10} {
		code := gen.Generate(length)
		if len(code) != length {
			t.Fatalf("Generate(%d) returned %q with length %d", length, code, len(code))
		}
	}
}

func TestNumericCodeDefaultsLength(t *testing.T) {
	gen := NewNumericCode()

	for _, length := range []int{0, -1} {
		code := gen.Generate(length)
		if len(code) != DefaultLength {
			t.Fatalf("Generate(%d) returned %q, want %d digits", length, code, DefaultLength)
		}
	}
}

func TestNumericCodeDigitsOnly(t *testing.T) {
	gen := NewNumericCode()

	for range 100 {
		code := gen.Generate(6)
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("Generate returned non-digit character in %q", code)
			}
		}
	}
}

func TestNumericCodeVaries(t *testing.T) {
	gen := NewNumericCode()

	seen := make(map[string]struct{})
	for range 50 {
		seen[gen.Generate(8)] = struct{}{}
	}

	// 50 draws from 10^8 possibilities colliding down to one value means
	// the randomness source is broken.
	if len(seen) < 2 {
		t.Fatalf("expected varied codes, got %d distinct values", len(seen))
	}
}
