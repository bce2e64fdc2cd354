// Package validation performs boundary input validation. The crypto
// primitives below this layer assume fixed-size, well-formed inputs;
// validation happens once here and is never retried automatically.
package validation

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/seedkit/seedkit/pkg/crypto/hdkey"
	"github.com/seedkit/seedkit/pkg/entropy"
)

var (
	// ErrInvalidInput reports malformed input such as empty buffers or
	// non-hex characters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidLength reports input of the wrong size.
	ErrInvalidLength = errors.New("invalid length")
)

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// ValidateHex checks that input is a non-empty, even-length hex string.
func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("%w: hex string cannot be empty", ErrInvalidInput)
	}

	if len(input)%2 != 0 {
		return fmt.Errorf("%w: hex string has %d characters, must be even", ErrInvalidLength, len(input))
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("%w: invalid hex characters", ErrInvalidInput)
	}

	return nil
}

// DecodeSeedHex parses a 128-character hex string into a 64-byte
// BIP-39 seed.
func DecodeSeedHex(input string) ([]byte, error) {
	input = strings.TrimSpace(input)
	if err := ValidateHex(input); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	if len(input) != hdkey.SeedLength*2 {
		return nil, fmt.Errorf("%w: seed hex has %d characters, expected %d", ErrInvalidLength, len(input), hdkey.SeedLength*2)
	}

	seed, err := hex.DecodeString(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return seed, nil
}

// ValidateEntropyBits checks that bits is a supported entropy size.
func ValidateEntropyBits(bits int) error {
	if !entropy.ValidBits(bits) {
		return fmt.Errorf("%w: %d entropy bits, expected 128, 160, 192, 224 or 256", ErrInvalidLength, bits)
	}
	return nil
}

// ValidateMnemonic checks that words looks like a mnemonic phrase of a
// standard word count.
func ValidateMnemonic(words string) error {
	words = strings.TrimSpace(words)
	if words == "" {
		return fmt.Errorf("%w: mnemonic cannot be empty", ErrInvalidInput)
	}

	count := len(strings.Fields(words))
	switch count {
	case 12, 15, 18, 21, 24:
		return nil
	}
	return fmt.Errorf("%w: mnemonic has %d words, expected 12, 15, 18, 21 or 24", ErrInvalidLength, count)
}
