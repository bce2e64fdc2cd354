package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid lower", "deadbeef", nil},
		{"valid upper", "DEADBEEF", nil},
		{"valid mixed", "DeadBeef01", nil},
		{"empty", "", ErrInvalidInput},
		{"odd length", "abc", ErrInvalidLength},
		{"non-hex", "xyzw", ErrInvalidInput},
		{"spaces inside", "de ad", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHex(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeSeedHex(t *testing.T) {
	valid := strings.Repeat("ab", 64)

	seed, err := DecodeSeedHex(valid)
	require.NoError(t, err)
	assert.Len(t, seed, 64)

	seed, err = DecodeSeedHex("  " + valid + "\n")
	require.NoError(t, err)
	assert.Len(t, seed, 64)
}

func TestDecodeSeedHexWrongLength(t *testing.T) {
	for _, input := range []string{
		strings.Repeat("ab", 16),
		strings.Repeat("ab", 63),
		strings.Repeat("ab", 65),
	} {
		_, err := DecodeSeedHex(input)
		assert.ErrorIs(t, err, ErrInvalidLength, "%d chars", len(input))
	}
}

func TestDecodeSeedHexMalformed(t *testing.T) {
	_, err := DecodeSeedHex(strings.Repeat("zz", 64))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = DecodeSeedHex("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateEntropyBits(t *testing.T) {
	for _, bits := range []int{128, 160, 192, 224, 256} {
		assert.NoError(t, ValidateEntropyBits(bits))
	}
	for _, bits := range []int{0, 127, 130, 512} {
		assert.ErrorIs(t, ValidateEntropyBits(bits), ErrInvalidLength)
	}
}

func TestValidateMnemonic(t *testing.T) {
	valid := strings.TrimSpace(strings.Repeat("word ", 12))
	assert.NoError(t, ValidateMnemonic(valid))

	assert.ErrorIs(t, ValidateMnemonic(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateMnemonic("   "), ErrInvalidInput)

	thirteen := strings.TrimSpace(strings.Repeat("word ", 13))
	assert.ErrorIs(t, ValidateMnemonic(thirteen), ErrInvalidLength)
}
