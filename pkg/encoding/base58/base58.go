// Package base58 implements the Bitcoin Base58 encoding and the
// Base58Check framing used for WIF and extended-key serialization.
package base58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/seedkit/seedkit/pkg/crypto/sha2"
)

// alphabet is the Bitcoin Base58 alphabet. The characters 0, I, O and
// l are excluded to avoid transcription ambiguity.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// checksumLen is the number of double-SHA-256 bytes appended by the
// Check framing.
const checksumLen = 4

var (
	// ErrInvalidCharacter reports a character outside the Base58
	// alphabet during decoding.
	ErrInvalidCharacter = errors.New("base58: invalid character")

	// ErrChecksumMismatch reports a Base58Check payload whose trailing
	// four bytes do not match the double-SHA-256 of the rest.
	ErrChecksumMismatch = errors.New("base58: checksum mismatch")

	// ErrInvalidFormat reports a Base58Check string too short to carry
	// a checksum.
	ErrInvalidFormat = errors.New("base58: invalid format")
)

var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}

// Encode encodes payload as a Base58 string. Leading zero bytes map
// bijectively to a leading run of '1'; an all-zero payload encodes to
// len(payload) copies of '1'.
func Encode(payload []byte) string {
	zeros := 0
	for zeros < len(payload) && payload[zeros] == 0 {
		zeros++
	}

	// log(256)/log(58) < 138/100, so this bounds the digit count.
	size := (len(payload)-zeros)*138/100 + 1
	digits := make([]byte, size)

	// Repeated division by 58 over a big-endian digit buffer. high
	// tracks the most significant non-zero digit so each pass only
	// touches the live region; the loop indexes are signed and bounded
	// so the buffer start cannot be crossed.
	high := size - 1
	for _, b := range payload[zeros:] {
		carry := int(b)
		i := size - 1
		for ; i > high || carry != 0; i-- {
			carry += 256 * int(digits[i])
			digits[i] = byte(carry % 58)
			carry /= 58
		}
		high = i
	}

	start := 0
	for start < size && digits[start] == 0 {
		start++
	}

	out := make([]byte, 0, zeros+size-start)
	for i := 0; i < zeros; i++ {
		out = append(out, alphabet[0])
	}
	for _, d := range digits[start:] {
		out = append(out, alphabet[d])
	}
	return string(out)
}

// Decode is the structural inverse of Encode.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == alphabet[0] {
		zeros++
	}

	// log(58)/log(256) < 733/1000.
	size := (len(s)-zeros)*733/1000 + 1
	buf := make([]byte, size)

	high := size - 1
	for _, c := range []byte(s[zeros:]) {
		v := decodeTable[c]
		if v < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
		}
		carry := int(v)
		i := size - 1
		for ; i > high || carry != 0; i-- {
			carry += 58 * int(buf[i])
			buf[i] = byte(carry % 256)
			carry /= 256
		}
		high = i
	}

	start := 0
	for start < size && buf[start] == 0 {
		start++
	}

	out := make([]byte, 0, zeros+size-start)
	out = append(out, make([]byte, zeros)...)
	out = append(out, buf[start:]...)
	return out, nil
}

// checksum returns the first four bytes of double-SHA-256 over data.
func checksum(data []byte) [checksumLen]byte {
	sum := sha2.DoubleSum256(data)
	var c [checksumLen]byte
	copy(c[:], sum[:checksumLen])
	return c
}

// CheckEncode appends the four-byte double-SHA-256 checksum to payload
// and Base58-encodes the result.
func CheckEncode(payload []byte) string {
	framed := make([]byte, 0, len(payload)+checksumLen)
	framed = append(framed, payload...)
	sum := checksum(payload)
	framed = append(framed, sum[:]...)
	return Encode(framed)
}

// CheckDecode decodes a Base58Check string and verifies its checksum,
// returning the payload without the checksum bytes.
func CheckDecode(s string) ([]byte, error) {
	framed, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(framed) < checksumLen {
		return nil, fmt.Errorf("%w: %d bytes decoded, need at least %d", ErrInvalidFormat, len(framed), checksumLen)
	}
	payload := framed[:len(framed)-checksumLen]
	want := checksum(payload)
	if !bytes.Equal(framed[len(framed)-checksumLen:], want[:]) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}
