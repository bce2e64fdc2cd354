// Package entropy acquires raw entropy for mnemonic generation. A
// request either returns exactly the number of bytes asked for or
// fails the whole operation; short reads are never retried and no
// fallback source is consulted, since silently retrying or mixing
// sources can mask a degraded RNG.
package entropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrSourceFailure reports that the entropy source failed or returned
// fewer bytes than requested. It is fatal for the operation in
// progress; policy (retry, abort, alert) belongs to the caller.
var ErrSourceFailure = errors.New("entropy: source failure")

// Bits constraints for BIP-39 entropy.
const (
	MinBits  = 128
	MaxBits  = 256
	StepBits = 32
)

// ValidBits reports whether bits is a valid BIP-39 entropy size:
// between 128 and 256 and a multiple of 32.
func ValidBits(bits int) bool {
	return bits >= MinBits && bits <= MaxBits && bits%StepBits == 0
}

// Bytes returns n cryptographically secure random bytes from the
// operating system RNG.
func Bytes(n int) ([]byte, error) {
	return Read(rand.Reader, n)
}

// Read returns exactly n bytes from r, wrapping any failure or short
// read in ErrSourceFailure.
func Read(r io.Reader, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: requested %d bytes", ErrSourceFailure, n)
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(r, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: read %d of %d bytes: %v", ErrSourceFailure, got, n, err)
	}
	return buf, nil
}
