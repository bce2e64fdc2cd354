// Package pbkdf2 implements PBKDF2 (RFC 8018) over HMAC-SHA512. It is
// the key-stretching step that turns a mnemonic phrase and passphrase
// into a BIP-39 seed, and the dominant cost center of the pipeline:
// the iteration count is the only latency tunable, and each iteration
// depends on the previous one, so there is no early exit and no
// parallelism within a block.
package pbkdf2

import (
	"context"
	"fmt"

	"github.com/seedkit/seedkit/pkg/crypto/hmac512"
)

// Key derives a key of keyLen bytes from password and salt using
// iterations rounds of HMAC-SHA512. iterations must be at least 1.
func Key(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	return KeyContext(context.Background(), password, salt, iterations, keyLen)
}

// KeyContext is Key with cancellation. The context is checked between
// output blocks, the only point at which the computation can be
// suspended without restarting a block.
func KeyContext(ctx context.Context, password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("pbkdf2: iterations must be at least 1, got %d", iterations)
	}
	if keyLen < 0 {
		return nil, fmt.Errorf("pbkdf2: negative key length %d", keyLen)
	}

	prf := hmac512.New(password)
	numBlocks := (keyLen + hmac512.Size - 1) / hmac512.Size

	dk := make([]byte, 0, numBlocks*hmac512.Size)
	var u [hmac512.Size]byte
	var block [hmac512.Size]byte
	var counter [4]byte

	for i := 1; i <= numBlocks; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pbkdf2: derivation canceled: %w", err)
		}

		// U1 = PRF(password, salt || INT_32_BE(i))
		counter[0] = byte(i >> 24)
		counter[1] = byte(i >> 16)
		counter[2] = byte(i >> 8)
		counter[3] = byte(i)

		prf.Reset()
		prf.Write(salt)
		prf.Write(counter[:])
		copy(u[:], prf.Sum(nil))
		copy(block[:], u[:])

		// Uj = PRF(password, U(j-1)), block ^= Uj
		for j := 1; j < iterations; j++ {
			prf.Reset()
			prf.Write(u[:])
			copy(u[:], prf.Sum(nil))
			for k := range block {
				block[k] ^= u[k]
			}
		}

		dk = append(dk, block[:]...)
	}

	return dk[:keyLen], nil
}
