// Package hmac512 implements HMAC (RFC 2104) over the SHA-512 hash
// from pkg/crypto/sha2.
package hmac512

import (
	"hash"

	"github.com/seedkit/seedkit/pkg/crypto/sha2"
)

const (
	// Size is the size of an HMAC-SHA512 digest in bytes.
	Size = sha2.Size512

	// BlockSize is the underlying SHA-512 block size in bytes.
	BlockSize = sha2.BlockSize512
)

type mac struct {
	inner hash.Hash
	outer hash.Hash
	ipad  [BlockSize]byte
	opad  [BlockSize]byte
}

// New returns a new HMAC-SHA512 hash.Hash keyed with key. Keys longer
// than the block size are replaced by their SHA-512 digest before
// padding, per RFC 2104.
func New(key []byte) hash.Hash {
	m := &mac{
		inner: sha2.New512(),
		outer: sha2.New512(),
	}
	if len(key) > BlockSize {
		sum := sha2.Sum512(key)
		key = sum[:]
	}
	copy(m.ipad[:], key)
	copy(m.opad[:], key)
	for i := range m.ipad {
		m.ipad[i] ^= 0x36
	}
	for i := range m.opad {
		m.opad[i] ^= 0x5c
	}
	m.inner.Write(m.ipad[:])
	return m
}

func (m *mac) Size() int { return Size }

func (m *mac) BlockSize() int { return BlockSize }

func (m *mac) Reset() {
	m.inner.Reset()
	m.inner.Write(m.ipad[:])
}

func (m *mac) Write(p []byte) (int, error) {
	return m.inner.Write(p)
}

func (m *mac) Sum(in []byte) []byte {
	innerSum := m.inner.Sum(nil)
	m.outer.Reset()
	m.outer.Write(m.opad[:])
	m.outer.Write(innerSum)
	return m.outer.Sum(in)
}

// Sum computes HMAC-SHA512(key, message) in one shot.
func Sum(key, message []byte) [Size]byte {
	m := New(key)
	m.Write(message)
	var out [Size]byte
	copy(out[:], m.Sum(nil))
	return out
}
