// Package hdkey derives BIP-32 master keys from BIP-39 seeds and
// serializes them as extended private keys (xprv) and WIF strings.
// Only depth-0 (master) records are produced; child derivation is out
// of scope.
package hdkey

import (
	"errors"
	"fmt"

	"github.com/seedkit/seedkit/pkg/crypto/hmac512"
	"github.com/seedkit/seedkit/pkg/encoding/base58"
	"github.com/seedkit/seedkit/pkg/secure"
)

const (
	// SeedLength is the exact BIP-39 seed length in bytes.
	SeedLength = 64

	// KeyLength is the private key length in bytes.
	KeyLength = 32

	// ChainCodeLength is the chain code length in bytes.
	ChainCodeLength = 32

	// wifVersion is the mainnet private key version byte.
	wifVersion = 0x80
)

// masterHMACKey is the fixed HMAC key from the BIP-32 specification.
var masterHMACKey = []byte("Bitcoin seed")

// xprvVersion is the mainnet extended-private-key version prefix.
var xprvVersion = [4]byte{0x04, 0x88, 0xAD, 0xE4}

// ErrInvalidSeedLength reports a seed that is not exactly SeedLength
// bytes.
var ErrInvalidSeedLength = errors.New("hdkey: invalid seed length")

// KeyMaterial holds a master private key and its chain code.
type KeyMaterial struct {
	PrivateKey [KeyLength]byte
	ChainCode  [ChainCodeLength]byte
}

// DeriveMaster computes the BIP-32 master key material for a 64-byte
// BIP-39 seed: HMAC-SHA512 keyed "Bitcoin seed" over the seed, split
// into private key (first 32 bytes) and chain code (last 32 bytes).
func DeriveMaster(seed []byte) (*KeyMaterial, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d", ErrInvalidSeedLength, len(seed), SeedLength)
	}

	sum := hmac512.Sum(masterHMACKey, seed)
	defer secure.Zero(sum[:])

	km := new(KeyMaterial)
	copy(km.PrivateKey[:], sum[:KeyLength])
	copy(km.ChainCode[:], sum[KeyLength:])
	return km, nil
}

// ExtendedPrivateKey serializes the master key as a mainnet xprv
// string: version, depth, parent fingerprint and child number (all
// zero for a master key), chain code, and the 0x00-prefixed private
// key, framed with a Base58Check checksum. The payload is 78 bytes
// before the checksum.
func (k *KeyMaterial) ExtendedPrivateKey() string {
	var payload [78]byte
	copy(payload[0:4], xprvVersion[:])
	// Bytes 4..12 stay zero: depth, fingerprint, child number.
	copy(payload[13:45], k.ChainCode[:])
	payload[45] = 0x00
	copy(payload[46:78], k.PrivateKey[:])

	s := base58.CheckEncode(payload[:])
	secure.Zero(payload[:])
	return s
}

// WIF serializes the private key in Wallet Import Format: the 0x80
// mainnet version byte, the 32-byte key, and a Base58Check checksum.
// The compressed-key suffix byte 0x01 is deliberately not appended, so
// the result is an uncompressed-key WIF.
func (k *KeyMaterial) WIF() string {
	var payload [1 + KeyLength]byte
	payload[0] = wifVersion
	copy(payload[1:], k.PrivateKey[:])

	s := base58.CheckEncode(payload[:])
	secure.Zero(payload[:])
	return s
}

// Zero wipes the key material in place.
func (k *KeyMaterial) Zero() {
	secure.Zero(k.PrivateKey[:])
	secure.Zero(k.ChainCode[:])
}
