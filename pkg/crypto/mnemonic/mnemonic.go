// Package mnemonic maps raw entropy to BIP-39 style mnemonic phrases
// and derives seeds from them.
package mnemonic

import (
	"fmt"
	"io"
	"strings"

	"github.com/seedkit/seedkit/pkg/crypto/pbkdf2"
	"github.com/seedkit/seedkit/pkg/crypto/sha2"
	"github.com/seedkit/seedkit/pkg/entropy"
	"github.com/seedkit/seedkit/pkg/wordlist"
)

const (
	// ChunkBits is the width of one word index.
	ChunkBits = 11

	// SeedIterations is the PBKDF2 iteration count fixed by BIP-39.
	SeedIterations = 2048

	// SeedLength is the derived seed length in bytes.
	SeedLength = 64

	// saltPrefix is prepended to the passphrase to form the PBKDF2
	// salt, per BIP-39.
	saltPrefix = "mnemonic"
)

// ChecksummedEntropy appends the checksum to entropy and returns the
// buffer together with its significant bit length.
//
// The checksum is the top entropy_bits/32 *bits* of SHA-256(entropy).
// For 128..224-bit entropy that is not a whole byte: the bits land in
// the high end of the final buffer byte and the remaining low bits
// stay zero. The resulting bit length (132, 165, 198, 231 or 264) is
// always divisible by ChunkBits.
func ChecksummedEntropy(ent []byte) ([]byte, int, error) {
	entropyBits := len(ent) * 8
	if !entropy.ValidBits(entropyBits) {
		return nil, 0, fmt.Errorf("invalid entropy length: %d bits, expected 128-256 in steps of 32", entropyBits)
	}

	checksumBits := entropyBits / 32
	totalBits := entropyBits + checksumBits

	hash := sha2.Sum256(ent)

	buf := make([]byte, (totalBits+7)/8)
	copy(buf, ent)
	// checksumBits is at most 8, so the checksum always fits in the
	// single byte following the entropy.
	mask := byte(0xff) << (8 - checksumBits)
	buf[len(ent)] = hash[0] & mask

	return buf, totalBits, nil
}

// SelectWords maps each successive big-endian ChunkBits-wide chunk of
// buf to a word. The index is reduced modulo the wordlist length — a
// deliberate tolerance for lists not sized to exactly 2048 entries,
// not part of BIP-39. bits must be divisible by ChunkBits.
func SelectWords(buf []byte, bits int, list *wordlist.List) ([]string, error) {
	if bits%ChunkBits != 0 {
		return nil, fmt.Errorf("bit length %d is not divisible by %d", bits, ChunkBits)
	}
	if bits > len(buf)*8 {
		return nil, fmt.Errorf("bit length %d exceeds buffer of %d bits", bits, len(buf)*8)
	}

	count := bits / ChunkBits
	words := make([]string, 0, count)
	for i := 0; i < count; i++ {
		v := 0
		for b := i * ChunkBits; b < (i+1)*ChunkBits; b++ {
			v <<= 1
			if buf[b>>3]&(0x80>>(b&7)) != 0 {
				v |= 1
			}
		}
		words = append(words, list.Word(v%list.Len()))
	}
	return words, nil
}

// Phrase is an ordered mnemonic word sequence.
type Phrase struct {
	words []string
}

// FromEntropy maps entropy to a phrase using list.
func FromEntropy(ent []byte, list *wordlist.List) (*Phrase, error) {
	buf, bits, err := ChecksummedEntropy(ent)
	if err != nil {
		return nil, err
	}
	words, err := SelectWords(buf, bits, list)
	if err != nil {
		return nil, err
	}
	return &Phrase{words: words}, nil
}

// Generate draws fresh entropy of the given bit size from the
// operating system RNG and maps it to a phrase.
func Generate(bits int, list *wordlist.List) (*Phrase, error) {
	return GenerateFrom(nil, bits, list)
}

// GenerateFrom is Generate with an injectable entropy source. A nil
// reader uses the operating system RNG. A source failure is returned
// as-is, never retried.
func GenerateFrom(r io.Reader, bits int, list *wordlist.List) (*Phrase, error) {
	if !entropy.ValidBits(bits) {
		return nil, fmt.Errorf("invalid entropy size: %d bits, expected 128-256 in steps of 32", bits)
	}

	var ent []byte
	var err error
	if r == nil {
		ent, err = entropy.Bytes(bits / 8)
	} else {
		ent, err = entropy.Read(r, bits/8)
	}
	if err != nil {
		return nil, err
	}

	return FromEntropy(ent, list)
}

// Words returns a copy of the phrase's words.
func (p *Phrase) Words() []string {
	out := make([]string, len(p.words))
	copy(out, p.words)
	return out
}

// WordCount returns the number of words in the phrase.
func (p *Phrase) WordCount() int { return len(p.words) }

// String joins the words with single spaces. Any line wrapping is a
// display concern, not part of the format.
func (p *Phrase) String() string { return strings.Join(p.words, " ") }

// Seed derives the 64-byte BIP-39 seed for a phrase and passphrase:
// PBKDF2-HMAC-SHA512 with 2048 iterations and salt
// "mnemonic"+passphrase.
func Seed(phrase, passphrase string) []byte {
	seed, err := pbkdf2.Key([]byte(phrase), []byte(saltPrefix+passphrase), SeedIterations, SeedLength)
	if err != nil {
		// Unreachable: iteration count and length are fixed constants.
		panic(err)
	}
	return seed
}
