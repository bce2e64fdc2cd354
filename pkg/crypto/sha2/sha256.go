// Package sha2 implements the SHA-256 and SHA-512 hash algorithms as
// defined in FIPS 180-4. Both digests implement hash.Hash and are the
// single hash implementation shared by the HMAC, PBKDF2, Base58Check
// and mnemonic checksum layers.
package sha2

import "hash"

const (
	// Size256 is the size of a SHA-256 digest in bytes.
	Size256 = 32

	// BlockSize256 is the SHA-256 message block size in bytes.
	BlockSize256 = 64
)

// First 32 bits of the fractional parts of the cube roots of the first
// 64 primes.
var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

type digest256 struct {
	h   [8]uint32
	x   [BlockSize256]byte
	nx  int
	len uint64
}

// New256 returns a new hash.Hash computing the SHA-256 checksum.
func New256() hash.Hash {
	d := new(digest256)
	d.Reset()
	return d
}

func (d *digest256) Reset() {
	// First 32 bits of the fractional parts of the square roots of the
	// first 8 primes.
	d.h = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	d.nx = 0
	d.len = 0
}

func (d *digest256) Size() int { return Size256 }

func (d *digest256) BlockSize() int { return BlockSize256 }

func (d *digest256) Write(p []byte) (int, error) {
	n := len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockSize256 {
			block256(d, d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	for len(p) >= BlockSize256 {
		block256(d, p[:BlockSize256])
		p = p[BlockSize256:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

func (d *digest256) Sum(in []byte) []byte {
	// Finalize a copy so the caller can keep writing.
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest256) checkSum() [Size256]byte {
	bitLen := d.len << 3

	var pad [BlockSize256 + 8]byte
	pad[0] = 0x80
	padLen := 56 - int(d.len%BlockSize256)
	if padLen <= 0 {
		padLen += BlockSize256
	}
	for i := 0; i < 8; i++ {
		pad[padLen+i] = byte(bitLen >> (56 - 8*i))
	}
	d.Write(pad[:padLen+8])

	var out [Size256]byte
	for i, v := range d.h {
		out[i*4] = byte(v >> 24)
		out[i*4+1] = byte(v >> 16)
		out[i*4+2] = byte(v >> 8)
		out[i*4+3] = byte(v)
	}
	return out
}

func block256(d *digest256, p []byte) {
	var w [64]uint32
	for t := 0; t < 16; t++ {
		w[t] = uint32(p[t*4])<<24 | uint32(p[t*4+1])<<16 | uint32(p[t*4+2])<<8 | uint32(p[t*4+3])
	}
	for t := 16; t < 64; t++ {
		w[t] = gamma1(w[t-2]) + w[t-7] + gamma0(w[t-15]) + w[t-16]
	}

	a, b, c, dd := d.h[0], d.h[1], d.h[2], d.h[3]
	e, f, g, h := d.h[4], d.h[5], d.h[6], d.h[7]

	for t := 0; t < 64; t++ {
		t1 := h + sigma1(e) + ch(e, f, g) + k256[t] + w[t]
		t2 := sigma0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = dd + t1
		dd = c
		c = b
		b = a
		a = t1 + t2
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
	d.h[5] += f
	d.h[6] += g
	d.h[7] += h
}

func rotr(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func sigma0(x uint32) uint32 { return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22) }
func sigma1(x uint32) uint32 { return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25) }
func gamma0(x uint32) uint32 { return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3) }
func gamma1(x uint32) uint32 { return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10) }

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	d := new(digest256)
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

// DoubleSum256 returns SHA-256(SHA-256(data)), the checksum hash used
// by Base58Check framing.
func DoubleSum256(data []byte) [Size256]byte {
	first := Sum256(data)
	return Sum256(first[:])
}
