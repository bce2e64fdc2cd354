package sha2

import "hash"

const (
	// Size512 is the size of a SHA-512 digest in bytes.
	Size512 = 64

	// BlockSize512 is the SHA-512 message block size in bytes.
	BlockSize512 = 128
)

// First 64 bits of the fractional parts of the cube roots of the first
// 80 primes.
var k512 = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

type digest512 struct {
	h   [8]uint64
	x   [BlockSize512]byte
	nx  int
	len uint64
}

// New512 returns a new hash.Hash computing the SHA-512 checksum.
func New512() hash.Hash {
	d := new(digest512)
	d.Reset()
	return d
}

func (d *digest512) Reset() {
	// First 64 bits of the fractional parts of the square roots of the
	// first 8 primes.
	d.h = [8]uint64{
		0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
		0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
		0x510e527fade682d1, 0x9b05688c2b3e6c1f,
		0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
	}
	d.nx = 0
	d.len = 0
}

func (d *digest512) Size() int { return Size512 }

func (d *digest512) BlockSize() int { return BlockSize512 }

func (d *digest512) Write(p []byte) (int, error) {
	n := len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockSize512 {
			block512(d, d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	for len(p) >= BlockSize512 {
		block512(d, p[:BlockSize512])
		p = p[BlockSize512:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

func (d *digest512) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest512) checkSum() [Size512]byte {
	// The length field is 128 bits; the high 64 are always zero for
	// inputs under 2^64 bits.
	bitLen := d.len << 3

	var pad [BlockSize512 + 16]byte
	pad[0] = 0x80
	padLen := 112 - int(d.len%BlockSize512)
	if padLen <= 0 {
		padLen += BlockSize512
	}
	for i := 0; i < 8; i++ {
		pad[padLen+8+i] = byte(bitLen >> (56 - 8*i))
	}
	d.Write(pad[:padLen+16])

	var out [Size512]byte
	for i, v := range d.h {
		out[i*8] = byte(v >> 56)
		out[i*8+1] = byte(v >> 48)
		out[i*8+2] = byte(v >> 40)
		out[i*8+3] = byte(v >> 32)
		out[i*8+4] = byte(v >> 24)
		out[i*8+5] = byte(v >> 16)
		out[i*8+6] = byte(v >> 8)
		out[i*8+7] = byte(v)
	}
	return out
}

func block512(d *digest512, p []byte) {
	var w [80]uint64
	for t := 0; t < 16; t++ {
		w[t] = uint64(p[t*8])<<56 | uint64(p[t*8+1])<<48 |
			uint64(p[t*8+2])<<40 | uint64(p[t*8+3])<<32 |
			uint64(p[t*8+4])<<24 | uint64(p[t*8+5])<<16 |
			uint64(p[t*8+6])<<8 | uint64(p[t*8+7])
	}
	for t := 16; t < 80; t++ {
		w[t] = gamma1x64(w[t-2]) + w[t-7] + gamma0x64(w[t-15]) + w[t-16]
	}

	a, b, c, dd := d.h[0], d.h[1], d.h[2], d.h[3]
	e, f, g, h := d.h[4], d.h[5], d.h[6], d.h[7]

	for t := 0; t < 80; t++ {
		t1 := h + sigma1x64(e) + ch64(e, f, g) + k512[t] + w[t]
		t2 := sigma0x64(a) + maj64(a, b, c)
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

func rotr64(x uint64, n uint) uint64 { return x>>n | x<<(64-n) }

func ch64(x, y, z uint64) uint64  { return (x & y) ^ (^x & z) }
func maj64(x, y, z uint64) uint64 { return (x & y) ^ (x & z) ^ (y & z) }

func sigma0x64(x uint64) uint64 { return rotr64(x, 28) ^ rotr64(x, 34) ^ rotr64(x, 39) }
func sigma1x64(x uint64) uint64 { return rotr64(x, 14) ^ rotr64(x, 18) ^ rotr64(x, 41) }
func gamma0x64(x uint64) uint64 { return rotr64(x, 1) ^ rotr64(x, 8) ^ (x >> 7) }
func gamma1x64(x uint64) uint64 { return rotr64(x, 19) ^ rotr64(x, 61) ^ (x >> 6) }

// Sum512 returns the SHA-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	d := new(digest512)
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
