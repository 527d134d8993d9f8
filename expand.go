package dilithium5

import (
	"crypto/sha3"

	"github.com/latticesig/dilithium5/internal/prg"
)

// expandA derives the public K-by-L matrix A in NTT domain by rejection
// sampling from ctr, reset per entry with nonce 256*i+j.
func expandA(ctr prg.Counter) matrix {
	a := make(matrix, k*l)
	var buf [3]byte
	for i := 0; i < k; i++ {
		for j := 0; j < l; j++ {
			ctr.Reset(uint16(256*i + j))
			var p NTTPoly
			count := 0
			for count < n {
				ctr.Squeeze(buf[:])
				v := int32(buf[0]) | int32(buf[1])<<8 | int32(buf[2]&0x7f)<<16
				if v < q {
					p[count] = v
					count++
				}
			}
			a[i*l+j] = p
		}
	}
	return a
}

// expandS derives size plain polynomials with coefficients in [-eta, eta]
// by rejection sampling from ctr, reset per entry with nonce start+i. Each
// byte yields two 4-bit samples (low nibble, then high nibble); a nibble
// >= 15 is rejected.
func expandS(ctr prg.Counter, start uint16, size int) PolyVector[Poly] {
	out := newVector[Poly](size)
	var b [1]byte
	for i := 0; i < size; i++ {
		ctr.Reset(start + uint16(i))
		var p Poly
		count := 0
		for count < n {
			ctr.Squeeze(b[:])
			for _, r := range [2]byte{b[0] & 0xf, b[0] >> 4} {
				if count == n {
					break
				}
				if r < 15 {
					p[count] = eta - int32(r)%(2*eta+1)
					count++
				}
			}
		}
		out[i] = p
	}
	return out
}

// expandY derives l plain polynomials with coefficients in (-gamma1, gamma1]
// from ctr, reset per entry with nonce l*nonce+j. gamma1 is a power of two
// here (2^19), so every 20-bit chunk read is in range and no rejection is
// needed: 2 coefficients are produced per 5 bytes, the same chunking as
// packZ/unpackZ.
func expandY(ctr prg.Counter, nonce uint16) PolyVector[Poly] {
	const mask = (1 << 20) - 1
	out := newVector[Poly](l)
	var buf [5 * n / 2]byte
	for j := 0; j < l; j++ {
		ctr.Reset(uint16(l)*nonce + uint16(j))
		ctr.Squeeze(buf[:])
		var p Poly
		for i := 0; i < n; i += 2 {
			o := i / 2 * 5
			x0 := int32(buf[o]) | int32(buf[o+1])<<8 | int32(buf[o+2])<<16
			x1 := int32(buf[o+2])>>4 | int32(buf[o+3])<<4 | int32(buf[o+4])<<12
			p[i] = gamma1 - (x0 & mask)
			p[i+1] = gamma1 - (x1 & mask)
		}
		out[j] = p
	}
	return out
}

// challenge derives the sparse challenge polynomial c with tau nonzero
// coefficients in {-1, 1} from a 32-byte seed, using a standalone XOF
// (not the nonce-reseedable Counter: a single absorb followed by a
// multi-squeeze pass over the seed).
func challenge(seed []byte) Poly {
	h := sha3.NewSHAKE256()
	h.Write(seed)

	var signBuf [8]byte
	h.Read(signBuf[:])
	var signBits uint64
	for i, b := range signBuf {
		signBits |= uint64(b) << (8 * i)
	}

	var c Poly
	var jBuf [1]byte
	for i := n - tau; i < n; i++ {
		var j int
		for {
			h.Read(jBuf[:])
			j = int(jBuf[0])
			if j <= i {
				break
			}
		}
		c[i] = c[j]
		if signBits&1 == 0 {
			c[j] = 1
		} else {
			c[j] = -1
		}
		signBits >>= 1
	}
	return c
}
