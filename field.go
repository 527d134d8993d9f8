package dilithium5

// Coefficient arithmetic. Coefficients are signed 32-bit integers, reduced
// on demand by reduce32/caddq rather than kept always-canonical, matching
// the centered representation that decompose, power2round, and the signing
// loop's infinity-norm checks all require.

// Montgomery form constants. R = 2^32.
const (
	// qInv = q^-1 mod 2^32, cast to signed 32-bit.
	qInv = 58728449
)

// reduceMontgomery reduces a 64-bit product to a * R^-1 mod q, landing in
// (-q, q).
func reduceMontgomery(x int64) int32 {
	t := int32(x * qInv)
	return int32((x - int64(t)*q) >> 32)
}

// reduce32 reduces n to (-q, q).
func reduce32(n int32) int32 {
	return n - ((n + (1 << 22)) >> 23)*q
}

// caddq conditionally adds q, landing in [0, q).
func caddq(n int32) int32 {
	return n + ((n >> 31) & q)
}

// power2Round splits n into (n0, n1) such that n = n1*2^d + n0 with
// n0 in (-2^(d-1), 2^(d-1)].
func power2Round(n int32) (n0, n1 int32) {
	n1 = (n + (1 << (d - 1)) - 1) >> d
	n0 = n - (n1 << d)
	return n0, n1
}

// decompose splits n into (n0, n1) such that n = n1*2*gamma2 + n0 over the
// centered representatives, with |n0| <= gamma2 and n1 in [0, 16).
func decompose(n int32) (n0, n1 int32) {
	n1 = (n + 127) >> 7
	n1 = (n1*1025 + (1 << 21)) >> 22
	n1 &= 15

	n0 = n - n1*2*gamma2
	n0 -= ((qMinus1Half - n0) >> 31) & q
	return n0, n1
}

// absCoeff returns |n| for n already reduced to (-q, q).
func absCoeff(n int32) int32 {
	return n - ((n >> 31) & (2 * n))
}

// polyAdd adds two polynomials coefficient-wise. T is either Poly or
// NTTPoly; addition is defined identically in both representations.
func polyAdd[T ~[n]int32](a, b T) (c T) {
	for i := range c {
		c[i] = a[i] + b[i]
	}
	return c
}

// polySub subtracts two polynomials coefficient-wise.
func polySub[T ~[n]int32](a, b T) (c T) {
	for i := range c {
		c[i] = a[i] - b[i]
	}
	return c
}
