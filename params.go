// Package dilithium5 implements the core signing primitive of CRYSTALS-Dilithium
// at NIST security level 5 (the ML-DSA-87 parameter set of FIPS 204): key
// generation, signature production, and signature verification over the
// ring R_q = Z_q[X]/(X^256+1).
//
// Out of scope: embedded host bring-up (timers, RNG drivers, logging),
// timing comparisons against a C reference, and transport/certificate
// concerns. The expanders expandA/expandS/expandY draw their pseudorandom
// bytes through the prg.Counter interface in internal/prg, which has a
// SHAKE-256 and an AES-256-CTR backend; MakeKeys, Sign and Verify construct
// the SHAKE-256 backend.
package dilithium5

// Parameters for the Dilithium level-5 parameter set (K=8, L=7, η=2,
// γ1=2^19, γ2=(q-1)/32, τ=60, β=120, ω=75, d=13, q=8380417, N=256).
const (
	// n is the number of coefficients in a polynomial.
	n = 256

	// q is the ring modulus: q = 2^23 - 2^13 + 1.
	q = 8380417

	// qMinus1Half = (q-1)/2, the boundary used to center residues.
	qMinus1Half = (q - 1) / 2

	// d is the number of bits dropped from t by power2round.
	d = 13

	// k, l are the matrix dimensions of A (K rows, L columns).
	k = 8
	l = 7

	// eta bounds the coefficients of the secret vectors s1, s2.
	eta = 2

	// tau is the number of nonzero coefficients in the challenge polynomial c.
	tau = 60

	// beta = eta * tau, the bound used in the rejection tests of the signing loop.
	beta = eta * tau

	// gamma1 bounds the coefficients of the masking vector y.
	gamma1 = 1 << 19

	// gamma2 is used to decompose w into high/low bits.
	gamma2 = (q - 1) / 32

	// omega is the maximum number of true bits across the hint vector.
	omega = 75

	// lambda is the collision strength (in bits) of the challenge seed c~.
	lambda = 256
)

// SeedSize is the size in bytes of the keygen seed (ξ).
const SeedSize = 32

// Wire-format sizes for the public key, secret key, and signature.
const (
	rhoSize      = 32
	rhoPrimeSize = 64
	keySize      = 32
	trSize       = 32
	muSize       = 64

	t1PackedSize  = n * 10 / 8 // 320
	t0PackedSize  = n * 13 / 8 // 416
	etaPackedSize = n * 3 / 8  // 96, eta=2 packs to 3 bits/coeff
	zPackedSize   = n * 20 / 8 // 640, gamma1=2^19 packs to 20 bits/coeff
	w1PackedSize  = n * 4 / 8  // 128, w1 in [0,16) packs to 4 bits/coeff

	// PublicKeySize is the encoded size of a public key: rho || t1.
	PublicKeySize = rhoSize + k*t1PackedSize // 2592

	// SecretKeySize is the encoded size of a secret key:
	// rho || key || tr || s1 || s2 || t0.
	SecretKeySize = rhoSize + keySize + trSize + l*etaPackedSize + k*etaPackedSize + k*t0PackedSize // 4864

	hintPackedSize = omega + k // 83

	// SignatureSize is the encoded size of a signature: c~ || z || hint.
	SignatureSize = lambda/8 + l*zPackedSize + hintPackedSize // 4595
)
