package dilithium5

import "errors"

// Sentinel errors surfaced by the package. Verify never returns an error —
// both structural and cryptographic signature rejection are reported as a
// plain false return.
var (
	// ErrShortSeed is returned by MakeKeys when the seed reader yields
	// fewer than SeedSize bytes.
	ErrShortSeed = errors.New("dilithium5: short seed")

	// ErrInvalidPublicKeySize is returned when parsing a public key of the
	// wrong length.
	ErrInvalidPublicKeySize = errors.New("dilithium5: invalid public key size")

	// ErrInvalidSecretKeySize is returned when parsing a secret key of the
	// wrong length.
	ErrInvalidSecretKeySize = errors.New("dilithium5: invalid secret key size")

	// ErrInvalidEtaEncoding is returned when an eta-packed polynomial
	// decodes a coefficient outside [-eta, eta].
	ErrInvalidEtaEncoding = errors.New("dilithium5: invalid eta encoding")
)
