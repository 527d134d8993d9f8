package dilithium5

import (
	"crypto/sha3"
	"io"

	"github.com/latticesig/dilithium5/internal/prg"
)

// MakeKeys generates a public/secret key pair from a 32-byte seed read off
// seed.
func MakeKeys(seed io.Reader) (pk [PublicKeySize]byte, sk [SecretKeySize]byte, err error) {
	var xi [SeedSize]byte
	if _, err = io.ReadFull(seed, xi[:]); err != nil {
		return pk, sk, ErrShortSeed
	}

	h := sha3.NewSHAKE256()
	h.Write(xi[:])
	var expanded [rhoSize + rhoPrimeSize + keySize]byte
	h.Read(expanded[:])
	rho := expanded[:rhoSize]
	rhoPrime := expanded[rhoSize : rhoSize+rhoPrimeSize]
	key := expanded[rhoSize+rhoPrimeSize:]

	var rhoKey, rhoPrimeKey [prg.KeySize]byte
	copy(rhoKey[:], rho)
	copy(rhoPrimeKey[:], rhoPrime[:prg.KeySize])

	a := expandA(prg.NewShake(rhoKey))

	sCtr := prg.NewShake(rhoPrimeKey)
	s1 := expandS(sCtr, 0, l)
	s2 := expandS(sCtr, l, k)

	t := matVecMul(a, k, l, intoNTTVector(s1))
	t = reduce32NTTVector(t)
	tPlain := addVectors(intoPlainVector(t), s2)
	tPlain = caddqVector(tPlain)

	t0, t1 := power2RoundVector(tPlain)

	copy(pk[:rhoSize], rho)
	o := rhoSize
	for _, p := range t1 {
		copy(pk[o:], packT1(p))
		o += t1PackedSize
	}

	var tr [trSize]byte
	h.Reset()
	h.Write(pk[:])
	h.Read(tr[:])

	o = 0
	copy(sk[o:], rho)
	o += rhoSize
	copy(sk[o:], key)
	o += keySize
	copy(sk[o:], tr[:])
	o += trSize
	for _, p := range s1 {
		copy(sk[o:], packEta(p))
		o += etaPackedSize
	}
	for _, p := range s2 {
		copy(sk[o:], packEta(p))
		o += etaPackedSize
	}
	for _, p := range t0 {
		copy(sk[o:], packT0(p))
		o += t0PackedSize
	}

	return pk, sk, nil
}

// unpackSecretKey splits an encoded secret key into its component vectors.
func unpackSecretKey(sk *[SecretKeySize]byte) (rho []byte, key []byte, tr []byte, s1, s2, t0 PolyVector[Poly]) {
	rho = sk[0:rhoSize]
	o := rhoSize
	key = sk[o : o+keySize]
	o += keySize
	tr = sk[o : o+trSize]
	o += trSize

	s1 = newVector[Poly](l)
	for i := range s1 {
		s1[i], _ = unpackEta(sk[o : o+etaPackedSize])
		o += etaPackedSize
	}
	s2 = newVector[Poly](k)
	for i := range s2 {
		s2[i], _ = unpackEta(sk[o : o+etaPackedSize])
		o += etaPackedSize
	}
	t0 = newVector[Poly](k)
	for i := range t0 {
		t0[i] = unpackT0(sk[o : o+t0PackedSize])
		o += t0PackedSize
	}
	return rho, key, tr, s1, s2, t0
}

// Sign produces a deterministic signature over msg under sk, running the
// Fiat-Shamir sign-with-aborts loop until a candidate signature satisfies
// every rejection bound.
func Sign(msg []byte, sk *[SecretKeySize]byte) [SignatureSize]byte {
	rho, key, tr, s1, s2, t0 := unpackSecretKey(sk)

	s1Ntt := intoNTTVector(s1)
	s2Ntt := intoNTTVector(s2)
	t0Ntt := intoNTTVector(t0)

	var rhoKey [prg.KeySize]byte
	copy(rhoKey[:], rho)
	a := expandA(prg.NewShake(rhoKey))

	h := sha3.NewSHAKE256()
	h.Write(tr)
	h.Write(msg)
	var mu [muSize]byte
	h.Read(mu[:])

	h.Reset()
	h.Write(key)
	h.Write(mu[:])
	var rhoPrime2 [rhoPrimeSize]byte
	h.Read(rhoPrime2[:])

	var yKey [prg.KeySize]byte
	copy(yKey[:], rhoPrime2[:prg.KeySize])
	yCtr := prg.NewShake(yKey)

	for kappa := uint16(0); ; kappa++ {
		y := expandY(yCtr, kappa)

		w := matVecMul(a, k, l, intoNTTVector(y))
		w = reduce32NTTVector(w)
		wPlain := caddqVector(intoPlainVector(w))
		w0, w1 := decomposeVector(wPlain)

		h.Reset()
		h.Write(mu[:])
		for _, p := range w1 {
			h.Write(packW1(p))
		}
		var cTilde [32]byte
		h.Read(cTilde[:])

		c := intoNTT(challenge(cTilde[:]))

		z := addVectors(intoPlainVector(scaleVector(s1Ntt, c)), y)
		z = reduce32Vector(z)
		if maxVector(z) >= gamma1-beta {
			continue
		}

		r0 := subVectors(w0, intoPlainVector(scaleVector(s2Ntt, c)))
		r0 = reduce32Vector(r0)
		if maxVector(r0) >= gamma2-beta {
			continue
		}

		ct0 := intoPlainVector(scaleVector(t0Ntt, c))
		ct0 = reduce32Vector(ct0)
		if maxVector(ct0) >= gamma2 {
			continue
		}

		low0 := addVectors(r0, ct0)
		hints := make([]([n]bool), k)
		ones := 0
		for i := range hints {
			var cnt int
			hints[i], cnt = makeHint(low0[i], w1[i])
			ones += cnt
		}
		if ones > omega {
			continue
		}

		var sig [SignatureSize]byte
		o := 0
		copy(sig[o:], cTilde[:])
		o += 32
		for _, p := range z {
			copy(sig[o:], packZ(p))
			o += zPackedSize
		}
		copy(sig[o:], packHint(hints))
		return sig
	}
}

// Verify reports whether sig is a valid signature over msg under pk.
func Verify(msg []byte, sig *[SignatureSize]byte, pk *[PublicKeySize]byte) bool {
	rho := pk[0:rhoSize]
	t1 := newVector[Poly](k)
	o := rhoSize
	for i := range t1 {
		t1[i] = unpackT1(pk[o : o+t1PackedSize])
		o += t1PackedSize
	}

	cTilde := sig[0:32]
	z := newVector[Poly](l)
	o = 32
	for i := range z {
		z[i] = unpackZ(sig[o : o+zPackedSize])
		o += zPackedSize
	}
	if maxVector(z) >= gamma1-beta {
		return false
	}

	hints, ok := unpackHint(sig[o:])
	if !ok {
		return false
	}

	var rhoKey [prg.KeySize]byte
	copy(rhoKey[:], rho)
	a := expandA(prg.NewShake(rhoKey))

	h := sha3.NewSHAKE256()
	h.Write(pk[:])
	var tr [trSize]byte
	h.Read(tr[:])

	h.Reset()
	h.Write(tr[:])
	h.Write(msg)
	var mu [muSize]byte
	h.Read(mu[:])

	c := intoNTT(challenge(cTilde))

	az := matVecMul(a, k, l, intoNTTVector(z))
	ct1 := scaleVector(intoNTTVector(shiftDVector(t1)), c)
	w := subVectors(az, ct1)
	w = reduce32NTTVector(w)
	wPlain := caddqVector(intoPlainVector(w))
	w1 := useHintVector(wPlain, hints)

	h.Reset()
	h.Write(mu[:])
	for _, p := range w1 {
		h.Write(packW1(p))
	}
	var cTildeCheck [32]byte
	h.Read(cTildeCheck[:])

	var diff byte
	for i := range cTilde {
		diff |= cTilde[i] ^ cTildeCheck[i]
	}
	return diff == 0
}
