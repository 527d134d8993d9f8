package dilithium5

// Poly is a polynomial in Z_q[X]/(X^256+1), coefficients in standard
// (non-Montgomery, non-NTT) form.
type Poly [n]int32

// NTTPoly is the NTT-domain representation of a polynomial: evaluations at
// the 256th roots of unity mod q, coefficients in Montgomery form. Poly and
// NTTPoly are distinct named types so that pointwise multiplication (only
// meaningful in NTT domain) cannot be applied to a Poly by accident;
// addition and subtraction are defined on both via the generic helpers in
// field.go.
type NTTPoly [n]int32

// zetas holds the precomputed Montgomery-form powers of the primitive
// 512th root of unity used by the NTT butterflies. zetas[k] = 1753^br(k) * R
// mod q, for the bit-reversal permutation br, k = 0..255.
var zetas = [n]int32{
	4193792, 25847, 5771523, 7861508, 237124, 7602457, 7504169, 466468,
	1826347, 2353451, 8021166, 6288512, 3119733, 5495562, 3111497, 2680103,
	2725464, 1024112, 7300517, 3585928, 7830929, 7260833, 2619752, 6271868,
	6262231, 4520680, 6980856, 5102745, 1757237, 8360995, 4010497, 280005,
	2706023, 95776, 3077325, 3530437, 6718724, 4788269, 5842901, 3915439,
	4519302, 5336701, 3574422, 5512770, 3539968, 8079950, 2348700, 7841118,
	6681150, 6736599, 3505694, 4558682, 3507263, 6239768, 6779997, 3699596,
	811944, 531354, 954230, 3881043, 3900724, 5823537, 2071892, 5582638,
	4450022, 6851714, 4702672, 5339162, 6927966, 3475950, 2176455, 6795196,
	7122806, 1939314, 4296819, 7380215, 5190273, 5223087, 4747489, 126922,
	3412210, 7396998, 2147896, 2715295, 5412772, 4686924, 7969390, 5903370,
	7709315, 7151892, 8357436, 7072248, 7998430, 1349076, 1852771, 6949987,
	5037034, 264944, 508951, 3097992, 44288, 7280319, 904516, 3958618,
	4656075, 8371839, 1653064, 5130689, 2389356, 8169440, 759969, 7063561,
	189548, 4827145, 3159746, 6529015, 5971092, 8202977, 1315589, 1341330,
	1285669, 6795489, 7567685, 6940675, 5361315, 4499357, 4751448, 3839961,
	2091667, 3407706, 2316500, 3817976, 5037939, 2244091, 5933984, 4817955,
	266997, 2434439, 7144689, 3513181, 4860065, 4621053, 7183191, 5187039,
	900702, 1859098, 909542, 819034, 495491, 6767243, 8337157, 7857917,
	7725090, 5257975, 2031748, 3207046, 4823422, 7855319, 7611795, 4784579,
	342297, 286988, 5942594, 4108315, 3437287, 5038140, 1735879, 203044,
	2842341, 2691481, 5790267, 1265009, 4055324, 1247620, 2486353, 1595974,
	4613401, 1250494, 2635921, 4832145, 5386378, 1869119, 1903435, 7329447,
	7047359, 1237275, 5062207, 6950192, 7929317, 1312455, 3306115, 6417775,
	7100756, 1917081, 5834105, 7005614, 1500165, 777191, 2235880, 3406031,
	7838005, 5548557, 6709241, 6533464, 5796124, 4656147, 594136, 4603424,
	6366809, 2432395, 2454455, 8215696, 1957272, 3369112, 185531, 7173032,
	5196991, 162844, 1616392, 3014001, 810149, 1652634, 4686184, 6581310,
	5341501, 3523897, 3866901, 269760, 2213111, 7404533, 1717735, 472078,
	7953734, 1723600, 6577327, 1910376, 6712985, 7276084, 8119771, 4546524,
	5441381, 6144432, 7959518, 6094090, 183443, 7403526, 1612842, 4834730,
	7826001, 3919660, 8332111, 7018208, 3937738, 1400424, 7534263, 1976782,
}

// invNScale is f = 41978, the Montgomery-form constant by which invNTT
// scales every coefficient at the end, absorbing both the 1/N factor and
// the R normalization.
const invNScale = 41978

// intoNTT performs the forward Number-Theoretic Transform (Cooley-Tukey,
// decimation in time).
func intoNTT(f Poly) NTTPoly {
	k := 1
	for chunkSize := 128; chunkSize >= 1; chunkSize /= 2 {
		for start := 0; start < n; start += 2 * chunkSize {
			zeta := int64(zetas[k])
			k++
			lo := f[start : start+chunkSize]
			hi := f[start+chunkSize : start+2*chunkSize]
			for j := 0; j < chunkSize; j++ {
				t := reduceMontgomery(int64(hi[j]) * zeta)
				hi[j] = lo[j] - t
				lo[j] = lo[j] + t
			}
		}
	}
	return NTTPoly(f)
}

// intoPlain performs the inverse Number-Theoretic Transform
// (Gentleman-Sande, decimation in frequency).
func intoPlain(f NTTPoly) Poly {
	k := n - 1
	for chunkSize := 1; chunkSize < n; chunkSize *= 2 {
		for start := 0; start < n; start += 2 * chunkSize {
			zeta := int64(-zetas[k])
			k--
			lo := f[start : start+chunkSize]
			hi := f[start+chunkSize : start+2*chunkSize]
			for j := 0; j < chunkSize; j++ {
				t := lo[j]
				lo[j] = t + hi[j]
				hi[j] = reduceMontgomery(int64(t-hi[j]) * zeta)
			}
		}
	}
	for i := range f {
		f[i] = reduceMontgomery(int64(f[i]) * invNScale)
	}
	return Poly(f)
}

// nttMul performs coefficient-wise multiplication of two NTT-domain
// polynomials via Montgomery reduction. Only defined in NTT domain.
func nttMul(a, b NTTPoly) NTTPoly {
	var c NTTPoly
	for i := range c {
		c[i] = reduceMontgomery(int64(a[i]) * int64(b[i]))
	}
	return c
}

// shiftD left-shifts every coefficient by d, used to recover 2^d*t1 before
// transforming it to NTT domain during verification.
func (f Poly) shiftD() Poly {
	var out Poly
	for i := range f {
		out[i] = f[i] << d
	}
	return out
}

// reduce32 reduces every coefficient of f to (-q, q).
func (f Poly) reduce32() Poly {
	var out Poly
	for i := range f {
		out[i] = reduce32(f[i])
	}
	return out
}

// reduce32 reduces every coefficient of f to (-q, q).
func (f NTTPoly) reduce32() NTTPoly {
	var out NTTPoly
	for i := range f {
		out[i] = reduce32(f[i])
	}
	return out
}

// caddq maps every coefficient of f to [0, q).
func (f Poly) caddq() Poly {
	var out Poly
	for i := range f {
		out[i] = caddq(f[i])
	}
	return out
}

// max returns the largest |coefficient| across f's centered representatives.
func (f Poly) max() int32 {
	var m int32
	for _, c := range f {
		if v := absCoeff(c); v > m {
			m = v
		}
	}
	return m
}

// decompose splits every coefficient of f, returning the pair of low/high
// polynomials.
func (f Poly) decompose() (f0, f1 Poly) {
	for i, c := range f {
		f0[i], f1[i] = decompose(c)
	}
	return f0, f1
}

// power2Round splits every coefficient of f, returning the pair of
// low/high polynomials.
func (f Poly) power2Round() (f0, f1 Poly) {
	for i, c := range f {
		f0[i], f1[i] = power2Round(c)
	}
	return f0, f1
}

// useHint recovers the corrected high bits of f given a per-coefficient
// hint.
func (f Poly) useHint(hint [n]bool) Poly {
	var out Poly
	for i, c := range f {
		a0, a1 := decompose(c)
		if hint[i] {
			if a0 > 0 {
				a1 = (a1 + 1) & 15
			} else {
				a1 = (a1 - 1) & 15
			}
		}
		out[i] = a1
	}
	return out
}

// makeHint computes the hint vector from low0, the adjusted low-order part
// -c*t0 + w0, and high1, the already-decomposed high bits of w. Per
// coefficient: h[i] = !(-gamma2 < low0[i] < gamma2) || (low0[i] == -gamma2
// && high1[i] != 0).
func makeHint(low0, high1 Poly) (hint [n]bool, count int) {
	for i := range low0 {
		v := low0[i]
		set := v > gamma2 || v < -gamma2 || (v == -gamma2 && high1[i] != 0)
		if set {
			hint[i] = true
			count++
		}
	}
	return hint, count
}
