package dilithium5

// PolyVector is a fixed-length sequence of polynomials sharing the same
// representation (Poly or NTTPoly). Go's generics do not let the length
// be a second type parameter alongside T,
// so PolyVector is backed by a slice whose length is fixed once by the
// package's own constructor (newVector) and never grown
// or shrunk afterwards — every exported entry point allocates vectors of
// the correct size (K or L) directly, so callers never observe a
// variable-length PolyVector.
type PolyVector[T ~[n]int32] []T

func newVector[T ~[n]int32](size int) PolyVector[T] {
	return make(PolyVector[T], size)
}

// intoNTTVector transforms every entry of v to NTT domain.
func intoNTTVector(v PolyVector[Poly]) PolyVector[NTTPoly] {
	out := newVector[NTTPoly](len(v))
	for i, p := range v {
		out[i] = intoNTT(p)
	}
	return out
}

// intoPlainVector transforms every entry of v out of NTT domain.
func intoPlainVector(v PolyVector[NTTPoly]) PolyVector[Poly] {
	out := newVector[Poly](len(v))
	for i, p := range v {
		out[i] = intoPlain(p)
	}
	return out
}

// addVectors adds two vectors of the same representation, entry by entry.
func addVectors[T ~[n]int32](a, b PolyVector[T]) PolyVector[T] {
	out := newVector[T](len(a))
	for i := range a {
		out[i] = polyAdd(a[i], b[i])
	}
	return out
}

// subVectors subtracts two vectors of the same representation, entry by
// entry.
func subVectors[T ~[n]int32](a, b PolyVector[T]) PolyVector[T] {
	out := newVector[T](len(a))
	for i := range a {
		out[i] = polySub(a[i], b[i])
	}
	return out
}

// reduce32NTTVector reduces every coefficient of every entry to (-q, q).
// Applied to NTT-domain vectors between a matrix-vector product and the
// inverse NTT, before the result is carried into plain domain.
func reduce32NTTVector(v PolyVector[NTTPoly]) PolyVector[NTTPoly] {
	out := newVector[NTTPoly](len(v))
	for i, p := range v {
		out[i] = p.reduce32()
	}
	return out
}

// reduce32Vector reduces every coefficient of every entry to (-q, q).
func reduce32Vector(v PolyVector[Poly]) PolyVector[Poly] {
	out := newVector[Poly](len(v))
	for i, p := range v {
		out[i] = p.reduce32()
	}
	return out
}

// caddqVector maps every coefficient of every entry to [0, q).
func caddqVector(v PolyVector[Poly]) PolyVector[Poly] {
	out := newVector[Poly](len(v))
	for i, p := range v {
		out[i] = p.caddq()
	}
	return out
}

// maxVector returns the largest |coefficient| across the whole vector.
func maxVector(v PolyVector[Poly]) int32 {
	var m int32
	for _, p := range v {
		if pm := p.max(); pm > m {
			m = pm
		}
	}
	return m
}

// decomposeVector splits every entry, returning the pair of low/high
// vectors.
func decomposeVector(v PolyVector[Poly]) (lo, hi PolyVector[Poly]) {
	lo = newVector[Poly](len(v))
	hi = newVector[Poly](len(v))
	for i, p := range v {
		lo[i], hi[i] = p.decompose()
	}
	return lo, hi
}

// power2RoundVector splits every entry, returning the pair of low/high
// vectors.
func power2RoundVector(v PolyVector[Poly]) (lo, hi PolyVector[Poly]) {
	lo = newVector[Poly](len(v))
	hi = newVector[Poly](len(v))
	for i, p := range v {
		lo[i], hi[i] = p.power2Round()
	}
	return lo, hi
}

// useHintVector recovers the corrected high bits for every entry of v given
// the matching hint vector.
func useHintVector(v PolyVector[Poly], hints []([n]bool)) PolyVector[Poly] {
	out := newVector[Poly](len(v))
	for i, p := range v {
		out[i] = p.useHint(hints[i])
	}
	return out
}

// shiftDVector left-shifts every coefficient of every entry by d.
func shiftDVector(v PolyVector[Poly]) PolyVector[Poly] {
	out := newVector[Poly](len(v))
	for i, p := range v {
		out[i] = p.shiftD()
	}
	return out
}

// scaleVector multiplies every entry of v by c in NTT domain.
func scaleVector(v PolyVector[NTTPoly], c NTTPoly) PolyVector[NTTPoly] {
	out := newVector[NTTPoly](len(v))
	for i, p := range v {
		out[i] = nttMul(p, c)
	}
	return out
}

// matrix is a row-major K*L matrix of NTT-domain polynomials: matrix[i*l+j]
// is row i, column j. Backed by a flat slice rather than a Vector of
// Vectors (a nested Vector<Vector<T,M>,N>) because Go's
// generics cannot express the nested fixed-size constraint directly; the
// access pattern (matVecMul) is the only place row/column indexing
// matters, and it indexes the flat slice with the same row-major row*L+col
// scheme throughout.
type matrix []NTTPoly

func (m matrix) at(row, col, cols int) NTTPoly {
	return m[row*cols+col]
}

// matVecMul computes A * y for A a K-by-L matrix (rows=K, cols=L) and y an
// L-length NTT vector, returning a K-length NTT vector.
func matVecMul(a matrix, rows, cols int, y PolyVector[NTTPoly]) PolyVector[NTTPoly] {
	out := newVector[NTTPoly](rows)
	for i := 0; i < rows; i++ {
		var acc NTTPoly
		for j := 0; j < cols; j++ {
			acc = polyAdd(acc, nttMul(a.at(i, j, cols), y[j]))
		}
		out[i] = acc
	}
	return out
}
