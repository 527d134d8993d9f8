package dilithium5

import (
	"crypto/sha3"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticesig/dilithium5/internal/kat"
	"github.com/latticesig/dilithium5/internal/prg"
)

const fixturesPath = "rsrc/fixtures.txt"

// loadFixtures skips the calling test when the NIST KAT fixtures bundle is
// not present in the working tree: it is not redistributed with this
// module and must be supplied separately (see DESIGN.md).
func loadFixtures(t *testing.T) []kat.Fixture {
	t.Helper()
	data, err := os.ReadFile(fixturesPath)
	if os.IsNotExist(err) {
		t.Skipf("skipping: %s not present", fixturesPath)
	}
	require.NoError(t, err)

	fixtures, err := kat.ParseFixtures(string(data))
	require.NoError(t, err)
	return fixtures
}

func TestFixtureFirstRecordEndToEnd(t *testing.T) {
	fixtures := loadFixtures(t)
	require.NotEmpty(t, fixtures)
	f := fixtures[0]
	require.Equal(t, 0, f.Count)

	h := sha3.NewSHAKE128()
	h.Write(leUint64(1))
	var seed [SeedSize]byte
	h.Read(seed[:])

	pk, sk, err := MakeKeys(newFixedReader(seed[:]))
	require.NoError(t, err)

	require.Equal(t, hashOf32(pk[:]), f.PK)
	require.Equal(t, hashOf32(sk[:]), f.SK)

	sig := Sign(f.M, &sk)
	require.Equal(t, hashOf32(sig[:]), f.Sig)
	require.True(t, Verify(f.M, &sig, &pk))
}

func TestFixtureHundredRecordsEndToEnd(t *testing.T) {
	fixtures := loadFixtures(t)
	for i, f := range fixtures {
		if i >= 100 {
			break
		}
		h := sha3.NewSHAKE128()
		h.Write(leUint64(uint64(3*i + 1)))
		var seed [SeedSize]byte
		h.Read(seed[:])

		pk, sk, err := MakeKeys(newFixedReader(seed[:]))
		require.NoError(t, err)

		sig := Sign(f.M, &sk)
		require.Truef(t, Verify(f.M, &sig, &pk), "record %d", f.Count)
	}
}

func TestFixtureExpandA(t *testing.T) {
	fixtures := loadFixtures(t)
	require.NotEmpty(t, fixtures)
	f := fixtures[0]

	var key [prg.KeySize]byte
	copy(key[:], f.Seed[:prg.KeySize])
	a := expandA(prg.NewShake(key))

	for i := 0; i < k; i++ {
		for j := 0; j < l; j++ {
			want := f.A[i][j]
			got := a.at(i, j, l)
			for c := 0; c < n; c++ {
				require.Equalf(t, want[c], got[c], "row %d col %d coeff %d", i, j, c)
			}
		}
	}
}

func TestFixtureExpandS(t *testing.T) {
	fixtures := loadFixtures(t)
	require.NotEmpty(t, fixtures)
	f := fixtures[0]

	var key [prg.KeySize]byte
	copy(key[:], f.Seed[:prg.KeySize])
	s := expandS(prg.NewShake(key), 0, l)

	for i := 0; i < l; i++ {
		for c := 0; c < n; c++ {
			require.Equalf(t, f.S[i][c], s[i][c], "poly %d coeff %d", i, c)
		}
	}
}

func TestFixtureExpandY(t *testing.T) {
	fixtures := loadFixtures(t)
	require.NotEmpty(t, fixtures)
	f := fixtures[0]

	var key [prg.KeySize]byte
	copy(key[:], f.Seed[:prg.KeySize])
	y := expandY(prg.NewShake(key), 0)

	for i := 0; i < l; i++ {
		for c := 0; c < n; c++ {
			require.Equalf(t, f.Y[i][c], y[i][c], "poly %d coeff %d", i, c)
		}
	}
}

func TestFixtureWAndChallenge(t *testing.T) {
	fixtures := loadFixtures(t)
	require.NotEmpty(t, fixtures)
	f := fixtures[0]

	yNtt := newVector[NTTPoly](l)
	for j := 0; j < l; j++ {
		var p Poly
		for c := range p {
			p[c] = f.Y[j][c]
		}
		yNtt[j] = intoNTT(p)
	}

	a := make(matrix, k*l)
	for i := 0; i < k; i++ {
		for j := 0; j < l; j++ {
			var p NTTPoly
			for c := range p {
				p[c] = f.A[i][j][c]
			}
			a[i*l+j] = p
		}
	}

	w := matVecMul(a, k, l, yNtt)
	w = reduce32NTTVector(w)
	wPlain := caddqVector(intoPlainVector(w))
	w0, w1 := decomposeVector(wPlain)
	t0, t1 := power2RoundVector(wPlain)

	for i := 0; i < k; i++ {
		for c := 0; c < n; c++ {
			require.Equalf(t, f.W0[i][c], w0[i][c], "w0 poly %d coeff %d", i, c)
			require.Equalf(t, f.W1[i][c], w1[i][c], "w1 poly %d coeff %d", i, c)
			require.Equalf(t, f.T0[i][c], t0[i][c], "t0 poly %d coeff %d", i, c)
			require.Equalf(t, f.T1[i][c], t1[i][c], "t1 poly %d coeff %d", i, c)
		}
	}

	var key [prg.KeySize]byte
	copy(key[:], f.Seed[:prg.KeySize])
	c := challenge(f.Seed[:32])
	for i := range c {
		require.Equalf(t, int32(f.C[i]), c[i], "challenge coeff %d", i)
	}
}

func hashOf32(b []byte) []byte {
	h := sha3.NewSHAKE256()
	h.Write(b)
	var out [32]byte
	h.Read(out[:])
	return out[:]
}

func leUint64(x uint64) []byte {
	var b [8]byte
	for i := range b {
		b[i] = byte(x >> (8 * i))
	}
	return b[:]
}

type fixedReader struct {
	data []byte
}

func newFixedReader(data []byte) *fixedReader {
	return &fixedReader{data: data}
}

func (r *fixedReader) Read(p []byte) (int, error) {
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}
