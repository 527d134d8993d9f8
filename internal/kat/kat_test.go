package kat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFixture = `count = 0
m = 48656c6c6f
pk = 0a0b
sk = 0c0d
sig = 0e0f
seed = 0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20
A = ([1,2,3], [4,5,6];
     [7,8,9], [10,11,12])
s = ([1,-1,0],
     [2,-2,0])
y = ([3,-3,0])
w1 = ([1,0,0])
w0 = ([0,1,0])
t1 = ([0,0,1])
t0 = ([1,1,1])
c = [1,-1,0,1,-1]

count = 1
m = 00
pk = ff
sk = ee
sig = dd
seed = 2021222324252627282930313233343536373839303132333435363738393a
A = ([1], [2];
     [3], [4])
s = ([1])
y = ([2])
w1 = ([3])
w0 = ([4])
t1 = ([5])
t0 = ([6])
c = [0]`

func TestParseFixtures(t *testing.T) {
	fixtures, err := ParseFixtures(sampleFixture)
	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	f0 := fixtures[0]
	require.Equal(t, 0, f0.Count)
	require.Equal(t, []byte("Hello"), f0.M)
	require.Equal(t, [][][]int32{{{1, 2, 3}, {4, 5, 6}}, {{7, 8, 9}, {10, 11, 12}}}, f0.A)
	require.Equal(t, [][]int32{{1, -1, 0}, {2, -2, 0}}, f0.S)
	require.Equal(t, [][]int32{{3, -3, 0}}, f0.Y)
	require.Equal(t, []int8{1, -1, 0, 1, -1}, f0.C)

	f1 := fixtures[1]
	require.Equal(t, 1, f1.Count)
	require.Equal(t, [][]int32{{6}}, f1.T0)
	require.Equal(t, []int8{0}, f1.C)
}

func TestParseFixturesEmpty(t *testing.T) {
	fixtures, err := ParseFixtures("")
	require.NoError(t, err)
	require.Nil(t, fixtures)
}

func TestParseFixturesRejectsMissingField(t *testing.T) {
	_, err := ParseFixtures("count = 0\nm = 00\n")
	require.Error(t, err)
}
