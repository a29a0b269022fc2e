package common

import (
	"bytes"
	"io"
	"math/big"
	"sync/atomic"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestParallelize(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		for _, cpus := range []int{1, 3, 64} {
			hits := make([]int32, n)
			Parallelize(n, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			}, cpus)
			for i := range hits {
				require.Equal(t, int32(1), hits[i], "n=%d cpus=%d index %d", n, cpus, i)
			}
		}
	}
}

func TestHashReader(t *testing.T) {
	data := bytes.Repeat([]byte("powers of tau "), 1000)
	reader := NewHashReader(bytes.NewReader(data))

	head := make([]byte, 100)
	_, err := io.ReadFull(reader, head)
	require.NoError(t, err)
	assert.Equal(t, int64(100), reader.BytesRead())

	_, err = io.Copy(io.Discard, reader)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), reader.BytesRead())

	expected := blake2b.Sum512(data)
	assert.Equal(t, expected[:], reader.Sum())

	digest, err := Digest(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, expected[:], digest)

	empty := blake2b.Sum512(nil)
	assert.Equal(t, empty[:], NewHasher().Sum(nil))
}

func TestSameRatio(t *testing.T) {
	s := big.NewInt(123456789)

	_, _, g1, g2 := bn254.Generators()
	var sg1 bn254.G1Affine
	var sg2 bn254.G2Affine
	sg1.ScalarMultiplication(&g1, s)
	sg2.ScalarMultiplication(&g2, s)
	assert.True(t, SameRatio(g1, sg1, sg2, g2))
	assert.False(t, SameRatio(g1, sg1, g2, sg2))

	_, _, h1, h2 := bls12381.Generators()
	var sh1 bls12381.G1Affine
	var sh2 bls12381.G2Affine
	sh1.ScalarMultiplication(&h1, s)
	sh2.ScalarMultiplication(&h2, s)
	assert.True(t, SameRatioBLS12381(h1, sh1, sh2, h2))
	assert.False(t, SameRatioBLS12381(h1, sh1, h2, sh2))
}

func TestNewStream(t *testing.T) {
	read := func(seed []byte) []byte {
		stream, err := NewStream(seed)
		require.NoError(t, err)
		out := make([]byte, 1000)
		_, err = io.ReadFull(stream, out)
		require.NoError(t, err)
		return out
	}
	a := bytes.Repeat([]byte{1}, SeedSize)
	b := bytes.Repeat([]byte{2}, SeedSize)
	assert.Equal(t, read(a), read(a))
	assert.NotEqual(t, read(a), read(b))
}
