package curve

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSameRatio[G1, G2 any](t *testing.T, c Curve[G1, G2]) {
	g1, g2 := c.G1().Generator(), c.G2().Generator()
	x, y := big.NewInt(12345), big.NewInt(777)

	xG1 := c.G1().ScalarMul(&g1, x)
	xG2 := c.G2().ScalarMul(&g2, x)
	yG2 := c.G2().ScalarMul(&g2, y)

	assert.True(t, c.SameRatio(Pair[G1]{g1, xG1}, Pair[G2]{g2, xG2}))
	assert.True(t, c.SameRatio(Pair[G1]{xG1, g1}, Pair[G2]{xG2, g2}))
	assert.False(t, c.SameRatio(Pair[G1]{g1, xG1}, Pair[G2]{g2, yG2}))
	assert.False(t, c.SameRatio(Pair[G1]{g1, xG1}, Pair[G2]{xG2, g2}))
}

func testMultiExp[G1, G2 any](t *testing.T, c Curve[G1, G2]) {
	g1 := c.G1().Generator()
	points := []G1{
		c.G1().ScalarMul(&g1, big.NewInt(2)),
		c.G1().ScalarMul(&g1, big.NewInt(3)),
		c.G1().ScalarMul(&g1, big.NewInt(5)),
	}
	scalars := []big.Int{*big.NewInt(7), *big.NewInt(11), *big.NewInt(13)}
	res, err := c.G1().MultiExp(points, scalars)
	require.NoError(t, err)

	// 2·7 + 3·11 + 5·13 = 112
	want := c.G1().ScalarMul(&g1, big.NewInt(112))
	assert.True(t, c.G1().Equal(&res, &want))

	sum := c.G1().Add(&points[0], &points[2])
	want = c.G1().ScalarMul(&g1, big.NewInt(7))
	assert.True(t, c.G1().Equal(&sum, &want))
}

func testCodec[G1, G2 any](t *testing.T, c Curve[G1, G2]) {
	g2 := c.G2().Generator()
	p := c.G2().ScalarMul(&g2, big.NewInt(99))
	for _, mode := range []Compression{Compressed, Uncompressed} {
		buf := c.G2().Encode(&p, mode)
		require.Len(t, buf, c.G2().PointSize(mode))
		q, err := c.G2().Decode(buf, mode)
		require.NoError(t, err)
		assert.True(t, c.G2().Equal(&p, &q))
		require.NoError(t, c.G2().Validate(&q))

		_, err = c.G2().Decode(buf[1:], mode)
		assert.ErrorIs(t, err, ErrMalformedEncoding)
	}
}

func TestBN254(t *testing.T) {
	var c Curve[bn254.G1Affine, bn254.G2Affine] = BN254{}
	assert.Equal(t, "bn254", c.Name())
	testSameRatio(t, c)
	testMultiExp(t, c)
	testCodec(t, c)
}

func TestBLS12381(t *testing.T) {
	var c Curve[bls12381.G1Affine, bls12381.G2Affine] = BLS12381{}
	assert.Equal(t, "bls12-381", c.Name())
	testSameRatio(t, c)
	testMultiExp(t, c)
	testCodec(t, c)
}

func TestBN254Infinity(t *testing.T) {
	g := BN254{}.G1()
	var inf bn254.G1Affine
	for _, mode := range []Compression{Compressed, Uncompressed} {
		buf := g.Encode(&inf, mode)
		p, err := g.Decode(buf, mode)
		require.NoError(t, err)
		assert.True(t, p.IsInfinity())
		assert.ErrorIs(t, g.Validate(&p), ErrIdentityElement)
	}
}

func TestDecodeRejectsOtherMode(t *testing.T) {
	g := BLS12381{}.G1()
	gen := g.Generator()
	compressed := g.Encode(&gen, Compressed)
	// a compressed point padded to the uncompressed width
	padded := append(compressed, make([]byte, len(compressed))...)
	_, err := g.Decode(padded, Uncompressed)
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}
