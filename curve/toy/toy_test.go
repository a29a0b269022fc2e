package toy

import (
	"math/big"
	"testing"

	"github.com/bnbchain/ptau-audit/curve"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameRatio(t *testing.T) {
	c := Curve{}
	assert.True(t, c.SameRatio(curve.Pair[G1]{A: NewG1(3), B: NewG1(15)}, curve.Pair[G2]{A: NewG2(3), B: NewG2(15)}))
	assert.True(t, c.SameRatio(curve.Pair[G1]{A: NewG1(1), B: NewG1(5)}, curve.Pair[G2]{A: NewG2(3), B: NewG2(15)}))
	assert.False(t, c.SameRatio(curve.Pair[G1]{A: NewG1(3), B: NewG1(18)}, curve.Pair[G2]{A: NewG2(3), B: NewG2(15)}))
}

func TestGroup(t *testing.T) {
	g := Curve{}.G1()
	gen := g.Generator()
	assert.Equal(t, int64(1), Value(gen).Int64())

	p := g.ScalarMul(&gen, big.NewInt(42))
	assert.Equal(t, int64(42), Value(p).Int64())

	sum, err := g.MultiExp([]G1{NewG1(2), NewG1(3)}, []big.Int{*big.NewInt(10), *big.NewInt(100)})
	require.NoError(t, err)
	assert.Equal(t, int64(320), Value(sum).Int64())

	a, b := NewG1(20), NewG1(22)
	assert.Equal(t, int64(42), Value(g.Add(&a, &b)).Int64())

	_, err = g.MultiExp([]G1{NewG1(2)}, nil)
	assert.Error(t, err)
}

func TestCodec(t *testing.T) {
	g := Curve{}.G2()
	p := NewG2(123456789)
	for _, mode := range []curve.Compression{curve.Compressed, curve.Uncompressed} {
		buf := g.Encode(&p, mode)
		require.Len(t, buf, g.PointSize(mode))
		q, err := g.Decode(buf, mode)
		require.NoError(t, err)
		assert.True(t, g.Equal(&p, &q))
	}

	buf := g.Encode(&p, curve.Uncompressed)
	buf[len(buf)-1] ^= 1
	_, err := g.Decode(buf, curve.Uncompressed)
	assert.ErrorIs(t, err, curve.ErrMalformedEncoding)

	tooLarge := fr.Modulus().FillBytes(make([]byte, fr.Bytes))
	_, err = g.Decode(tooLarge, curve.Compressed)
	assert.ErrorIs(t, err, curve.ErrMalformedEncoding)

	zero := NewG2(0)
	assert.ErrorIs(t, g.Validate(&zero), curve.ErrIdentityElement)
	assert.NoError(t, g.Validate(&p))
}
