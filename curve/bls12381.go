package curve

import (
	"bytes"
	"math/big"

	"github.com/bnbchain/ptau-audit/common"
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// BLS12381 is the curve of the Zcash powers-of-tau ceremony.
type BLS12381 struct{}

var _ Curve[bls12381.G1Affine, bls12381.G2Affine] = BLS12381{}

func (BLS12381) Name() string { return "bls12-381" }

func (BLS12381) ScalarField() *big.Int { return ecc.BLS12_381.ScalarField() }

func (BLS12381) G1() Group[bls12381.G1Affine] { return bls12381G1{} }

func (BLS12381) G2() Group[bls12381.G2Affine] { return bls12381G2{} }

func (BLS12381) SameRatio(g1 Pair[bls12381.G1Affine], g2 Pair[bls12381.G2Affine]) bool {
	return common.SameRatioBLS12381(g1.A, g1.B, g2.B, g2.A)
}

func bls12381Scalars(s []big.Int) []fr.Element {
	res := make([]fr.Element, len(s))
	common.Parallelize(len(s), func(start, end int) {
		for i := start; i < end; i++ {
			res[i].SetBigInt(&s[i])
		}
	})
	return res
}

type bls12381G1 struct{}

func (bls12381G1) Generator() bls12381.G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

func (bls12381G1) Equal(a, b *bls12381.G1Affine) bool { return a.Equal(b) }

func (bls12381G1) Add(a, b *bls12381.G1Affine) bls12381.G1Affine {
	var sum, q bls12381.G1Jac
	sum.FromAffine(a)
	q.FromAffine(b)
	sum.AddAssign(&q)
	var res bls12381.G1Affine
	res.FromJacobian(&sum)
	return res
}

func (bls12381G1) ScalarMul(p *bls12381.G1Affine, s *big.Int) bls12381.G1Affine {
	var res bls12381.G1Affine
	res.ScalarMultiplication(p, s)
	return res
}

func (bls12381G1) MultiExp(points []bls12381.G1Affine, scalars []big.Int) (bls12381.G1Affine, error) {
	var res bls12381.G1Affine
	_, err := res.MultiExp(points, bls12381Scalars(scalars), ecc.MultiExpConfig{})
	return res, err
}

func (bls12381G1) PointSize(c Compression) int {
	if c == Compressed {
		return bls12381.SizeOfG1AffineCompressed
	}
	return bls12381.SizeOfG1AffineUncompressed
}

func (g bls12381G1) Decode(buf []byte, c Compression) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if err := checkSize(buf, g.PointSize(c)); err != nil {
		return p, err
	}
	dec := bls12381.NewDecoder(bytes.NewReader(buf), bls12381.NoSubgroupChecks())
	return p, decodePoint(dec, &p, len(buf))
}

func (bls12381G1) Validate(p *bls12381.G1Affine) error {
	if p.IsInfinity() {
		return ErrIdentityElement
	}
	if !p.IsOnCurve() {
		return errNotOnCurve
	}
	if !p.IsInSubGroup() {
		return ErrPointNotInSubgroup
	}
	return nil
}

func (bls12381G1) Encode(p *bls12381.G1Affine, c Compression) []byte {
	if c == Compressed {
		b := p.Bytes()
		return b[:]
	}
	b := p.RawBytes()
	return b[:]
}

type bls12381G2 struct{}

func (bls12381G2) Generator() bls12381.G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

func (bls12381G2) Equal(a, b *bls12381.G2Affine) bool { return a.Equal(b) }

func (bls12381G2) Add(a, b *bls12381.G2Affine) bls12381.G2Affine {
	var sum, q bls12381.G2Jac
	sum.FromAffine(a)
	q.FromAffine(b)
	sum.AddAssign(&q)
	var res bls12381.G2Affine
	res.FromJacobian(&sum)
	return res
}

func (bls12381G2) ScalarMul(p *bls12381.G2Affine, s *big.Int) bls12381.G2Affine {
	var res bls12381.G2Affine
	res.ScalarMultiplication(p, s)
	return res
}

func (bls12381G2) MultiExp(points []bls12381.G2Affine, scalars []big.Int) (bls12381.G2Affine, error) {
	var res bls12381.G2Affine
	_, err := res.MultiExp(points, bls12381Scalars(scalars), ecc.MultiExpConfig{})
	return res, err
}

func (bls12381G2) PointSize(c Compression) int {
	if c == Compressed {
		return bls12381.SizeOfG2AffineCompressed
	}
	return bls12381.SizeOfG2AffineUncompressed
}

func (g bls12381G2) Decode(buf []byte, c Compression) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	if err := checkSize(buf, g.PointSize(c)); err != nil {
		return p, err
	}
	dec := bls12381.NewDecoder(bytes.NewReader(buf), bls12381.NoSubgroupChecks())
	return p, decodePoint(dec, &p, len(buf))
}

func (bls12381G2) Validate(p *bls12381.G2Affine) error {
	if p.IsInfinity() {
		return ErrIdentityElement
	}
	if !p.IsOnCurve() {
		return errNotOnCurve
	}
	if !p.IsInSubGroup() {
		return ErrPointNotInSubgroup
	}
	return nil
}

func (bls12381G2) Encode(p *bls12381.G2Affine, c Compression) []byte {
	if c == Compressed {
		b := p.Bytes()
		return b[:]
	}
	b := p.RawBytes()
	return b[:]
}
