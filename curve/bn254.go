package curve

import (
	"bytes"
	"math/big"

	"github.com/bnbchain/ptau-audit/common"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// bn254 uses the same flag for the point at infinity in both modes
const bn254Infinity byte = 0b01 << 6

// BN254 is the curve of the perpetual powers-of-tau ceremony.
type BN254 struct{}

var _ Curve[bn254.G1Affine, bn254.G2Affine] = BN254{}

func (BN254) Name() string { return "bn254" }

func (BN254) ScalarField() *big.Int { return ecc.BN254.ScalarField() }

func (BN254) G1() Group[bn254.G1Affine] { return bn254G1{} }

func (BN254) G2() Group[bn254.G2Affine] { return bn254G2{} }

func (BN254) SameRatio(g1 Pair[bn254.G1Affine], g2 Pair[bn254.G2Affine]) bool {
	return common.SameRatio(g1.A, g1.B, g2.B, g2.A)
}

func bn254Scalars(s []big.Int) []fr.Element {
	res := make([]fr.Element, len(s))
	common.Parallelize(len(s), func(start, end int) {
		for i := start; i < end; i++ {
			res[i].SetBigInt(&s[i])
		}
	})
	return res
}

type bn254G1 struct{}

func (bn254G1) Generator() bn254.G1Affine {
	_, _, g1, _ := bn254.Generators()
	return g1
}

func (bn254G1) Equal(a, b *bn254.G1Affine) bool { return a.Equal(b) }

func (bn254G1) Add(a, b *bn254.G1Affine) bn254.G1Affine {
	var sum, q bn254.G1Jac
	sum.FromAffine(a)
	q.FromAffine(b)
	sum.AddAssign(&q)
	var res bn254.G1Affine
	res.FromJacobian(&sum)
	return res
}

func (bn254G1) ScalarMul(p *bn254.G1Affine, s *big.Int) bn254.G1Affine {
	var res bn254.G1Affine
	res.ScalarMultiplication(p, s)
	return res
}

func (bn254G1) MultiExp(points []bn254.G1Affine, scalars []big.Int) (bn254.G1Affine, error) {
	var res bn254.G1Affine
	_, err := res.MultiExp(points, bn254Scalars(scalars), ecc.MultiExpConfig{})
	return res, err
}

func (bn254G1) PointSize(c Compression) int {
	if c == Compressed {
		return bn254.SizeOfG1AffineCompressed
	}
	return bn254.SizeOfG1AffineUncompressed
}

func (g bn254G1) Decode(buf []byte, c Compression) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if err := checkSize(buf, g.PointSize(c)); err != nil {
		return p, err
	}
	if isFlaggedZero(buf, bn254Infinity) {
		return p, nil
	}
	dec := bn254.NewDecoder(bytes.NewReader(buf), bn254.NoSubgroupChecks())
	return p, decodePoint(dec, &p, len(buf))
}

func (bn254G1) Validate(p *bn254.G1Affine) error {
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

func (bn254G1) Encode(p *bn254.G1Affine, c Compression) []byte {
	if c == Compressed {
		b := p.Bytes()
		return b[:]
	}
	b := p.RawBytes()
	return b[:]
}

type bn254G2 struct{}

func (bn254G2) Generator() bn254.G2Affine {
	_, _, _, g2 := bn254.Generators()
	return g2
}

func (bn254G2) Equal(a, b *bn254.G2Affine) bool { return a.Equal(b) }

func (bn254G2) Add(a, b *bn254.G2Affine) bn254.G2Affine {
	var sum, q bn254.G2Jac
	sum.FromAffine(a)
	q.FromAffine(b)
	sum.AddAssign(&q)
	var res bn254.G2Affine
	res.FromJacobian(&sum)
	return res
}

func (bn254G2) ScalarMul(p *bn254.G2Affine, s *big.Int) bn254.G2Affine {
	var res bn254.G2Affine
	res.ScalarMultiplication(p, s)
	return res
}

func (bn254G2) MultiExp(points []bn254.G2Affine, scalars []big.Int) (bn254.G2Affine, error) {
	var res bn254.G2Affine
	_, err := res.MultiExp(points, bn254Scalars(scalars), ecc.MultiExpConfig{})
	return res, err
}

func (bn254G2) PointSize(c Compression) int {
	if c == Compressed {
		return bn254.SizeOfG2AffineCompressed
	}
	return bn254.SizeOfG2AffineUncompressed
}

func (g bn254G2) Decode(buf []byte, c Compression) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	if err := checkSize(buf, g.PointSize(c)); err != nil {
		return p, err
	}
	if isFlaggedZero(buf, bn254Infinity) {
		return p, nil
	}
	dec := bn254.NewDecoder(bytes.NewReader(buf), bn254.NoSubgroupChecks())
	return p, decodePoint(dec, &p, len(buf))
}

func (bn254G2) Validate(p *bn254.G2Affine) error {
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

func (bn254G2) Encode(p *bn254.G2Affine, c Compression) []byte {
	if c == Compressed {
		b := p.Bytes()
		return b[:]
	}
	b := p.RawBytes()
	return b[:]
}
