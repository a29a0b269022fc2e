// Package toy implements curve.Curve over a prime field where every point is
// stored as its own discrete log: the generator is 1, scalar multiplication
// is field multiplication and the pairing is the product of its inputs.
//
// It has none of the hardness of a real curve and exists to exercise the
// audit protocol with small, readable values.
package toy

import (
	"fmt"
	"math/big"

	"github.com/bnbchain/ptau-audit/curve"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1 and G2 are distinct types so points of both groups can't be mixed up.
type (
	G1 fr.Element
	G2 fr.Element
)

// Curve uses the BLS12-381 scalar field as its group order.
type Curve struct{}

var _ curve.Curve[G1, G2] = Curve{}

func (Curve) Name() string { return "toy" }

func (Curve) ScalarField() *big.Int { return fr.Modulus() }

func (Curve) G1() curve.Group[G1] { return group[G1]{} }

func (Curve) G2() curve.Group[G2] { return group[G2]{} }

// SameRatio checks a·d == b·c, the toy version of e(a, d) == e(b, c).
func (Curve) SameRatio(g1 curve.Pair[G1], g2 curve.Pair[G2]) bool {
	var ad, bc fr.Element
	ad.Mul((*fr.Element)(&g1.A), (*fr.Element)(&g2.B))
	bc.Mul((*fr.Element)(&g1.B), (*fr.Element)(&g2.A))
	return ad.Equal(&bc)
}

// NewG1 returns v·G in G1.
func NewG1(v uint64) G1 { return G1(fr.NewElement(v)) }

// NewG2 returns v·H in G2.
func NewG2(v uint64) G2 { return G2(fr.NewElement(v)) }

// Value returns the discrete log of a point.
func Value[P ~[4]uint64](p P) *big.Int {
	e := fr.Element(p)
	return e.BigInt(new(big.Int))
}

// group is shared by G1 and G2. Compressed points are the 32 byte canonical
// big endian value, uncompressed points repeat it twice.
type group[P ~[4]uint64] struct{}

func (group[P]) Generator() P {
	var one fr.Element
	one.SetOne()
	return P(one)
}

func (group[P]) Equal(a, b *P) bool {
	return *a == *b
}

func (group[P]) Add(a, b *P) P {
	x, y := fr.Element(*a), fr.Element(*b)
	x.Add(&x, &y)
	return P(x)
}

func (group[P]) ScalarMul(p *P, s *big.Int) P {
	var k, res fr.Element
	k.SetBigInt(s)
	e := fr.Element(*p)
	res.Mul(&e, &k)
	return P(res)
}

func (group[P]) MultiExp(points []P, scalars []big.Int) (P, error) {
	if len(points) != len(scalars) {
		return P{}, fmt.Errorf("toy: %d points for %d scalars", len(points), len(scalars))
	}
	var acc, k, t fr.Element
	for i := range points {
		k.SetBigInt(&scalars[i])
		t = fr.Element(points[i])
		t.Mul(&t, &k)
		acc.Add(&acc, &t)
	}
	return P(acc), nil
}

func (group[P]) PointSize(c curve.Compression) int {
	if c == curve.Compressed {
		return fr.Bytes
	}
	return 2 * fr.Bytes
}

func (g group[P]) Decode(buf []byte, c curve.Compression) (P, error) {
	if len(buf) != g.PointSize(c) {
		return P{}, fmt.Errorf("%w: expected %d bytes, got %d", curve.ErrMalformedEncoding, g.PointSize(c), len(buf))
	}
	x := new(big.Int).SetBytes(buf[:fr.Bytes])
	if x.Cmp(fr.Modulus()) >= 0 {
		return P{}, fmt.Errorf("%w: value exceeds the field modulus", curve.ErrMalformedEncoding)
	}
	if c == curve.Uncompressed {
		for i := 0; i < fr.Bytes; i++ {
			if buf[i] != buf[fr.Bytes+i] {
				return P{}, fmt.Errorf("%w: coordinates disagree", curve.ErrMalformedEncoding)
			}
		}
	}
	var e fr.Element
	e.SetBigInt(x)
	return P(e), nil
}

func (group[P]) Validate(p *P) error {
	e := fr.Element(*p)
	if e.IsZero() {
		return curve.ErrIdentityElement
	}
	return nil
}

func (group[P]) Encode(p *P, c curve.Compression) []byte {
	e := fr.Element(*p)
	b := e.Bytes()
	if c == curve.Compressed {
		return b[:]
	}
	return append(b[:], b[:]...)
}
