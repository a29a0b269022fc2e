// Package curve is the boundary between the audit protocol and the
// elliptic-curve library. The protocol only ever needs a handful of
// capabilities from a pairing-friendly curve: group generators, equality,
// scalar and multi-scalar multiplication, the point codec, point validation
// and a same-ratio pairing test. Anything implementing Curve can be audited.
package curve

import (
	"errors"
	"math/big"
)

// Compression is the point encoding used throughout a transcript file.
type Compression int

const (
	Uncompressed Compression = iota
	Compressed
)

func (c Compression) String() string {
	if c == Compressed {
		return "compressed"
	}
	return "uncompressed"
}

// Correctness selects how much validation a decoded point goes through.
type Correctness int

const (
	// Strict checks curve membership, subgroup membership and rejects the
	// identity. Used for freshly submitted data.
	Strict Correctness = iota
	// Lenient only decodes. Used for data that was already checked in a
	// previous round.
	Lenient
)

func (c Correctness) String() string {
	if c == Lenient {
		return "lenient"
	}
	return "strict"
}

var (
	ErrMalformedEncoding  = errors.New("curve: malformed point encoding")
	ErrPointNotInSubgroup = errors.New("curve: point not in the prime order subgroup")
	ErrIdentityElement    = errors.New("curve: identity element rejected")
)

// Pair is an ordered couple of points of the same group, read as the ratio A/B.
type Pair[P any] struct {
	A, B P
}

// Group is the set of operations the audit performs on points of one group.
type Group[P any] interface {
	Generator() P
	Equal(a, b *P) bool
	Add(a, b *P) P
	ScalarMul(p *P, s *big.Int) P
	// MultiExp returns Σ scalars[i]·points[i]. Both slices have the same length.
	MultiExp(points []P, scalars []big.Int) (P, error)

	// PointSize is the encoded width of a point in the given mode.
	PointSize(c Compression) int
	// Decode parses exactly one point of PointSize(c) bytes without any
	// validation beyond the encoding itself.
	Decode(buf []byte, c Compression) (P, error)
	// Validate performs the checks required by the Strict policy.
	Validate(p *P) error
	Encode(p *P, c Compression) []byte
}

// Curve bundles both source groups with the pairing.
type Curve[G1, G2 any] interface {
	Name() string
	// ScalarField returns the order of G1 and G2.
	ScalarField() *big.Int
	G1() Group[G1]
	G2() Group[G2]
	// SameRatio reports whether g1.A/g1.B and g2.A/g2.B encode the same
	// discrete log ratio, i.e. e(g1.A, g2.B) == e(g1.B, g2.A).
	SameRatio(g1 Pair[G1], g2 Pair[G2]) bool
}
