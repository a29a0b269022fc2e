// Package srs holds the structured reference string accumulated by a
// powers-of-tau ceremony and its transcript file codec.
//
// A transcript file is a 64 byte digest followed by the accumulator:
//
//	digest | TauG1 (2N-1) | TauG2 (N) | AlphaTauG1 (N) | BetaTauG1 (N) | BetaG2
package srs

import (
	"errors"
	"fmt"

	"github.com/bnbchain/ptau-audit/common"
	"github.com/bnbchain/ptau-audit/curve"
)

// HashSize is the size of the digest heading every transcript file.
const HashSize = common.DigestSize

// MaxPower bounds the supported ceremony sizes.
const MaxPower = 28

var ErrInvalidPower = errors.New("srs: power out of range")

// Accumulator is a snapshot of the ceremony state.
type Accumulator[G1, G2 any] struct {
	// [τ⁰]₁, [τ¹]₁, [τ²]₁, …, [τ²ᴺ⁻²]₁
	TauG1 []G1
	// [τ⁰]₂, [τ¹]₂, [τ²]₂, …, [τᴺ⁻¹]₂
	TauG2 []G2
	// α[τ⁰]₁, α[τ¹]₁, α[τ²]₁, …, α[τᴺ⁻¹]₁
	AlphaTauG1 []G1
	// β[τ⁰]₁, β[τ¹]₁, β[τ²]₁, …, β[τᴺ⁻¹]₁
	BetaTauG1 []G1
	// [β]₂
	BetaG2 G2
}

// Parameters fixes the shape of an accumulator and its encoding.
type Parameters struct {
	Power       uint8
	Compression curve.Compression
}

func (p Parameters) Validate() error {
	if p.Power < 1 || p.Power > MaxPower {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidPower, p.Power, MaxPower)
	}
	return nil
}

// TauPowers is N, the length of TauG2, AlphaTauG1 and BetaTauG1.
func (p Parameters) TauPowers() int {
	return 1 << p.Power
}

// TauPowersG1 is 2N-1, the length of TauG1.
func (p Parameters) TauPowersG1() int {
	return 2*p.TauPowers() - 1
}

// AccumulatorSize returns the encoded size of an accumulator, without digest.
func AccumulatorSize[G1, G2 any](c curve.Curve[G1, G2], p Parameters) int64 {
	g1 := int64(c.G1().PointSize(p.Compression))
	g2 := int64(c.G2().PointSize(p.Compression))
	n := int64(p.TauPowers())
	return int64(p.TauPowersG1())*g1 + n*g2 + 2*n*g1 + g2
}

// FileSize returns the size of a transcript file.
func FileSize[G1, G2 any](c curve.Curve[G1, G2], p Parameters) int64 {
	return HashSize + AccumulatorSize(c, p)
}

// CheckShape reports whether the accumulator has the lengths required by p.
func (a *Accumulator[G1, G2]) CheckShape(p Parameters) error {
	sections := []struct {
		name      string
		got, want int
	}{
		{"TauG1", len(a.TauG1), p.TauPowersG1()},
		{"TauG2", len(a.TauG2), p.TauPowers()},
		{"AlphaTauG1", len(a.AlphaTauG1), p.TauPowers()},
		{"BetaTauG1", len(a.BetaTauG1), p.TauPowers()},
	}
	for _, s := range sections {
		if s.got != s.want {
			return fmt.Errorf("srs: %s has %d points, expected %d", s.name, s.got, s.want)
		}
	}
	return nil
}
