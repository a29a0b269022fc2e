package phase1

import (
	"errors"
	"io"
	"math/big"

	"github.com/bnbchain/ptau-audit/curve"
	"github.com/bnbchain/ptau-audit/srs"
	"github.com/bnbchain/ptau-audit/utils"
)

// Secrets are the toxic parameters of one contribution.
type Secrets struct {
	Tau, Alpha, Beta *big.Int
}

// NewSecrets samples non-zero τ, α and β modulo order from rnd.
func NewSecrets(order *big.Int, rnd io.Reader) (Secrets, error) {
	var s Secrets
	for _, v := range []**big.Int{&s.Tau, &s.Alpha, &s.Beta} {
		for *v == nil || (*v).Sign() == 0 {
			r, err := utils.RandomScalars(rnd, order, 1)
			if err != nil {
				return Secrets{}, err
			}
			*v = &r[0]
		}
	}
	return s, nil
}

func (s Secrets) check(order *big.Int) error {
	for _, v := range []*big.Int{s.Tau, s.Alpha, s.Beta} {
		if v == nil || new(big.Int).Mod(v, order).Sign() == 0 {
			return errors.New("phase1: secrets must be non-zero")
		}
	}
	return nil
}

// Initialize returns the accumulator of a fresh ceremony, where τ = α = β = 1
// so every point is a generator.
func Initialize[G1, G2 any](c curve.Curve[G1, G2], p srs.Parameters) *srs.Accumulator[G1, G2] {
	g1, g2 := c.G1().Generator(), c.G2().Generator()
	var a srs.Accumulator[G1, G2]
	a.TauG1 = repeat(g1, p.TauPowersG1())
	a.TauG2 = repeat(g2, p.TauPowers())
	a.AlphaTauG1 = repeat(g1, p.TauPowers())
	a.BetaTauG1 = repeat(g1, p.TauPowers())
	a.BetaG2 = g2
	return &a
}

// Contribute applies secrets to prev: [τⁱ]₁·τⁱ, [τⁱ]₂·τⁱ, α[τⁱ]₁·ατⁱ,
// β[τⁱ]₁·βτⁱ and [β]₂·β. prev is left untouched.
func Contribute[G1, G2 any](c curve.Curve[G1, G2], prev *srs.Accumulator[G1, G2], s Secrets) (*srs.Accumulator[G1, G2], error) {
	order := c.ScalarField()
	if err := s.check(order); err != nil {
		return nil, err
	}
	var next srs.Accumulator[G1, G2]
	next.TauG1 = scale(c.G1(), order, prev.TauG1, s.Tau, nil)
	next.TauG2 = scale(c.G2(), order, prev.TauG2, s.Tau, nil)
	next.AlphaTauG1 = scale(c.G1(), order, prev.AlphaTauG1, s.Tau, s.Alpha)
	next.BetaTauG1 = scale(c.G1(), order, prev.BetaTauG1, s.Tau, s.Beta)
	next.BetaG2 = c.G2().ScalarMul(&prev.BetaG2, s.Beta)
	return &next, nil
}

func repeat[P any](p P, n int) []P {
	res := make([]P, n)
	for i := range res {
		res[i] = p
	}
	return res
}
