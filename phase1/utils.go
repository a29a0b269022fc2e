package phase1

import (
	"fmt"
	"io"
	"math/big"

	"github.com/bnbchain/ptau-audit/common"
	"github.com/bnbchain/ptau-audit/curve"
	"github.com/bnbchain/ptau-audit/utils"
)

// rlcChunk bounds how many scalars are held in memory at once.
var rlcChunk = 1 << 16

// PowerPairs splits points into the windows P₀…Pₙ₋₂ and P₁…Pₙ₋₁, draws n-1
// random scalars from rnd and returns the random linear combination of each
// window. When every point is the previous one times the same τ, the second
// combination is τ times the first; a single point out of place breaks this
// except with negligible probability over the scalars.
//
// Scalars are drawn and combined rlcChunk at a time, in order, so the result
// only depends on the bytes read from rnd.
func PowerPairs[P any](g curve.Group[P], order *big.Int, points []P, rnd io.Reader) (curve.Pair[P], error) {
	n := len(points)
	if n < 2 {
		return curve.Pair[P]{}, fmt.Errorf("phase1: need at least 2 powers, got %d", n)
	}
	sampler := utils.NewSampler(rnd, order)
	r := make([]big.Int, min(rlcChunk, n-1))
	var res curve.Pair[P]
	for start := 0; start < n-1; start += len(r) {
		end := min(start+len(r), n-1)
		r = r[:end-start]
		if err := sampler.Read(r); err != nil {
			return curve.Pair[P]{}, err
		}
		L1, err := g.MultiExp(points[start:end], r)
		if err != nil {
			return curve.Pair[P]{}, err
		}
		L2, err := g.MultiExp(points[start+1:end+1], r)
		if err != nil {
			return curve.Pair[P]{}, err
		}
		if start == 0 {
			res = curve.Pair[P]{A: L1, B: L2}
			continue
		}
		res.A = g.Add(&res.A, &L1)
		res.B = g.Add(&res.B, &L2)
	}
	return res, nil
}

// scale multiplies points[i] by multiplicand·τⁱ. A nil multiplicand stands for 1.
func scale[P any](g curve.Group[P], order *big.Int, points []P, tau, multiplicand *big.Int) []P {
	if multiplicand == nil {
		multiplicand = big.NewInt(1)
	}
	scalars := utils.Powers(multiplicand, tau, order, len(points))
	res := make([]P, len(points))
	common.Parallelize(len(points), func(start, end int) {
		for i := start; i < end; i++ {
			res[i] = g.ScalarMul(&points[i], &scalars[i])
		}
	})
	return res
}
