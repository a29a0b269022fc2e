package phase1

import (
	"errors"
	"fmt"
	"io"

	"github.com/bnbchain/ptau-audit/common"
	"github.com/bnbchain/ptau-audit/curve"
	"github.com/bnbchain/ptau-audit/srs"
)

type check struct {
	name string
	run  func() *CheckError
}

// checks lists the round checks in the order failures are reported:
//
//  1. the first powers of the new accumulator are the generators
//  2. τ was updated consistently in G1 and G2
//  3. β was updated consistently in G1 and G2
//  4. α was updated
//  5. every sequence holds consecutive powers of the same τ
//
// Each consecutive powers check expands its own seed into scalars. Seeds are
// drawn here, in order, so a seeded source gives the same outcome however
// the checks are scheduled.
func (a *auditor[G1, G2]) checks(before, after *srs.Accumulator[G1, G2]) ([]check, error) {
	c := a.curve
	g1, g2 := c.G1(), c.G2()
	gen1, gen2 := g1.Generator(), g2.Generator()
	order := c.ScalarField()

	if err := before.CheckShape(a.opts.Parameters); err != nil {
		return nil, err
	}
	if err := after.CheckShape(a.opts.Parameters); err != nil {
		return nil, err
	}

	var seeds [4][common.SeedSize]byte
	for i := range seeds {
		if _, err := io.ReadFull(a.opts.Randomness, seeds[i][:]); err != nil {
			return nil, fmt.Errorf("phase1: drawing random seeds: %w", err)
		}
	}

	// [1]₂ and [τ]₂, shared by the G1 sequences
	var tauG2Pair curve.Pair[G2]
	tauG2Pair.A, tauG2Pair.B = gen2, after.TauG2[1]

	g1Powers := func(which string, points []G1, seed [common.SeedSize]byte) check {
		return check{name: which, run: func() *CheckError {
			rnd, err := common.NewStream(seed[:])
			if err != nil {
				return fail(PowersNotConsecutive, which, err)
			}
			pair, err := PowerPairs(g1, order, points, rnd)
			if err != nil {
				return fail(PowersNotConsecutive, which, err)
			}
			if !c.SameRatio(pair, tauG2Pair) {
				return fail(PowersNotConsecutive, which, errors.New("sequence is not made of successive powers of τ"))
			}
			return nil
		}}
	}

	return []check{
		{name: "GeneratorMismatch{TauG1}", run: func() *CheckError {
			if !g1.Equal(&after.TauG1[0], &gen1) {
				return fail(GeneratorMismatch, "TauG1", errors.New("TauG1[0] is not the G1 generator"))
			}
			return nil
		}},
		{name: "GeneratorMismatch{TauG2}", run: func() *CheckError {
			if !g2.Equal(&after.TauG2[0], &gen2) {
				return fail(GeneratorMismatch, "TauG2", errors.New("TauG2[0] is not the G2 generator"))
			}
			return nil
		}},
		{name: "TauUpdateMismatch", run: func() *CheckError {
			if !c.SameRatio(
				curve.Pair[G1]{A: before.TauG1[1], B: after.TauG1[1]},
				curve.Pair[G2]{A: before.TauG2[1], B: after.TauG2[1]},
			) {
				return fail(TauUpdateMismatch, "", errors.New("τ was not updated by the same factor in G1 and G2"))
			}
			return nil
		}},
		{name: "BetaUpdateMismatch", run: func() *CheckError {
			if !c.SameRatio(
				curve.Pair[G1]{A: before.BetaTauG1[0], B: after.BetaTauG1[0]},
				curve.Pair[G2]{A: before.BetaG2, B: after.BetaG2},
			) {
				return fail(BetaUpdateMismatch, "", errors.New("β was not updated by the same factor in G1 and G2"))
			}
			return nil
		}},
		{name: "AlphaUnchanged", run: func() *CheckError {
			if g1.Equal(&after.AlphaTauG1[0], &before.AlphaTauG1[0]) {
				return fail(AlphaUnchanged, "", errors.New("AlphaTauG1[0] was not updated"))
			}
			return nil
		}},
		g1Powers("TauG1", after.TauG1, seeds[0]),
		{name: "TauG2", run: func() *CheckError {
			rnd, err := common.NewStream(seeds[1][:])
			if err != nil {
				return fail(PowersNotConsecutive, "TauG2", err)
			}
			pair, err := PowerPairs(g2, order, after.TauG2, rnd)
			if err != nil {
				return fail(PowersNotConsecutive, "TauG2", err)
			}
			if !c.SameRatio(curve.Pair[G1]{A: gen1, B: after.TauG1[1]}, pair) {
				return fail(PowersNotConsecutive, "TauG2", errors.New("sequence is not made of successive powers of τ"))
			}
			return nil
		}},
		g1Powers("AlphaTauG1", after.AlphaTauG1, seeds[2]),
		g1Powers("BetaTauG1", after.BetaTauG1, seeds[3]),
	}, nil
}
