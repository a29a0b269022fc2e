package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	mrand "math/rand"
	"os"
	"time"

	"github.com/bnbchain/ptau-audit/attestation"
	"github.com/bnbchain/ptau-audit/common"
	"github.com/bnbchain/ptau-audit/curve"
	"github.com/bnbchain/ptau-audit/phase1"
	"github.com/bnbchain/ptau-audit/srs"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func setupLogger(cCtx *cli.Context) error {
	level, err := zerolog.ParseLevel(cCtx.String("log-level"))
	if err != nil {
		return err
	}
	var output io.Writer
	switch format := cCtx.String("log-format"); format {
	case "console":
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	case "json":
		output = os.Stderr
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	logger.Set(zerolog.New(output).Level(level).With().Timestamp().Logger())
	return nil
}

func parameters(cCtx *cli.Context) (srs.Parameters, error) {
	power := cCtx.Int("power")
	if power < 1 || power > srs.MaxPower {
		return srs.Parameters{}, fmt.Errorf("can't support power %d, expected 1 to %d", power, srs.MaxPower)
	}
	p := srs.Parameters{Power: uint8(power), Compression: curve.Uncompressed}
	if cCtx.Bool("compressed") {
		p.Compression = curve.Compressed
	}
	return p, nil
}

// onCurve runs the instance of a generic action selected by --curve.
func onCurve(
	cCtx *cli.Context,
	bn func(*cli.Context, curve.Curve[bn254.G1Affine, bn254.G2Affine]) error,
	bls func(*cli.Context, curve.Curve[bls12381.G1Affine, bls12381.G2Affine]) error,
) error {
	switch name := cCtx.String("curve"); name {
	case "bn254":
		return bn(cCtx, curve.BN254{})
	case "bls12-381":
		return bls(cCtx, curve.BLS12381{})
	default:
		return fmt.Errorf("unsupported curve %q", name)
	}
}

func verify(cCtx *cli.Context) error {
	return onCurve(cCtx, verifyOn[bn254.G1Affine, bn254.G2Affine], verifyOn[bls12381.G1Affine, bls12381.G2Affine])
}

func verifyOn[G1, G2 any](cCtx *cli.Context, c curve.Curve[G1, G2]) error {
	round := cCtx.Int("round")
	if round < 1 {
		return errors.New("round must be at least 1")
	}
	for _, name := range []string{"before", "after", "attestations"} {
		if cCtx.Path(name) == "" {
			return fmt.Errorf("missing --%s", name)
		}
	}
	p, err := parameters(cCtx)
	if err != nil {
		return err
	}
	table, err := attestation.Load(cCtx.Path("attestations"))
	if err != nil {
		return err
	}
	log := logger.Logger()
	opts := phase1.Options{Parameters: p, Diagnostic: cCtx.Bool("all")}
	if cCtx.IsSet("seed") {
		log.Warn().Int("seed", cCtx.Int("seed")).Msg("random linear combinations are seeded, the audit is not sound")
		opts.Randomness = mrand.New(mrand.NewSource(int64(cCtx.Int("seed"))))
	}

	start := time.Now()
	verdict, err := phase1.VerifyRound(c, uint64(round), cCtx.Path("before"), cCtx.Path("after"), table, opts)
	if err != nil {
		return err
	}
	if !verdict.Valid() {
		for _, f := range verdict.Failures {
			fmt.Fprintln(cCtx.App.Writer, f.Name())
		}
		return cli.Exit("", 1)
	}
	log.Info().
		Uint64("round", verdict.Round).
		Str("before", hex.EncodeToString(verdict.BeforeDigest)).
		Str("after", hex.EncodeToString(verdict.AfterDigest)).
		Dur("took", time.Since(start)).
		Msg("round is valid")
	return nil
}

func hash(cCtx *cli.Context) error {
	// sanity check
	if cCtx.Args().Len() != 1 {
		return errors.New("please provide the correct arguments")
	}
	file, err := os.Open(cCtx.Args().Get(0))
	if err != nil {
		return err
	}
	defer file.Close()
	digest, err := common.Digest(file)
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, hex.EncodeToString(digest))
	return nil
}

func initialize(cCtx *cli.Context) error {
	return onCurve(cCtx, initializeOn[bn254.G1Affine, bn254.G2Affine], initializeOn[bls12381.G1Affine, bls12381.G2Affine])
}

func initializeOn[G1, G2 any](cCtx *cli.Context, c curve.Curve[G1, G2]) error {
	// sanity check
	if cCtx.Args().Len() != 1 {
		return errors.New("please provide the correct arguments")
	}
	p, err := parameters(cCtx)
	if err != nil {
		return err
	}
	digest, err := phase1.InitializeFile(c, p, cCtx.Args().Get(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, hex.EncodeToString(digest))
	return nil
}

func contribute(cCtx *cli.Context) error {
	return onCurve(cCtx, contributeOn[bn254.G1Affine, bn254.G2Affine], contributeOn[bls12381.G1Affine, bls12381.G2Affine])
}

func contributeOn[G1, G2 any](cCtx *cli.Context, c curve.Curve[G1, G2]) error {
	// sanity check
	if cCtx.Args().Len() != 2 {
		return errors.New("please provide the correct arguments")
	}
	p, err := parameters(cCtx)
	if err != nil {
		return err
	}
	secrets, err := phase1.NewSecrets(c.ScalarField(), rand.Reader)
	if err != nil {
		return err
	}
	digest, err := phase1.ContributeFile(c, p, cCtx.Args().Get(0), cCtx.Args().Get(1), secrets)
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, hex.EncodeToString(digest))
	return nil
}
