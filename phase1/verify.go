package phase1

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/bnbchain/ptau-audit/attestation"
	"github.com/bnbchain/ptau-audit/common"
	"github.com/bnbchain/ptau-audit/curve"
	"github.com/bnbchain/ptau-audit/srs"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options configures an audit.
type Options struct {
	Parameters srs.Parameters
	// Diagnostic runs every check and reports all failures instead of
	// stopping at the first one.
	Diagnostic bool
	// Randomness is the source of the random linear combination scalars,
	// crypto/rand when nil. Only tests should set it.
	Randomness io.Reader
}

// Verdict is the outcome of auditing one round.
type Verdict struct {
	Round uint64
	// Digests of the whole before and after files, nil when a file could
	// not be read to the end.
	BeforeDigest []byte
	AfterDigest  []byte
	// Failures in check order. Empty when the round is valid.
	Failures []*CheckError
}

func (v *Verdict) Valid() bool {
	return len(v.Failures) == 0
}

// Err returns nil for a valid round and the failures joined otherwise.
func (v *Verdict) Err() error {
	if v.Valid() {
		return nil
	}
	errs := make([]error, len(v.Failures))
	for i, f := range v.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

func (v *Verdict) String() string {
	if v.Valid() {
		return fmt.Sprintf("round %d: valid", v.Round)
	}
	names := make([]string, len(v.Failures))
	for i, f := range v.Failures {
		names[i] = f.Name()
	}
	return fmt.Sprintf("round %d: %s", v.Round, strings.Join(names, ", "))
}

// VerifyRound audits the contribution of round: before is the challenge the
// participant received, whose header is the digest published for round-1,
// and after is the next challenge, whose header is the digest published for
// round. The error is only set when the audit could not be run at all.
func VerifyRound[G1, G2 any](c curve.Curve[G1, G2], round uint64, beforePath, afterPath string, table attestation.Table, opts Options) (*Verdict, error) {
	a, err := newAuditor(c, round, table, opts)
	if err != nil {
		return nil, err
	}
	return a.run(
		func() *srs.Accumulator[G1, G2] { return a.openTranscript("before", beforePath, round-1, curve.Lenient) },
		func() *srs.Accumulator[G1, G2] { return a.openTranscript("after", afterPath, round, curve.Strict) },
	)
}

// VerifyTranscript is VerifyRound on streams. Both streams must end with the
// accumulator.
func VerifyTranscript[G1, G2 any](c curve.Curve[G1, G2], round uint64, before, after io.Reader, table attestation.Table, opts Options) (*Verdict, error) {
	a, err := newAuditor(c, round, table, opts)
	if err != nil {
		return nil, err
	}
	return a.run(
		func() *srs.Accumulator[G1, G2] { return a.readTranscript("before", before, round-1, curve.Lenient) },
		func() *srs.Accumulator[G1, G2] { return a.readTranscript("after", after, round, curve.Strict) },
	)
}

type auditor[G1, G2 any] struct {
	curve   curve.Curve[G1, G2]
	table   attestation.Table
	opts    Options
	verdict *Verdict
	log     zerolog.Logger
}

func newAuditor[G1, G2 any](c curve.Curve[G1, G2], round uint64, table attestation.Table, opts Options) (*auditor[G1, G2], error) {
	if round == 0 {
		return nil, errors.New("phase1: round 0 is the initial challenge and has no contribution to audit")
	}
	if err := opts.Parameters.Validate(); err != nil {
		return nil, err
	}
	if opts.Randomness == nil {
		opts.Randomness = rand.Reader
	}
	return &auditor[G1, G2]{
		curve:   c,
		table:   table,
		opts:    opts,
		verdict: &Verdict{Round: round},
		log:     logger.Logger().With().Str("curve", c.Name()).Uint64("round", round).Logger(),
	}, nil
}

// record adds a failure to the verdict and reports whether the audit stops.
func (a *auditor[G1, G2]) record(f *CheckError) bool {
	a.verdict.Failures = append(a.verdict.Failures, f)
	a.log.Error().Str("check", f.Name()).Err(f.Err).Msg("check failed")
	return !a.opts.Diagnostic
}

func (a *auditor[G1, G2]) run(loadBefore, loadAfter func() *srs.Accumulator[G1, G2]) (*Verdict, error) {
	start := time.Now()
	before := loadBefore()
	if before == nil && !a.opts.Diagnostic {
		return a.verdict, nil
	}
	after := loadAfter()
	if before == nil || after == nil {
		return a.verdict, nil
	}

	checks, err := a.checks(before, after)
	if err != nil {
		return nil, err
	}
	if a.opts.Diagnostic {
		a.runAll(checks)
	} else {
		a.runUntilFailure(checks)
	}

	if a.verdict.Valid() {
		a.log.Info().Dur("took", time.Since(start)).Msg("round verification has been successful")
	}
	return a.verdict, nil
}

func (a *auditor[G1, G2]) openTranscript(which, path string, round uint64, check curve.Correctness) *srs.Accumulator[G1, G2] {
	file, err := os.Open(path)
	if err != nil {
		a.record(fail(IoError, which, err))
		return nil
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		a.record(fail(IoError, which, err))
		return nil
	}
	if expected := srs.FileSize(a.curve, a.opts.Parameters); info.Size() != expected {
		a.record(fail(SizeMismatch, which, fmt.Errorf("%s has %d bytes, expected %d", path, info.Size(), expected)))
		return nil
	}
	return a.readTranscript(which, file, round, check)
}

// readTranscript checks the digest heading a transcript and decodes the
// accumulator behind it. It returns nil when the accumulator can't be used.
func (a *auditor[G1, G2]) readTranscript(which string, reader io.Reader, round uint64, check curve.Correctness) *srs.Accumulator[G1, G2] {
	log := a.log.With().Str("file", which).Logger()
	hashReader := common.NewHashReader(bufio.NewReaderSize(reader, buffSize))

	if f := checkAttestation(hashReader, a.table, round); f != nil {
		f.Which = which
		if a.record(f) || f.Kind != AttestationMismatch {
			return nil
		}
	}

	start := time.Now()
	var acc srs.Accumulator[G1, G2]
	if err := acc.ReadFrom(a.curve, hashReader, a.opts.Parameters, check); err != nil {
		a.record(decodeFailure(which, err))
		return nil
	}
	if err := expectEOF(hashReader); err != nil {
		if a.record(fail(SizeMismatch, which, err)) {
			return nil
		}
	}
	digest := hashReader.Sum()
	if which == "before" {
		a.verdict.BeforeDigest = digest
	} else {
		a.verdict.AfterDigest = digest
	}
	log.Info().
		Str("check", check.String()).
		Str("digest", hex.EncodeToString(digest)).
		Dur("took", time.Since(start)).
		Msg("accumulator decoded")
	return &acc
}

// checkAttestation reads the digest heading a transcript and compares it to
// the one published for round.
func checkAttestation(reader io.Reader, table attestation.Table, round uint64) *CheckError {
	header := make([]byte, srs.HashSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fail(SizeMismatch, "", fmt.Errorf("reading digest: %w", err))
		}
		return fail(IoError, "", err)
	}
	expected, err := table.Lookup(round)
	if err != nil {
		return fail(AttestationMismatch, "", err)
	}
	if got := hex.EncodeToString(header); got != expected {
		return fail(AttestationMismatch, "", fmt.Errorf("embedded digest %s, published digest for round %d is %s", got, round, expected))
	}
	return nil
}

func expectEOF(reader io.Reader) error {
	var one [1]byte
	_, err := io.ReadFull(reader, one[:])
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return errors.New("trailing data after the accumulator")
	default:
		return err
	}
}

// runUntilFailure runs checks in order and stops at the first failure.
func (a *auditor[G1, G2]) runUntilFailure(checks []check) {
	for _, chk := range checks {
		if f := a.runCheck(chk); f != nil {
			a.record(f)
			return
		}
	}
}

// runAll runs every check concurrently and records failures in check order.
func (a *auditor[G1, G2]) runAll(checks []check) {
	results := make([]*CheckError, len(checks))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range checks {
		i := i
		g.Go(func() error {
			results[i] = a.runCheck(checks[i])
			return nil
		})
	}
	_ = g.Wait()
	for _, f := range results {
		if f != nil {
			a.record(f)
		}
	}
}

func (a *auditor[G1, G2]) runCheck(chk check) *CheckError {
	start := time.Now()
	f := chk.run()
	a.log.Debug().Str("check", chk.name).Bool("ok", f == nil).Dur("took", time.Since(start)).Msg("check done")
	return f
}
