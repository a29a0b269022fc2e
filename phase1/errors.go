package phase1

import (
	"errors"
	"fmt"

	"github.com/bnbchain/ptau-audit/curve"
	"github.com/bnbchain/ptau-audit/srs"
)

// Kind names the check that rejected a transcript. A Kind is an error so
// callers can match failures with errors.Is.
type Kind string

const (
	IoError                 Kind = "IoError"
	SizeMismatch            Kind = "SizeMismatch"
	AttestationMismatch     Kind = "AttestationMismatch"
	MalformedEncoding       Kind = "MalformedEncoding"
	PointNotInSubgroup      Kind = "PointNotInSubgroup"
	IdentityElementRejected Kind = "IdentityElementRejected"
	GeneratorMismatch       Kind = "GeneratorMismatch"
	TauUpdateMismatch       Kind = "TauUpdateMismatch"
	BetaUpdateMismatch      Kind = "BetaUpdateMismatch"
	AlphaUnchanged          Kind = "AlphaUnchanged"
	PowersNotConsecutive    Kind = "PowersNotConsecutive"
)

func (k Kind) Error() string {
	return string(k)
}

// CheckError is a failed check. Which names the file or sequence the check
// was about, when there is one.
type CheckError struct {
	Kind  Kind
	Which string
	Err   error
}

// Name returns the check identifier, e.g. PowersNotConsecutive{TauG1}.
func (e *CheckError) Name() string {
	if e.Which == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s{%s}", e.Kind, e.Which)
}

func (e *CheckError) Error() string {
	if e.Err == nil {
		return e.Name()
	}
	return fmt.Sprintf("%s: %v", e.Name(), e.Err)
}

func (e *CheckError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func fail(kind Kind, which string, err error) *CheckError {
	return &CheckError{Kind: kind, Which: which, Err: err}
}

// decodeFailure maps a snapshot decoding error onto its check.
func decodeFailure(which string, err error) *CheckError {
	switch {
	case errors.Is(err, srs.ErrTruncated):
		return fail(SizeMismatch, which, err)
	case errors.Is(err, curve.ErrIdentityElement):
		return fail(IdentityElementRejected, which, err)
	case errors.Is(err, curve.ErrPointNotInSubgroup):
		return fail(PointNotInSubgroup, which, err)
	case errors.Is(err, curve.ErrMalformedEncoding):
		return fail(MalformedEncoding, which, err)
	default:
		return fail(IoError, which, err)
	}
}
