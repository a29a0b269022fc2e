package srs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bnbchain/ptau-audit/common"
	"github.com/bnbchain/ptau-audit/curve"
)

// ErrTruncated is returned when the stream ends before the accumulator does.
var ErrTruncated = errors.New("srs: truncated accumulator")

// PointError locates a point that failed to decode or validate.
type PointError struct {
	Section string
	Index   int
	Err     error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("%s[%d]: %v", e.Section, e.Index, e.Err)
}

func (e *PointError) Unwrap() error {
	return e.Err
}

// ReadFrom decodes an accumulator of shape p from reader. With curve.Strict
// every point is also checked for curve and subgroup membership and the
// identity is rejected.
func (a *Accumulator[G1, G2]) ReadFrom(c curve.Curve[G1, G2], reader io.Reader, p Parameters, check curve.Correctness) error {
	var err error
	if a.TauG1, err = readPoints(c.G1(), reader, "TauG1", p.TauPowersG1(), p.Compression, check); err != nil {
		return err
	}
	if a.TauG2, err = readPoints(c.G2(), reader, "TauG2", p.TauPowers(), p.Compression, check); err != nil {
		return err
	}
	if a.AlphaTauG1, err = readPoints(c.G1(), reader, "AlphaTauG1", p.TauPowers(), p.Compression, check); err != nil {
		return err
	}
	if a.BetaTauG1, err = readPoints(c.G1(), reader, "BetaTauG1", p.TauPowers(), p.Compression, check); err != nil {
		return err
	}
	betaG2, err := readPoints(c.G2(), reader, "BetaG2", 1, p.Compression, check)
	if err != nil {
		return err
	}
	a.BetaG2 = betaG2[0]
	return nil
}

// WriteTo encodes the accumulator in the given compression mode.
func (a *Accumulator[G1, G2]) WriteTo(c curve.Curve[G1, G2], writer io.Writer, compression curve.Compression) (int64, error) {
	w := bufio.NewWriter(writer)
	toEncode := []func() (int64, error){
		func() (int64, error) { return writePoints(c.G1(), w, a.TauG1, compression) },
		func() (int64, error) { return writePoints(c.G2(), w, a.TauG2, compression) },
		func() (int64, error) { return writePoints(c.G1(), w, a.AlphaTauG1, compression) },
		func() (int64, error) { return writePoints(c.G1(), w, a.BetaTauG1, compression) },
		func() (int64, error) { return writePoints(c.G2(), w, []G2{a.BetaG2}, compression) },
	}
	var total int64
	for _, encode := range toEncode {
		n, err := encode()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, w.Flush()
}

func readPoints[P any](g curve.Group[P], reader io.Reader, section string, n int, compression curve.Compression, check curve.Correctness) ([]P, error) {
	points := make([]P, n)
	buf := make([]byte, g.PointSize(compression))
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(reader, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = ErrTruncated
			}
			return nil, &PointError{Section: section, Index: i, Err: err}
		}
		p, err := g.Decode(buf, compression)
		if err != nil {
			return nil, &PointError{Section: section, Index: i, Err: err}
		}
		points[i] = p
	}
	if check == curve.Strict {
		if err := validatePoints(g, points, section); err != nil {
			return nil, err
		}
	}
	return points, nil
}

// validatePoints checks all points in parallel and reports the failure with
// the lowest index, so the outcome does not depend on scheduling.
func validatePoints[P any](g curve.Group[P], points []P, section string) error {
	var lock sync.Mutex
	var first *PointError
	common.Parallelize(len(points), func(start, end int) {
		for i := start; i < end; i++ {
			if err := g.Validate(&points[i]); err != nil {
				lock.Lock()
				if first == nil || i < first.Index {
					first = &PointError{Section: section, Index: i, Err: err}
				}
				lock.Unlock()
				return
			}
		}
	})
	if first != nil {
		return first
	}
	return nil
}

func writePoints[P any](g curve.Group[P], writer io.Writer, points []P, compression curve.Compression) (int64, error) {
	var total int64
	for i := range points {
		n, err := writer.Write(g.Encode(&points[i], compression))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
