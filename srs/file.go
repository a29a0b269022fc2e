package srs

import (
	"fmt"
	"io"

	"github.com/bnbchain/ptau-audit/curve"
)

// WriteTranscript writes digest followed by the encoded accumulator.
func WriteTranscript[G1, G2 any](c curve.Curve[G1, G2], writer io.Writer, digest []byte, a *Accumulator[G1, G2], compression curve.Compression) error {
	if len(digest) != HashSize {
		return fmt.Errorf("srs: digest has %d bytes, expected %d", len(digest), HashSize)
	}
	if _, err := writer.Write(digest); err != nil {
		return err
	}
	_, err := a.WriteTo(c, writer, compression)
	return err
}
