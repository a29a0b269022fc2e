package curve

import (
	"fmt"
)

// pointDecoder is the part of the gnark-crypto Decoder we rely on.
type pointDecoder interface {
	Decode(v interface{}) error
	BytesRead() int64
}

// decodePoint decodes exactly one point of size bytes. A decoder consuming a
// different number of bytes means the point was not written in the expected
// compression mode.
func decodePoint(dec pointDecoder, p interface{}, size int) error {
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	if dec.BytesRead() != int64(size) {
		return fmt.Errorf("%w: read %d bytes out of %d", ErrMalformedEncoding, dec.BytesRead(), size)
	}
	return nil
}

func checkSize(buf []byte, size int) error {
	if len(buf) != size {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedEncoding, size, len(buf))
	}
	return nil
}

// isFlaggedZero reports whether buf is flag followed by zero bytes only.
func isFlaggedZero(buf []byte, flag byte) bool {
	if len(buf) == 0 || buf[0] != flag {
		return false
	}
	for _, b := range buf[1:] {
		if b != 0 {
			return false
		}
	}
	return true
}

var errNotOnCurve = fmt.Errorf("%w: point is not on the curve", ErrMalformedEncoding)
