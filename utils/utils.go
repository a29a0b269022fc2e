package utils

import (
	"bufio"
	"io"
	"math/big"
)

// Returns [a, ab, ab², ..., abⁿ⁻¹ ] reduced modulo m
func Powers(a, b, m *big.Int, n int) []big.Int {
	result := make([]big.Int, n)
	if n == 0 {
		return result
	}
	result[0].Mod(a, m)
	for i := 1; i < n; i++ {
		result[i].Mul(&result[i-1], b)
		result[i].Mod(&result[i], m)
	}
	return result
}

// Sampler draws scalars uniformly distributed modulo m from a byte stream.
// Each scalar is reduced from twice the byte length of m, which keeps the
// modular bias negligible. Successive reads continue the same stream.
type Sampler struct {
	reader *bufio.Reader
	m      *big.Int
	buf    []byte
}

func NewSampler(rnd io.Reader, m *big.Int) *Sampler {
	width := 2 * ((m.BitLen() + 7) / 8)
	return &Sampler{
		reader: bufio.NewReaderSize(rnd, 64*width),
		m:      m,
		buf:    make([]byte, width),
	}
}

// Read fills dst with fresh scalars.
func (s *Sampler) Read(dst []big.Int) error {
	for i := range dst {
		if _, err := io.ReadFull(s.reader, s.buf); err != nil {
			return err
		}
		dst[i].SetBytes(s.buf)
		dst[i].Mod(&dst[i], s.m)
	}
	return nil
}

// RandomScalars reads n scalars modulo m from rnd.
func RandomScalars(rnd io.Reader, m *big.Int, n int) ([]big.Int, error) {
	result := make([]big.Int, n)
	if err := NewSampler(rnd, m).Read(result); err != nil {
		return nil, err
	}
	return result, nil
}
