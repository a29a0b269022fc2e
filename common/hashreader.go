package common

import (
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the width of every transcript digest (BLAKE2b-512).
const DigestSize = blake2b.Size

// HashReader forwards reads to an underlying reader and hashes every byte
// that goes through it.
type HashReader struct {
	reader io.Reader
	hasher hash.Hash
	n      int64
}

func NewHashReader(reader io.Reader) *HashReader {
	hasher, _ := blake2b.New512(nil)
	return &HashReader{reader: reader, hasher: hasher}
}

func (h *HashReader) Read(p []byte) (int, error) {
	n, err := h.reader.Read(p)
	if n > 0 {
		h.hasher.Write(p[:n])
		h.n += int64(n)
	}
	return n, err
}

// BytesRead returns the number of bytes hashed so far.
func (h *HashReader) BytesRead() int64 {
	return h.n
}

// Sum returns the digest of everything read so far. Reading may continue.
func (h *HashReader) Sum() []byte {
	return h.hasher.Sum(nil)
}

// NewHasher returns the hash used for transcript digests.
func NewHasher() hash.Hash {
	hasher, _ := blake2b.New512(nil)
	return hasher
}

// Digest hashes a whole stream.
func Digest(reader io.Reader) ([]byte, error) {
	hasher := NewHasher()
	if _, err := io.Copy(hasher, reader); err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}

// SeedSize is the width of the seeds expanded by NewStream.
const SeedSize = 32

// NewStream expands seed into an unbounded deterministic byte stream with
// BLAKE2Xb.
func NewStream(seed []byte) (io.Reader, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, err
	}
	if _, err := xof.Write(seed); err != nil {
		return nil, err
	}
	return xof, nil
}
