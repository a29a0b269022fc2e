// Package attestation holds the digests published for each ceremony round.
package attestation

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnbchain/ptau-audit/common"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissing = errors.New("attestation: no digest published for round")
	ErrInvalid = errors.New("attestation: invalid digest")
)

// Table maps a round index to the lowercase hex digest of that round's
// response, as published by the ceremony coordinator.
type Table map[uint64]string

type tableFile struct {
	Attestations map[uint64]string `yaml:"attestations"`
}

// Load reads a YAML attestation file:
//
//	attestations:
//	  14: 357738325a32...
//	  15: c47f56c5ab6a...
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("attestation: %w", err)
	}
	table := make(Table, len(f.Attestations))
	for round, digest := range f.Attestations {
		if err := table.Set(round, digest); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// Set records the digest of a round, normalising it to lowercase hex.
func (t Table) Set(round uint64, digest string) error {
	digest = strings.ToLower(strings.TrimSpace(digest))
	raw, err := hex.DecodeString(digest)
	if err != nil || len(raw) != common.DigestSize {
		return fmt.Errorf("%w: round %d: expected %d hex characters", ErrInvalid, round, 2*common.DigestSize)
	}
	t[round] = digest
	return nil
}

// Lookup returns the digest published for round.
func (t Table) Lookup(round uint64) (string, error) {
	digest, ok := t[round]
	if !ok {
		return "", fmt.Errorf("%w %d", ErrMissing, round)
	}
	return digest, nil
}

// Save writes the table in the format read by Load.
func (t Table) Save(path string) error {
	data, err := yaml.Marshal(tableFile{Attestations: t})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
