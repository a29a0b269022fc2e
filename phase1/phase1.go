// Package phase1 audits rounds of a powers-of-tau ceremony and implements the
// reference contribution used to produce them.
package phase1

import (
	"bufio"
	"encoding/hex"
	"io"
	"os"

	"github.com/bnbchain/ptau-audit/common"
	"github.com/bnbchain/ptau-audit/curve"
	"github.com/bnbchain/ptau-audit/srs"
	"github.com/consensys/gnark/logger"
)

const buffSize = 1 << 20

// ResponseDigest returns the digest of the response made of challengeDigest
// followed by the encoded accumulator. It is the value published for the
// round and the header of the next challenge.
func ResponseDigest[G1, G2 any](c curve.Curve[G1, G2], challengeDigest []byte, a *srs.Accumulator[G1, G2], compression curve.Compression) ([]byte, error) {
	hasher := common.NewHasher()
	hasher.Write(challengeDigest)
	if _, err := a.WriteTo(c, hasher, compression); err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}

// InitializeFile writes the first challenge of a ceremony and returns its
// header, the digest of the empty response that round 1 is checked against.
func InitializeFile[G1, G2 any](c curve.Curve[G1, G2], p srs.Parameters, outputPath string) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := logger.Logger().With().Str("curve", c.Name()).Uint8("power", p.Power).Logger()
	log.Info().Int("powers", p.TauPowers()).Msg("initializing challenge")

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, err
	}
	defer outputFile.Close()

	digest := common.NewHasher().Sum(nil)
	writer := bufio.NewWriterSize(outputFile, buffSize)
	if err := srs.WriteTranscript(c, writer, digest, Initialize(c, p), p.Compression); err != nil {
		return nil, err
	}
	if err := writer.Flush(); err != nil {
		return nil, err
	}
	log.Info().Str("digest", hex.EncodeToString(digest)).Msg("initialization has been completed successfully")
	return digest, nil
}

// ContributeFile reads a challenge, applies secrets and writes the next
// challenge. It returns the response digest to publish for the round.
func ContributeFile[G1, G2 any](c curve.Curve[G1, G2], p srs.Parameters, inputPath, outputPath string, s Secrets) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := logger.Logger().With().Str("curve", c.Name()).Str("challenge", inputPath).Logger()

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer inputFile.Close()

	reader := common.NewHashReader(bufio.NewReaderSize(inputFile, buffSize))
	header := make([]byte, srs.HashSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, err
	}
	log.Info().Msg("reading challenge")
	var prev srs.Accumulator[G1, G2]
	if err := prev.ReadFrom(c, reader, p, curve.Strict); err != nil {
		return nil, err
	}
	challengeDigest := reader.Sum()

	log.Info().Msg("applying contribution")
	next, err := Contribute(c, &prev, s)
	if err != nil {
		return nil, err
	}
	digest, err := ResponseDigest(c, challengeDigest, next, p.Compression)
	if err != nil {
		return nil, err
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, err
	}
	defer outputFile.Close()
	writer := bufio.NewWriterSize(outputFile, buffSize)
	if err := srs.WriteTranscript(c, writer, digest, next, p.Compression); err != nil {
		return nil, err
	}
	if err := writer.Flush(); err != nil {
		return nil, err
	}
	log.Info().Str("digest", hex.EncodeToString(digest)).Msg("contribution has been successful")
	return digest, nil
}
