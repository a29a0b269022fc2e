package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnbchain/ptau-audit/attestation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// run executes the CLI and returns what it printed on its writer.
func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"ptau-audit", "--log-format", "json", "--log-level", "warn"}, args...))
	return strings.TrimSpace(out.String()), err
}

func TestCeremonyCommands(t *testing.T) {
	dir := t.TempDir()
	challenge0 := filepath.Join(dir, "challenge_0")
	challenge1 := filepath.Join(dir, "challenge_1")

	digest0, err := run(t, "init", "--curve", "bn254", "--power", "2", challenge0)
	require.NoError(t, err)
	digest1, err := run(t, "contribute", "--curve", "bn254", "--power", "2", challenge0, challenge1)
	require.NoError(t, err)

	// the init header is the digest of an empty response
	header, err := os.ReadFile(challenge0)
	require.NoError(t, err)
	assert.Equal(t, digest0, fmt.Sprintf("%x", header[:64]))

	hashed, err := run(t, "hash", challenge0)
	require.NoError(t, err)
	assert.Len(t, hashed, 128)
	assert.NotEqual(t, digest0, hashed)

	table := attestation.Table{}
	require.NoError(t, table.Set(0, digest0))
	require.NoError(t, table.Set(1, digest1))
	attestations := filepath.Join(dir, "attestations.yaml")
	require.NoError(t, table.Save(attestations))

	out, err := run(t, "verify", "--curve", "bn254", "--power", "2", "--round", "1",
		"--before", challenge0, "--after", challenge1, "--attestations", attestations)
	require.NoError(t, err)
	assert.Empty(t, out)

	config := filepath.Join(dir, "verify.yaml")
	require.NoError(t, os.WriteFile(config, []byte(fmt.Sprintf(
		"curve: bn254\npower: 2\nround: 1\nbefore: %s\nafter: %s\nattestations: %s\nall: true\n",
		challenge0, challenge1, attestations)), 0o644))
	_, err = run(t, "verify", "--config", config)
	require.NoError(t, err)

	out, err = run(t, "--log-level", "info", "verify", "--curve", "bn254", "--power", "2", "--round", "1", "--seed", "1",
		"--before", challenge0, "--after", challenge1, "--attestations", attestations)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestVerifyFailureExitCode(t *testing.T) {
	dir := t.TempDir()
	challenge0 := filepath.Join(dir, "challenge_0")
	challenge1 := filepath.Join(dir, "challenge_1")
	digest0, err := run(t, "init", "--curve", "bls12-381", "--power", "1", challenge0)
	require.NoError(t, err)
	_, err = run(t, "contribute", "--curve", "bls12-381", "--power", "1", challenge0, challenge1)
	require.NoError(t, err)

	// round 1 published with the wrong digest
	table := attestation.Table{}
	require.NoError(t, table.Set(0, digest0))
	require.NoError(t, table.Set(1, digest0))
	attestations := filepath.Join(dir, "attestations.yaml")
	require.NoError(t, table.Save(attestations))

	exitCode := 0
	exiter := cli.OsExiter
	cli.OsExiter = func(code int) { exitCode = code }
	t.Cleanup(func() { cli.OsExiter = exiter })

	out, err := run(t, "verify", "--power", "1", "--round", "1",
		"--before", challenge0, "--after", challenge1, "--attestations", attestations)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "AttestationMismatch{after}", out)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "init", "--curve", "secp256k1", "--power", "1", filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)

	_, err = run(t, "init", "--power", "40", filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)

	_, err = run(t, "verify", "--round", "0", "--before", "a", "--after", "b", "--attestations", "c")
	assert.Error(t, err)

	_, err = run(t, "hash")
	assert.Error(t, err)

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	assert.Error(t, app.Run([]string{"ptau-audit", "--log-format", "xml", "hash", "x"}))
}
