package attestation

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	response14 = "357738325a328e2c9fc5c49a8665baf9e5bd30d0475e2d842a7541e90930b9b8c8c74380f82f503255c2dffb35ef64232b3cd05681da013e06f1b6430a0f2589"
	response15 = "c47f56c5ab6aa5234fcbfbaa9ecfa5b450672e7d65a276bfc31f3b7e43ee65ca9f7c2ad15cc3a5c22040e11aaa749e1fecb0e6d7dd8f6976865d03ffa3a4bd85"
)

func TestParse(t *testing.T) {
	table, err := Parse([]byte("attestations:\n  14: " + response14 + "\n  15: \"" + strings.ToUpper(response15) + "\"\n"))
	require.NoError(t, err)

	digest, err := table.Lookup(14)
	require.NoError(t, err)
	assert.Equal(t, response14, digest)

	digest, err = table.Lookup(15)
	require.NoError(t, err)
	assert.Equal(t, response15, digest, "digests are normalised to lowercase")

	_, err = table.Lookup(16)
	assert.ErrorIs(t, err, ErrMissing)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("attestations:\n  1: abcd\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("attestations:\n  1: " + strings.Repeat("zz", 64) + "\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("attestations: [1, 2"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	table := Table{}
	require.NoError(t, table.Set(14, response14))
	require.NoError(t, table.Set(15, response15))

	path := filepath.Join(t.TempDir(), "attestations.yaml")
	require.NoError(t, table.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
