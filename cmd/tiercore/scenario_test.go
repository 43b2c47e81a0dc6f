package main

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/tiercore/stability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadScenario_RoundTrip parses the shipped fixtures and runs each one
// through the checker, pinning the expected verdicts end to end.
func TestLoadScenario_RoundTrip(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("testdata", "unstable5.yaml"))
	require.NoError(t, err)
	require.Len(t, sc.Win, 5)
	require.Len(t, sc.Tiers, 3)

	res, err := stability.Check(sc.Tiers, sc.Win)
	require.NoError(t, err)
	assert.False(t, res.Stable)
	assert.NotNil(t, res.Witness)

	sc, err = LoadScenario(filepath.Join("testdata", "stable5.yaml"))
	require.NoError(t, err)

	res, err = stability.Check(sc.Tiers, sc.Win)
	require.NoError(t, err)
	assert.True(t, res.Stable)
}

// TestLoadScenario_Missing surfaces the underlying read error.
func TestLoadScenario_Missing(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "no-such-file.yaml"))
	assert.Error(t, err)
}

// TestLoadScenario_Malformed rejects YAML that does not fit the schema.
func TestLoadScenario_Malformed(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "malformed.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario")
}
