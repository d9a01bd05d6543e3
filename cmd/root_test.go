package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rossetti/JSL-sub006/rng"
)

func TestNewProvider_Defaults(t *testing.T) {
	configPath = ""
	p := newProvider()
	assert.Equal(t, rng.DefaultInitialSeed(), p.GetCurrentSeed())
}

func TestNewProvider_FromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provider.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_seed: [9, 9, 9, 9, 9, 9]\n"), 0o644))

	configPath = path
	defer func() { configPath = "" }()

	p := newProvider()
	assert.Equal(t, rng.GeneratorState{9, 9, 9, 9, 9, 9}, p.GetCurrentSeed())
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"sample", "check", "streams"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
