package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "minutes", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["build"])
	assert.True(t, names["search"])
	assert.True(t, names["serve"])
	assert.True(t, names["tui"])
	assert.True(t, names["version"])
}

func TestSetConfig(t *testing.T) {
	prev := cfg
	defer func() { cfg = prev }()

	c := &Config{CorpusDir: "dev-meeting-log"}
	SetConfig(c)

	assert.Same(t, c, cfg)
}
