package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "sysmon", rootCmd.Use)
	assert.NotNil(t, rootCmd.RunE, "bare invocation must run the dashboard")
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	err := rootCmd.Args(rootCmd, []string{"unexpected"})
	require.Error(t, err)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"version", "snapshot", "demo"} {
		assert.True(t, names[want], "expected %q subcommand", want)
	}
}
