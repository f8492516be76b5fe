package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "version command shows version info",
			args:     []string{"version"},
			contains: []string{"Podcast Browser", "Version:      v" + Version, "Go Version:"},
		},
		{
			name:     "version command with --short flag",
			args:     []string{"version", "--short"},
			contains: []string{"v" + Version + "\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestVersionCommand_ShortFlagDoesNotLeak(t *testing.T) {
	_, err := execute(t, "version", "--short")
	require.NoError(t, err)

	output, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "Git Commit:")
}

func TestVersionCommandFlags(t *testing.T) {
	versionCmd, _, err := NewRootCmd().Find([]string{"version"})
	require.NoError(t, err)

	shortFlag := versionCmd.Flags().Lookup("short")
	require.NotNil(t, shortFlag, "Expected short flag to be registered")
	assert.Equal(t, "s", shortFlag.Shorthand)
}
