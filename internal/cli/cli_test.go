package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional manifest path", func(t *testing.T) {
		out := &bytes.Buffer{}

		cfg, shouldExit, err := Parse([]string{"manifests/"}, out)
		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, "manifests/", cfg.ManifestPath)
		assert.Equal(t, "mermaid", cfg.OutputFormat)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		out := &bytes.Buffer{}

		cfg, shouldExit, err := Parse(
			[]string{"--manifest", "m.hcl", "--output", "json", "--log-level", "debug", "--log-format", "json"},
			out)
		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, "m.hcl", cfg.ManifestPath)
		assert.Equal(t, "json", cfg.OutputFormat)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		cfg, shouldExit, err := Parse([]string{"-m", "m.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, "m.hcl", cfg.ManifestPath)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}

		cfg, shouldExit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("help flag exits cleanly", func(t *testing.T) {
		_, shouldExit, err := Parse([]string{"-h"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, shouldExit)
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := [][]string{
			{"--output", "dot", "m.hcl"},
			{"--log-format", "xml", "m.hcl"},
			{"--log-level", "trace", "m.hcl"},
		}
		for _, args := range cases {
			_, _, err := Parse(args, &bytes.Buffer{})
			require.Error(t, err, "args %v", args)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok)
			assert.Equal(t, 2, exitErr.Code)
		}
	})
}
