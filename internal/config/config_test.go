package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decmath.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.False(t, cfg.Output.Style)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[output]
format = "yaml"
style = true

[log]
verbose = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.True(t, cfg.Output.Style)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoad_partial(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[log]\nverbose = true\n"))
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestLoad_errors(t *testing.T) {
	td := map[string]string{
		"format":  "[output]\nformat = \"xml\"\n",
		"syntax":  "[output\n",
		"unknown": "[output]\ncolour = true\n",
	}
	for name, content := range td {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
			assert.True(t, Error.Has(err), "%v", err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
