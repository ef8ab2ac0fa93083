package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("source: ./doc\ndest: ./out\npattern: \"*.txt\"\nquiet: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "./doc", cfg.Source)
	assert.Equal(t, "./out", cfg.Dest)
	assert.Equal(t, "*.txt", cfg.Pattern)
	assert.True(t, cfg.Quiet)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("source: ./doc\n"))
	require.NoError(t, err)

	assert.Equal(t, "./doc", cfg.Source)
	assert.Equal(t, "./stubs", cfg.Dest)
	assert.Equal(t, DefaultPattern, cfg.Pattern)
	assert.False(t, cfg.Quiet)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("source: [unclosed"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".docstub.yml")
	require.NoError(t, os.WriteFile(path, []byte("dest: ./generated\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./generated", cfg.Dest)
	assert.Equal(t, ".", cfg.Source)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
