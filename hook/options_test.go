package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOptionsNotFound(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, ErrOptionsNotFound)
}

func TestLoadOptionsInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [this is not a string"), 0o644))

	_, err := LoadOptions(path)
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestLoadOptionsValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	require.Equal(t, "debug", opts.LogLevel)

	e := NewEngine(opts.AsOption())
	require.NotNil(t, e)
}

func TestAsOptionIgnoresUnrecognizedLevel(t *testing.T) {
	opts := &Options{LogLevel: "not-a-level"}
	e := NewEngine(opts.AsOption())
	require.NotNil(t, e)
}
