package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOMLRoundTrip(t *testing.T) {
	type section struct {
		Budget  int      `toml:"budget"`
		Enabled bool     `toml:"enabled"`
		Files   []string `toml:"files"`
	}
	type doc struct {
		Main section `toml:"main"`
	}

	path := filepath.Join(t.TempDir(), "conf.toml")
	in := doc{Main: section{Budget: 3, Enabled: true, Files: []string{"a.txt", "b.txt"}}}
	require.NoError(t, SaveTOMLFile(in, path))

	var out doc
	require.NoError(t, LoadTOMLFile(path, &out))
	assert.Equal(t, in, out)

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	main, ok := ExtractSection(raw, "main")
	require.True(t, ok)

	budget, ok := ExtractInt(main, "budget")
	assert.True(t, ok)
	assert.Equal(t, 3, budget)
	enabled, ok := ExtractBool(main, "enabled")
	assert.True(t, ok)
	assert.True(t, enabled)
	files, ok := ExtractStrings(main, "files")
	assert.True(t, ok)
	assert.Equal(t, []string{"a.txt", "b.txt"}, files)
	_, ok = ExtractString(main, "budget")
	assert.False(t, ok)
}

func TestCheckRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(file, []byte("cat\n"), 0o644))

	assert.NoError(t, CheckRegularFile(file))
	assert.ErrorIs(t, CheckRegularFile(dir), ErrNotRegularFile)
	assert.ErrorIs(t, CheckRegularFile(filepath.Join(dir, "missing")), os.ErrNotExist)
	assert.True(t, FileExists(file))
	assert.True(t, WritableDir(filepath.Join(dir, "nested", "config")))
}
