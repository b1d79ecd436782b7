package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Kind   string `yaml:"kind"`
	Root   string `yaml:"root"`
	Prefix string `yaml:"prefix"`
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colman.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: duck\nroot: elsewhere\n"), 0644))

	cfg := &testConfig{Kind: "file", Prefix: "v4_"}
	err := LoadConfig(cfg, path)
	require.NoError(t, err)
	assert.Equal(t, &testConfig{Kind: "duck", Root: "elsewhere", Prefix: "v4_"}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	err := LoadConfig(&testConfig{}, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: [unclosed"), 0644))
	err = LoadConfig(&testConfig{}, path)
	assert.Error(t, err)
}

func TestSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colman.yaml")

	written, err := SampleConfig([]byte("kind: file\n"), path, 0644)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = SampleConfig([]byte("kind: duck\n"), path, 0644)
	require.NoError(t, err)
	assert.False(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kind: file\n", string(data))
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "colman.log")

	file, err := OpenLog(path, 0644)
	require.NoError(t, err)

	_, err = file.Write([]byte("hello\n"))
	require.NoError(t, err)
	CloseLog(file)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
