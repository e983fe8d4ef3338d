package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `input_dir: data
days:
  5:
    input: data/custom-day05.txt
    part1: CMZ
  9:
    part1: "13"
    part2: "1"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.InputDir)
	assert.Equal(t, "data/custom-day05.txt", cfg.InputPath(5))
	assert.Equal(t, filepath.Join("data", "day09.txt"), cfg.InputPath(9))
	assert.Equal(t, filepath.Join("data", "day01.txt"), cfg.InputPath(1))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.InputDir)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("inputs", "day03.txt"), cfg.InputPath(3))
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "input_dir: [unterminated"))
	assert.Error(t, err)
}

func TestLoadEmptyInputDirFallsBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "days:\n  1:\n    part1: \"100\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.InputDir)
}

func TestExpected(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	want, ok := cfg.Expected(5, 1)
	require.True(t, ok)
	assert.Equal(t, "CMZ", want)

	_, ok = cfg.Expected(5, 2)
	assert.False(t, ok)

	want, ok = cfg.Expected(9, 2)
	require.True(t, ok)
	assert.Equal(t, "1", want)

	_, ok = cfg.Expected(7, 1)
	assert.False(t, ok)
}
