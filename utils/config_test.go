package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"generations": 20, "print_every": 5, "use_parallel": true}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, config.Generations)
	assert.Equal(t, 5, config.PrintEvery)
	assert.True(t, config.UseParallel)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultConfig().UseMemoryPool, config.UseMemoryPool)
	assert.Equal(t, DefaultConfig().StagnationThreshold, config.StagnationThreshold)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "generations: 3\nstrict: true\ncolor: true\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, config.Generations)
	assert.Equal(t, 1, config.PrintEvery)
	assert.True(t, config.Strict)
	assert.True(t, config.Color)
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "config.json", `{"generations": "many"}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.yml", "generations: [1, 2]\n"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	config := DefaultConfig()
	config.Generations = -1
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.PrintEvery = 0
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.StopOnStagnation = true
	config.StagnationThreshold = 0
	assert.Error(t, config.Validate())

	_, err := LoadConfig(writeFile(t, "config.json", `{"print_every": 0}`))
	assert.Error(t, err)
}
