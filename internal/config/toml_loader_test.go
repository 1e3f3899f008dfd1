package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".pygram.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	loader := NewTomlConfigLoader()

	cfg, err := loader.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Grams.P)
	assert.Equal(t, 3, cfg.Grams.Q)
	assert.Equal(t, 1.0, cfg.Matrix.Threshold)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Input.Recursive)
}

func TestLoadConfig_MergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[grams]
p = 3
q = 4

[matrix]
threshold = 0.5
sort_by = "name"

[output]
show_profiles = true

[input]
recursive = false
include_patterns = ["**/*.tree"]
`)

	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Grams.P)
	assert.Equal(t, 4, cfg.Grams.Q)
	assert.Equal(t, 0.5, cfg.Matrix.Threshold)
	assert.Equal(t, "name", cfg.Matrix.SortBy)
	assert.True(t, cfg.Output.ShowProfiles)
	assert.False(t, cfg.Input.Recursive)
	assert.Equal(t, []string{"**/*.tree"}, cfg.Input.IncludePatterns)

	// Untouched sections keep their defaults.
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Generation.Depth)
}

func TestLoadConfig_PartialSectionKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[grams]
p = 5
`)

	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Grams.P)
	assert.Equal(t, 3, cfg.Grams.Q)
}

func TestLoadConfig_DiscoversUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[grams]
q = 7
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfig(nested)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Grams.Q)
}

func TestLoadConfig_DiscoversUpwardFromWorkingDir(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[grams]
q = 7
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Grams.Q)
}

func TestLoadConfig_InvalidTomlFails(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "not valid = [toml")

	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfig(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfigFile_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[generation]
depth = 9
seed = 1234
`)

	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Generation.Depth)
	assert.Equal(t, int64(1234), cfg.Generation.Seed)
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PYGRAM_GRAMS_P", "6")
	t.Setenv("PYGRAM_OUTPUT_FORMAT", "json")

	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Grams.P)
	assert.Equal(t, "json", cfg.Output.Format)
	// Env overrides beat file values too.
	assert.Equal(t, 3, cfg.Grams.Q)
}

func TestLoadConfig_EnvOverridesBeatFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[grams]
p = 4
`)
	t.Setenv("PYGRAM_GRAMS_P", "8")

	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Grams.P)
}
