package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WittleWolfie/PyGram/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".pygram.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCompareConfig(t *testing.T) {
	t.Run("explicit config file seeds the request", func(t *testing.T) {
		path := writeConfigFile(t, `
[grams]
p = 3
q = 4

[output]
format = "json"
show_profiles = true
`)

		loader := NewSimilarityConfigLoader()
		req, err := loader.LoadCompareConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 3, req.P)
		assert.Equal(t, 4, req.Q)
		assert.Equal(t, domain.OutputFormatJSON, req.OutputFormat)
		assert.True(t, req.ShowProfiles)
		assert.Equal(t, path, req.ConfigPath)
	})

	t.Run("empty path falls back to defaults", func(t *testing.T) {
		loader := NewSimilarityConfigLoader()
		req, err := loader.LoadCompareConfig("")
		require.NoError(t, err)

		defaults := domain.DefaultCompareRequest()
		assert.Equal(t, defaults.P, req.P)
		assert.Equal(t, defaults.Q, req.Q)
		assert.Equal(t, defaults.OutputFormat, req.OutputFormat)
	})

	t.Run("missing explicit file is a config error", func(t *testing.T) {
		loader := NewSimilarityConfigLoader()
		_, err := loader.LoadCompareConfig(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)

		var derr domain.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, domain.ErrCodeConfigError, derr.Code)
	})
}

func TestLoadMatrixConfig(t *testing.T) {
	t.Run("explicit config file seeds the request", func(t *testing.T) {
		path := writeConfigFile(t, `
[input]
recursive = false
include_patterns = ["*.ast"]
exclude_patterns = ["vendor/**"]

[matrix]
threshold = 0.5
sort_by = "name"
`)

		loader := NewSimilarityConfigLoader()
		req, err := loader.LoadMatrixConfig(path)
		require.NoError(t, err)

		assert.False(t, req.Recursive)
		assert.Equal(t, []string{"*.ast"}, req.IncludePatterns)
		assert.Equal(t, []string{"vendor/**"}, req.ExcludePatterns)
		assert.Equal(t, 0.5, req.Threshold)
		assert.Equal(t, domain.SortByName, req.SortBy)
	})

	t.Run("unset values keep defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
[grams]
p = 4
`)

		loader := NewSimilarityConfigLoader()
		req, err := loader.LoadMatrixConfig(path)
		require.NoError(t, err)

		defaults := domain.DefaultMatrixRequest()
		assert.Equal(t, 4, req.P)
		assert.Equal(t, defaults.Q, req.Q)
		assert.Equal(t, defaults.Threshold, req.Threshold)
		assert.Equal(t, defaults.SortBy, req.SortBy)
		assert.True(t, req.Recursive)
	})

	t.Run("malformed file is a config error", func(t *testing.T) {
		path := writeConfigFile(t, "[grams\np = ")

		loader := NewSimilarityConfigLoader()
		_, err := loader.LoadMatrixConfig(path)
		require.Error(t, err)

		var derr domain.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, domain.ErrCodeConfigError, derr.Code)
	})
}
