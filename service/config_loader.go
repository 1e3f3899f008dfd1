package service

import (
	"github.com/WittleWolfie/PyGram/domain"
	"github.com/WittleWolfie/PyGram/internal/config"
)

// SimilarityConfigLoader implements the domain.SimilarityConfigurationLoader
// interface over the TOML config loader. Requests come back seeded with the
// resolved configuration; callers layer CLI flag overrides on top.
type SimilarityConfigLoader struct {
	loader *config.TomlConfigLoader
}

// NewSimilarityConfigLoader creates a new configuration loader
func NewSimilarityConfigLoader() *SimilarityConfigLoader {
	return &SimilarityConfigLoader{
		loader: config.NewTomlConfigLoader(),
	}
}

// LoadCompareConfig returns a compare request seeded from configuration
func (l *SimilarityConfigLoader) LoadCompareConfig(path string) (*domain.CompareRequest, error) {
	cfg, err := l.load(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration", err)
	}

	req := domain.DefaultCompareRequest()
	req.P = cfg.Grams.P
	req.Q = cfg.Grams.Q
	req.OutputFormat = domain.OutputFormat(cfg.Output.Format)
	req.ShowProfiles = cfg.Output.ShowProfiles
	req.ConfigPath = path
	return req, nil
}

// LoadMatrixConfig returns a matrix request seeded from configuration
func (l *SimilarityConfigLoader) LoadMatrixConfig(path string) (*domain.MatrixRequest, error) {
	cfg, err := l.load(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration", err)
	}

	req := domain.DefaultMatrixRequest()
	req.Paths = cfg.Input.Paths
	req.Recursive = cfg.Input.Recursive
	req.IncludePatterns = cfg.Input.IncludePatterns
	req.ExcludePatterns = cfg.Input.ExcludePatterns
	req.P = cfg.Grams.P
	req.Q = cfg.Grams.Q
	req.Threshold = cfg.Matrix.Threshold
	req.OutputFormat = domain.OutputFormat(cfg.Output.Format)
	req.SortBy = domain.SortCriteria(cfg.Matrix.SortBy)
	req.ConfigPath = path
	return req, nil
}

// load resolves the configuration from an explicit file or by discovery.
func (l *SimilarityConfigLoader) load(path string) (*config.PygramConfig, error) {
	if path != "" {
		return l.loader.LoadConfigFile(path)
	}
	return l.loader.LoadConfig(".")
}
