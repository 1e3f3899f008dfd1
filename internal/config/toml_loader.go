package config

import (
	"os"
	"path/filepath"

	"github.com/WittleWolfie/PyGram/internal/constants"
	"github.com/pelletier/go-toml/v2"
)

// pygramTomlConfig mirrors the structure of .pygram.toml. Scalars that need
// unset detection are pointers so a merge never clobbers a default with a
// zero value the user didn't write.
type pygramTomlConfig struct {
	Grams      tomlGramsConfig      `toml:"grams"`
	Input      tomlInputConfig      `toml:"input"`
	Matrix     tomlMatrixConfig     `toml:"matrix"`
	Output     tomlOutputConfig     `toml:"output"`
	Generation tomlGenerationConfig `toml:"generation"`
}

type tomlGramsConfig struct {
	P int `toml:"p"`
	Q int `toml:"q"`
}

type tomlInputConfig struct {
	Paths           []string `toml:"paths"`
	Recursive       *bool    `toml:"recursive"` // pointer to detect unset
	IncludePatterns []string `toml:"include_patterns"`
	ExcludePatterns []string `toml:"exclude_patterns"`
}

type tomlMatrixConfig struct {
	Threshold float64 `toml:"threshold"`
	SortBy    string  `toml:"sort_by"`
}

type tomlOutputConfig struct {
	Format       string `toml:"format"`
	ShowProfiles *bool  `toml:"show_profiles"` // pointer to detect unset
}

type tomlGenerationConfig struct {
	Depth       int    `toml:"depth"`
	Width       int    `toml:"width"`
	Alphabet    string `toml:"alphabet"`
	LabelLength int    `toml:"label_length"`
	Seed        int64  `toml:"seed"`
}

// TomlConfigLoader handles TOML configuration loading
type TomlConfigLoader struct{}

// NewTomlConfigLoader creates a new TOML configuration loader
func NewTomlConfigLoader() *TomlConfigLoader {
	return &TomlConfigLoader{}
}

// LoadConfig loads configuration with the following priority:
// 1. PYGRAM_* environment variables
// 2. .pygram.toml discovered upward from startDir
// 3. built-in defaults
func (l *TomlConfigLoader) LoadConfig(startDir string) (*PygramConfig, error) {
	cfg := DefaultConfig()

	if configPath, err := l.findConfigFile(startDir); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		var fileCfg pygramTomlConfig
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		l.merge(cfg, &fileCfg)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadConfigFile loads configuration from an explicit file path, without
// discovery. Environment overrides still apply.
func (l *TomlConfigLoader) LoadConfigFile(configPath string) (*PygramConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var fileCfg pygramTomlConfig
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	l.merge(cfg, &fileCfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// findConfigFile walks up the directory tree to find .pygram.toml
func (l *TomlConfigLoader) findConfigFile(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}

	// Relative paths like "." never ascend past themselves, so resolve
	// to an absolute path before walking.
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, constants.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}

// merge overlays explicitly set file values onto the defaults.
func (l *TomlConfigLoader) merge(defaults *PygramConfig, file *pygramTomlConfig) {
	// Gram shape
	if file.Grams.P > 0 {
		defaults.Grams.P = file.Grams.P
	}
	if file.Grams.Q > 0 {
		defaults.Grams.Q = file.Grams.Q
	}

	// Input
	if len(file.Input.Paths) > 0 {
		defaults.Input.Paths = file.Input.Paths
	}
	if file.Input.Recursive != nil {
		defaults.Input.Recursive = *file.Input.Recursive
	}
	if len(file.Input.IncludePatterns) > 0 {
		defaults.Input.IncludePatterns = file.Input.IncludePatterns
	}
	if len(file.Input.ExcludePatterns) > 0 {
		defaults.Input.ExcludePatterns = file.Input.ExcludePatterns
	}

	// Matrix
	if file.Matrix.Threshold > 0 {
		defaults.Matrix.Threshold = file.Matrix.Threshold
	}
	if file.Matrix.SortBy != "" {
		defaults.Matrix.SortBy = file.Matrix.SortBy
	}

	// Output
	if file.Output.Format != "" {
		defaults.Output.Format = file.Output.Format
	}
	if file.Output.ShowProfiles != nil {
		defaults.Output.ShowProfiles = *file.Output.ShowProfiles
	}

	// Generation
	if file.Generation.Depth > 0 {
		defaults.Generation.Depth = file.Generation.Depth
	}
	if file.Generation.Width > 0 {
		defaults.Generation.Width = file.Generation.Width
	}
	if file.Generation.Alphabet != "" {
		defaults.Generation.Alphabet = file.Generation.Alphabet
	}
	if file.Generation.LabelLength > 0 {
		defaults.Generation.LabelLength = file.Generation.LabelLength
	}
	if file.Generation.Seed != 0 {
		defaults.Generation.Seed = file.Generation.Seed
	}
}
