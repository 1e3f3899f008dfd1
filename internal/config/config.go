package config

import (
	"strings"

	"github.com/WittleWolfie/PyGram/internal/constants"
	"github.com/spf13/viper"
)

// PygramConfig is the resolved tool configuration after merging defaults,
// the discovered .pygram.toml, and PYGRAM_* environment overrides.
type PygramConfig struct {
	// Gram shape
	Grams GramsConfig `toml:"grams" yaml:"grams" json:"grams"`

	// Input handling for matrix runs
	Input InputConfig `toml:"input" yaml:"input" json:"input"`

	// Matrix filtering and ordering
	Matrix MatrixConfig `toml:"matrix" yaml:"matrix" json:"matrix"`

	// Output formatting
	Output OutputConfig `toml:"output" yaml:"output" json:"output"`

	// Random tree generation (gen command)
	Generation GenerationConfig `toml:"generation" yaml:"generation" json:"generation"`
}

// GramsConfig holds the pq-gram dimensions.
type GramsConfig struct {
	P int `toml:"p" yaml:"p" json:"p"`
	Q int `toml:"q" yaml:"q" json:"q"`
}

// InputConfig holds tree file collection settings.
type InputConfig struct {
	Paths           []string `toml:"paths" yaml:"paths" json:"paths"`
	Recursive       bool     `toml:"recursive" yaml:"recursive" json:"recursive"`
	IncludePatterns []string `toml:"include_patterns" yaml:"include_patterns" json:"include_patterns"`
	ExcludePatterns []string `toml:"exclude_patterns" yaml:"exclude_patterns" json:"exclude_patterns"`
}

// MatrixConfig holds matrix reporting settings.
type MatrixConfig struct {
	// Threshold is the maximum distance for a pair to be reported.
	Threshold float64 `toml:"threshold" yaml:"threshold" json:"threshold"`
	SortBy    string  `toml:"sort_by" yaml:"sort_by" json:"sort_by"`
}

// OutputConfig holds output formatting settings.
type OutputConfig struct {
	Format       string `toml:"format" yaml:"format" json:"format"`
	ShowProfiles bool   `toml:"show_profiles" yaml:"show_profiles" json:"show_profiles"`
}

// GenerationConfig holds the defaults for random tree generation.
type GenerationConfig struct {
	Depth       int    `toml:"depth" yaml:"depth" json:"depth"`
	Width       int    `toml:"width" yaml:"width" json:"width"`
	Alphabet    string `toml:"alphabet" yaml:"alphabet" json:"alphabet"`
	LabelLength int    `toml:"label_length" yaml:"label_length" json:"label_length"`
	Seed        int64  `toml:"seed" yaml:"seed" json:"seed"`
}

// envPrefix namespaces the environment overrides, e.g. PYGRAM_GRAMS_P.
const envPrefix = "PYGRAM"

// applyEnvOverrides overlays PYGRAM_* environment variables onto the config.
// Only a small, flat set of keys is honored; everything else belongs in the
// TOML file.
func applyEnvOverrides(cfg *PygramConfig) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if p := v.GetInt("grams.p"); v.IsSet("grams.p") && p > 0 {
		cfg.Grams.P = p
	}
	if q := v.GetInt("grams.q"); v.IsSet("grams.q") && q > 0 {
		cfg.Grams.Q = q
	}
	if format := v.GetString("output.format"); v.IsSet("output.format") && format != "" {
		cfg.Output.Format = format
	}
	if threshold := v.GetFloat64("matrix.threshold"); v.IsSet("matrix.threshold") && threshold > 0 {
		cfg.Matrix.Threshold = threshold
	}
	if seed := v.GetInt64("generation.seed"); v.IsSet("generation.seed") && seed != 0 {
		cfg.Generation.Seed = seed
	}
}

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() *PygramConfig {
	return &PygramConfig{
		Grams: GramsConfig{
			P: constants.DefaultP,
			Q: constants.DefaultQ,
		},
		Input: InputConfig{
			Paths:           []string{"."},
			Recursive:       true,
			IncludePatterns: []string{constants.DefaultTreeFilePattern},
			ExcludePatterns: []string{},
		},
		Matrix: MatrixConfig{
			Threshold: constants.DefaultMatrixThreshold,
			SortBy:    "distance",
		},
		Output: OutputConfig{
			Format:       "text",
			ShowProfiles: false,
		},
		Generation: GenerationConfig{
			Depth:       4,
			Width:       2,
			Alphabet:    "abcdefghijklmnopqrstuvwxyz",
			LabelLength: 2,
			Seed:        1,
		},
	}
}
