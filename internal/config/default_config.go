package config

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/WittleWolfie/PyGram/internal/constants"
)

// defaultConfigTmpl is the annotated .pygram.toml written by `pygram init`.
// Settings are commented out so the file documents the defaults without
// pinning them.
const defaultConfigTmpl = `# pygram configuration file
# Place this file in your project root as {{.ConfigFileName}}.
# All settings are optional; uncomment to override the defaults shown.

[grams]
# Ancestor window size (p) and sibling window size (q).
# Larger values make the distance more sensitive to structure.
# p = {{.P}}
# q = {{.Q}}

[input]
# Paths scanned by the matrix command.
# paths = ["."]
# recursive = true
# include_patterns = ["{{.TreeFilePattern}}"]
# exclude_patterns = []

[matrix]
# Only pairs with distance <= threshold are reported.
# threshold = {{.Threshold}}
# Sort reported pairs by: distance, similarity, name
# sort_by = "distance"

[output]
# Output format: text, json, yaml, csv
# format = "text"
# Include the full gram profiles in compare output.
# show_profiles = false

[generation]
# Defaults for the gen command.
# depth = {{.Depth}}
# width = {{.Width}}
# alphabet = "{{.Alphabet}}"
# label_length = {{.LabelLength}}
# seed = {{.Seed}}
`

// defaultConfigValues feeds the template from the built-in defaults.
type defaultConfigValues struct {
	ConfigFileName  string
	P               int
	Q               int
	TreeFilePattern string
	Threshold       float64
	Depth           int
	Width           int
	Alphabet        string
	LabelLength     int
	Seed            int64
}

func newDefaultConfigValues() defaultConfigValues {
	defaults := DefaultConfig()
	return defaultConfigValues{
		ConfigFileName:  constants.ConfigFileName,
		P:               defaults.Grams.P,
		Q:               defaults.Grams.Q,
		TreeFilePattern: defaults.Input.IncludePatterns[0],
		Threshold:       defaults.Matrix.Threshold,
		Depth:           defaults.Generation.Depth,
		Width:           defaults.Generation.Width,
		Alphabet:        defaults.Generation.Alphabet,
		LabelLength:     defaults.Generation.LabelLength,
		Seed:            defaults.Generation.Seed,
	}
}

// GenerateDefaultConfigTOML renders the annotated default configuration file.
func GenerateDefaultConfigTOML() (string, error) {
	tmpl, err := template.New("default_config").Parse(defaultConfigTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse default config template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newDefaultConfigValues()); err != nil {
		return "", fmt.Errorf("failed to render default config template: %w", err)
	}

	return buf.String(), nil
}
