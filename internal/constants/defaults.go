package constants

// Default pq-gram dimensions. p=2, q=3 is the shape used throughout the
// pq-gram literature and gives each gram one parent of context and a
// three-wide sibling window.
const (
	// DefaultP is the default ancestor window size.
	DefaultP = 2

	// DefaultQ is the default sibling window size.
	DefaultQ = 3
)

// Matrix defaults.
const (
	// DefaultMatrixThreshold is the maximum distance for a pair to be
	// reported. 1.0 reports every pair.
	DefaultMatrixThreshold = 1.0
)

// Input defaults.
const (
	// DefaultTreeFilePattern matches the tree notation files the reader
	// collects when scanning directories.
	DefaultTreeFilePattern = "*.tree"
)

// ConfigFileName is the dedicated configuration file discovered upward from
// the working directory.
const ConfigFileName = ".pygram.toml"
