package domain

import (
	"context"
	"io"

	"github.com/WittleWolfie/PyGram/internal/analyzer"
)

// TreeInfo describes one profiled tree in a response.
type TreeInfo struct {
	Source string `json:"source" yaml:"source" csv:"source"`
	Label  string `json:"label" yaml:"label" csv:"label"`
	Nodes  int    `json:"nodes" yaml:"nodes" csv:"nodes"`
	Height int    `json:"height" yaml:"height" csv:"height"`
	Grams  int    `json:"grams" yaml:"grams" csv:"grams"`
}

// CompareRequest represents a request to compare two trees.
//
// LeftTree and RightTree are either paths to tree notation files or inline
// notation such as "a(b,c(d))"; the tree reader resolves files first.
type CompareRequest struct {
	// Input parameters
	LeftTree  string `json:"left_tree"`
	RightTree string `json:"right_tree"`

	// Gram shape
	P int `json:"p"`
	Q int `json:"q"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	ShowProfiles bool         `json:"show_profiles"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// Validate validates a compare request
func (req *CompareRequest) Validate() error {
	if req.LeftTree == "" || req.RightTree == "" {
		return NewValidationError("two trees are required for comparison")
	}
	if req.P < 1 {
		return NewValidationError("p must be >= 1")
	}
	if req.Q < 1 {
		return NewValidationError("q must be >= 1")
	}
	if !req.OutputFormat.IsValid() {
		return NewValidationError("invalid output format: " + string(req.OutputFormat))
	}
	return nil
}

// HasValidOutputWriter checks if the request has a valid output writer
func (req *CompareRequest) HasValidOutputWriter() bool {
	return req.OutputWriter != nil
}

// CompareResponse represents the result of comparing two trees.
type CompareResponse struct {
	// Results
	Left        *TreeInfo `json:"left" yaml:"left"`
	Right       *TreeInfo `json:"right" yaml:"right"`
	P           int       `json:"p" yaml:"p"`
	Q           int       `json:"q" yaml:"q"`
	Distance    float64   `json:"distance" yaml:"distance"`
	Similarity  float64   `json:"similarity" yaml:"similarity"`
	SharedGrams int       `json:"shared_grams" yaml:"shared_grams"`

	// Populated only when the request asked for profiles
	LeftProfile  []string `json:"left_profile,omitempty" yaml:"left_profile,omitempty"`
	RightProfile []string `json:"right_profile,omitempty" yaml:"right_profile,omitempty"`

	// Metadata
	Duration int64  `json:"duration_ms" yaml:"duration_ms"`
	Success  bool   `json:"success" yaml:"success"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// MatrixRequest represents a request for a pairwise distance matrix over a
// set of tree files.
type MatrixRequest struct {
	// Input parameters
	Paths           []string `json:"paths"`
	Recursive       bool     `json:"recursive"`
	IncludePatterns []string `json:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns"`

	// Gram shape
	P int `json:"p"`
	Q int `json:"q"`

	// Filtering
	Threshold float64 `json:"threshold"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	SortBy       SortCriteria `json:"sort_by"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// Validate validates a matrix request
func (req *MatrixRequest) Validate() error {
	if len(req.Paths) == 0 {
		return NewValidationError("paths cannot be empty")
	}
	if req.P < 1 {
		return NewValidationError("p must be >= 1")
	}
	if req.Q < 1 {
		return NewValidationError("q must be >= 1")
	}
	if req.Threshold < 0.0 || req.Threshold > 1.0 {
		return NewValidationError("threshold must be between 0.0 and 1.0")
	}
	if !req.OutputFormat.IsValid() {
		return NewValidationError("invalid output format: " + string(req.OutputFormat))
	}
	if !req.SortBy.IsValid() {
		return NewValidationError("invalid sort criteria: " + string(req.SortBy))
	}
	return nil
}

// HasValidOutputWriter checks if the request has a valid output writer
func (req *MatrixRequest) HasValidOutputWriter() bool {
	return req.OutputWriter != nil
}

// TreePair represents one compared pair in a matrix response.
type TreePair struct {
	Left       string  `json:"left" yaml:"left" csv:"left"`
	Right      string  `json:"right" yaml:"right" csv:"right"`
	Distance   float64 `json:"distance" yaml:"distance" csv:"distance"`
	Similarity float64 `json:"similarity" yaml:"similarity" csv:"similarity"`
}

// MatrixStatistics provides summary statistics for a matrix run.
type MatrixStatistics struct {
	TreesCompared   int     `json:"trees_compared" yaml:"trees_compared"`
	PairsCompared   int     `json:"pairs_compared" yaml:"pairs_compared"`
	PairsReported   int     `json:"pairs_reported" yaml:"pairs_reported"`
	MinDistance     float64 `json:"min_distance" yaml:"min_distance"`
	MaxDistance     float64 `json:"max_distance" yaml:"max_distance"`
	AverageDistance float64 `json:"average_distance" yaml:"average_distance"`
}

// MatrixResponse represents the result of a matrix computation.
type MatrixResponse struct {
	// Results
	Trees      []*TreeInfo       `json:"trees" yaml:"trees"`
	Pairs      []*TreePair       `json:"pairs" yaml:"pairs"`
	Statistics *MatrixStatistics `json:"statistics" yaml:"statistics"`
	P          int               `json:"p" yaml:"p"`
	Q          int               `json:"q" yaml:"q"`

	// Metadata
	Duration int64  `json:"duration_ms" yaml:"duration_ms"`
	Success  bool   `json:"success" yaml:"success"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SimilarityService defines the interface for pq-gram similarity services
type SimilarityService interface {
	// Compare compares two trees and returns their normalized distance
	Compare(ctx context.Context, req *CompareRequest) (*CompareResponse, error)

	// ComputeMatrix computes pairwise distances over a set of tree files
	ComputeMatrix(ctx context.Context, req *MatrixRequest) (*MatrixResponse, error)
}

// TreeReader defines the interface for locating and decoding tree inputs
type TreeReader interface {
	// CollectTreeFiles collects tree notation files from the given paths
	CollectTreeFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// ReadTreeFile reads and parses a tree notation file
	ReadTreeFile(path string) (*analyzer.TreeNode, error)

	// ParseTree parses inline tree notation such as "a(b,c(d))"
	ParseTree(notation string) (*analyzer.TreeNode, error)

	// IsTreeFile reports whether the path looks like a readable tree file
	IsTreeFile(path string) bool
}

// SimilarityConfigurationLoader loads configuration-backed default requests
type SimilarityConfigurationLoader interface {
	// LoadCompareConfig returns a compare request seeded from configuration.
	// An empty path means upward discovery from the working directory.
	LoadCompareConfig(path string) (*CompareRequest, error)

	// LoadMatrixConfig returns a matrix request seeded from configuration
	LoadMatrixConfig(path string) (*MatrixRequest, error)
}

// SimilarityOutputFormatter defines the interface for formatting results
type SimilarityOutputFormatter interface {
	// FormatCompareResponse formats a compare response
	FormatCompareResponse(response *CompareResponse, format OutputFormat, writer io.Writer) error

	// FormatMatrixResponse formats a matrix response
	FormatMatrixResponse(response *MatrixResponse, format OutputFormat, writer io.Writer) error
}
