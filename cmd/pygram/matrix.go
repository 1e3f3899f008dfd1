package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WittleWolfie/PyGram/app"
	"github.com/WittleWolfie/PyGram/domain"
	"github.com/WittleWolfie/PyGram/service"
)

// MatrixCommand handles the matrix CLI command
type MatrixCommand struct {
	p               int
	q               int
	configFile      string
	recursive       bool
	includePatterns []string
	excludePatterns []string
	threshold       float64
	sortBy          string

	// Output format flags (only one should be true)
	json bool
	yaml bool
	csv  bool
}

// NewMatrixCommand creates a new matrix command
func NewMatrixCommand() *MatrixCommand {
	return &MatrixCommand{
		recursive: true,
		threshold: 1.0,
		sortBy:    "distance",
	}
}

// CreateCobraCommand creates the Cobra command for matrix computation
func (m *MatrixCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix [paths...]",
		Short: "Compute pairwise pq-gram distances over tree files",
		Long: `Compute the pairwise pq-gram distance between every tree file
found under the given paths.

Each file holds one tree in bracket notation. Pairs with distance
above the threshold are computed but not reported, which keeps the
output focused on near matches.

Examples:
  # All pairs under the current directory
  pygram matrix

  # Only near-duplicates, sorted by similarity
  pygram matrix --threshold 0.2 --sort similarity trees/

  # Custom file pattern, CSV output
  pygram matrix --include "*.ast" --csv corpus/`,
		RunE: m.runMatrix,
	}

	cmd.Flags().IntVarP(&m.p, "p", "p", 0, "Ancestor window size (>= 1)")
	cmd.Flags().IntVarP(&m.q, "q", "q", 0, "Sibling window size (>= 1)")
	cmd.Flags().StringVarP(&m.configFile, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVarP(&m.recursive, "recursive", "r", m.recursive, "Recursively scan directories")
	cmd.Flags().StringSliceVar(&m.includePatterns, "include", nil, "File patterns to include")
	cmd.Flags().StringSliceVar(&m.excludePatterns, "exclude", nil, "File patterns to exclude")
	cmd.Flags().Float64VarP(&m.threshold, "threshold", "t", m.threshold, "Maximum distance to report (0.0-1.0)")
	cmd.Flags().StringVar(&m.sortBy, "sort", m.sortBy, "Sort results by: distance, similarity, name")

	cmd.Flags().BoolVar(&m.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&m.yaml, "yaml", false, "Output as YAML")
	cmd.Flags().BoolVar(&m.csv, "csv", false, "Output as CSV")

	return cmd
}

// runMatrix executes the matrix command
func (m *MatrixCommand) runMatrix(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	request, err := m.createMatrixRequest(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to create matrix request: %w", err)
	}

	similarityService := service.NewSimilarityService()
	similarityService.SetProgressReporter(service.NewProgressManager())

	useCase, err := app.NewMatrixUseCaseBuilder().
		WithService(similarityService).
		WithReader(service.NewTreeReader()).
		WithFormatter(service.NewSimilarityFormatter()).
		Build()
	if err != nil {
		return fmt.Errorf("failed to create matrix use case: %w", err)
	}

	if err := useCase.Execute(context.Background(), *request); err != nil {
		return fmt.Errorf("matrix computation failed: %w", err)
	}
	return nil
}

// createMatrixRequest builds the request from config and CLI flags.
// Explicitly set flags override configuration values.
func (m *MatrixCommand) createMatrixRequest(cmd *cobra.Command, paths []string) (*domain.MatrixRequest, error) {
	configLoader := service.NewSimilarityConfigLoader()
	request, err := configLoader.LoadMatrixConfig(m.configFile)
	if err != nil {
		return nil, err
	}

	explicitFlags := GetExplicitFlags(cmd)
	if explicitFlags["p"] {
		request.P = m.p
	}
	if explicitFlags["q"] {
		request.Q = m.q
	}
	if explicitFlags["recursive"] {
		request.Recursive = m.recursive
	}
	if explicitFlags["include"] {
		request.IncludePatterns = m.includePatterns
	}
	if explicitFlags["exclude"] {
		request.ExcludePatterns = m.excludePatterns
	}
	if explicitFlags["threshold"] {
		request.Threshold = m.threshold
	}
	if explicitFlags["sort"] {
		request.SortBy = domain.SortCriteria(m.sortBy)
	}
	if !request.SortBy.IsValid() {
		return nil, fmt.Errorf("unsupported sort criteria: %s (supported: distance, similarity, name)", request.SortBy)
	}

	format, err := determineOutputFormat(request.OutputFormat, m.json, m.yaml, m.csv)
	if err != nil {
		return nil, err
	}

	request.Paths = paths
	request.OutputFormat = format
	request.OutputWriter = os.Stdout
	return request, nil
}

// NewMatrixCmd creates and returns the matrix cobra command
func NewMatrixCmd() *cobra.Command {
	matrixCommand := NewMatrixCommand()
	return matrixCommand.CreateCobraCommand()
}
