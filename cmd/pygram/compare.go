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

// CompareCommand handles the compare CLI command
type CompareCommand struct {
	p            int
	q            int
	configFile   string
	showProfiles bool

	// Output format flags (only one should be true)
	json bool
	yaml bool
	csv  bool
}

// NewCompareCommand creates a new compare command
func NewCompareCommand() *CompareCommand {
	return &CompareCommand{}
}

// CreateCobraCommand creates the Cobra command for tree comparison
func (c *CompareCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Compare two trees with the pq-gram distance",
		Long: `Compare two labeled ordered trees and report their normalized
pq-gram distance.

Each argument is either a path to a tree notation file or inline
bracket notation. Distance 0 means the profiles are identical;
distance 1 means they share no grams.

Examples:
  # Compare two inline trees
  pygram compare "a(b,c)" "a(b,x)"

  # Compare two tree files
  pygram compare left.tree right.tree

  # Wider ancestor window, JSON output
  pygram compare -p 3 --json left.tree right.tree

  # Show the full gram profiles
  pygram compare --show-profiles "a(b)" "a(c)"`,
		Args: cobra.ExactArgs(2),
		RunE: c.runCompare,
	}

	cmd.Flags().IntVarP(&c.p, "p", "p", 0, "Ancestor window size (>= 1)")
	cmd.Flags().IntVarP(&c.q, "q", "q", 0, "Sibling window size (>= 1)")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVar(&c.showProfiles, "show-profiles", false, "Include the gram profiles in the output")

	cmd.Flags().BoolVar(&c.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output as YAML")
	cmd.Flags().BoolVar(&c.csv, "csv", false, "Output as CSV")

	return cmd
}

// runCompare executes the compare command
func (c *CompareCommand) runCompare(cmd *cobra.Command, args []string) error {
	request, err := c.createCompareRequest(cmd, args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to create compare request: %w", err)
	}

	useCase, err := app.NewCompareUseCaseBuilder().
		WithService(service.NewSimilarityService()).
		WithFormatter(service.NewSimilarityFormatter()).
		Build()
	if err != nil {
		return fmt.Errorf("failed to create compare use case: %w", err)
	}

	if err := useCase.Execute(context.Background(), *request); err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	return nil
}

// createCompareRequest builds the request from config and CLI flags.
// Explicitly set flags override configuration values.
func (c *CompareCommand) createCompareRequest(cmd *cobra.Command, left, right string) (*domain.CompareRequest, error) {
	configLoader := service.NewSimilarityConfigLoader()
	request, err := configLoader.LoadCompareConfig(c.configFile)
	if err != nil {
		return nil, err
	}

	explicitFlags := GetExplicitFlags(cmd)
	if explicitFlags["p"] {
		request.P = c.p
	}
	if explicitFlags["q"] {
		request.Q = c.q
	}
	if explicitFlags["show-profiles"] {
		request.ShowProfiles = c.showProfiles
	}

	format, err := determineOutputFormat(request.OutputFormat, c.json, c.yaml, c.csv)
	if err != nil {
		return nil, err
	}

	request.LeftTree = left
	request.RightTree = right
	request.OutputFormat = format
	request.OutputWriter = os.Stdout
	return request, nil
}

// determineOutputFormat resolves the output format from config and flags.
// Format flags are mutually exclusive and take precedence over config.
func determineOutputFormat(configFormat domain.OutputFormat, json, yaml, csv bool) (domain.OutputFormat, error) {
	set := 0
	format := configFormat
	if json {
		set++
		format = domain.OutputFormatJSON
	}
	if yaml {
		set++
		format = domain.OutputFormatYAML
	}
	if csv {
		set++
		format = domain.OutputFormatCSV
	}
	if set > 1 {
		return "", fmt.Errorf("only one of --json, --yaml, --csv may be set")
	}
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %s", configFormat)
	}
	return format, nil
}

// NewCompareCmd creates and returns the compare cobra command
func NewCompareCmd() *cobra.Command {
	compareCommand := NewCompareCommand()
	return compareCommand.CreateCobraCommand()
}
