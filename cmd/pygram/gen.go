package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/WittleWolfie/PyGram/internal/config"
	"github.com/WittleWolfie/PyGram/internal/generator"
	"github.com/WittleWolfie/PyGram/service"
)

// GenCommand handles the gen CLI command
type GenCommand struct {
	depth       int
	width       int
	alphabet    string
	labelLength int
	seed        int64
	count       int
	output      string
	configFile  string
}

// NewGenCommand creates a new gen command
func NewGenCommand() *GenCommand {
	return &GenCommand{count: 1}
}

// CreateCobraCommand creates the Cobra command for tree generation
func (g *GenCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random trees in bracket notation",
		Long: `Generate pseudo-random labeled trees for experiments and demos.

Trees are printed in bracket notation, one per line, or written to
numbered .tree files with --output. Generation is deterministic for a
given seed; --count produces consecutive seeds so each tree differs.

Examples:
  # One random tree to stdout
  pygram gen

  # A corpus of 20 trees under trees/
  pygram gen --count 20 --output trees/

  # Deeper, bushier trees
  pygram gen --depth 6 --width 4 --seed 7`,
		Args: cobra.NoArgs,
		RunE: g.runGen,
	}

	cmd.Flags().IntVar(&g.depth, "depth", 0, "Number of levels including the root")
	cmd.Flags().IntVar(&g.width, "width", 0, "Maximum extra children per node")
	cmd.Flags().StringVar(&g.alphabet, "alphabet", "", "Character set for labels")
	cmd.Flags().IntVar(&g.labelLength, "label-length", 0, "Characters per label")
	cmd.Flags().Int64Var(&g.seed, "seed", 0, "Random seed")
	cmd.Flags().IntVarP(&g.count, "count", "n", g.count, "Number of trees to generate")
	cmd.Flags().StringVarP(&g.output, "output", "o", "", "Directory to write numbered .tree files to")
	cmd.Flags().StringVarP(&g.configFile, "config", "c", "", "Path to configuration file")

	return cmd
}

// runGen executes the gen command
func (g *GenCommand) runGen(cmd *cobra.Command, args []string) error {
	if g.count < 1 {
		return fmt.Errorf("count must be >= 1")
	}

	opts, err := g.createOptions(cmd)
	if err != nil {
		return err
	}

	if g.output != "" {
		if err := os.MkdirAll(g.output, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", g.output, err)
		}
	}

	for i := 0; i < g.count; i++ {
		treeOpts := opts
		treeOpts.Seed = opts.Seed + int64(i)
		notation := service.FormatTree(generator.Random(treeOpts))

		if g.output == "" {
			fmt.Fprintln(cmd.OutOrStdout(), notation)
			continue
		}

		path := filepath.Join(g.output, fmt.Sprintf("tree_%04d.tree", i+1))
		if err := os.WriteFile(path, []byte(notation+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	if g.output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d tree file(s) to %s\n", g.count, g.output)
	}
	return nil
}

// createOptions builds the generation options from config and CLI flags
func (g *GenCommand) createOptions(cmd *cobra.Command) (generator.Options, error) {
	cfg, err := loadGenerationConfig(g.configFile)
	if err != nil {
		return generator.Options{}, err
	}

	opts := generator.Options{
		Depth:       cfg.Generation.Depth,
		Width:       cfg.Generation.Width,
		Alphabet:    cfg.Generation.Alphabet,
		LabelLength: cfg.Generation.LabelLength,
		Seed:        cfg.Generation.Seed,
	}

	explicitFlags := GetExplicitFlags(cmd)
	if explicitFlags["depth"] {
		opts.Depth = g.depth
	}
	if explicitFlags["width"] {
		opts.Width = g.width
	}
	if explicitFlags["alphabet"] {
		opts.Alphabet = g.alphabet
	}
	if explicitFlags["label-length"] {
		opts.LabelLength = g.labelLength
	}
	if explicitFlags["seed"] {
		opts.Seed = g.seed
	}

	return opts, nil
}

// loadGenerationConfig loads the tool configuration for the generation
// section, from an explicit file when given and by upward discovery otherwise.
func loadGenerationConfig(configFile string) (*config.PygramConfig, error) {
	loader := config.NewTomlConfigLoader()
	if configFile != "" {
		cfg, err := loader.LoadConfigFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		return cfg, nil
	}

	cfg, err := loader.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// NewGenCmd creates and returns the gen cobra command
func NewGenCmd() *cobra.Command {
	genCommand := NewGenCommand()
	return genCommand.CreateCobraCommand()
}
