package main

import (
	"os"

	"github.com/WittleWolfie/PyGram/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pygram",
	Short: "Approximate tree edit distance with pq-grams",
	Long: `pygram computes an approximate tree edit distance between labeled
ordered trees using pq-gram profiles.

A pq-gram profile captures each node's ancestor chain together with a
sliding window over its children. Comparing the profiles of two trees
gives a normalized distance in [0, 1] that approximates the true edit
distance at a fraction of its cost.

Trees are written in bracket notation:
  a(b,c(d,e))`,
	Version: version.Short(),
}

func init() {
	rootCmd.AddCommand(NewCompareCmd())
	rootCmd.AddCommand(NewMatrixCmd())
	rootCmd.AddCommand(NewGenCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
