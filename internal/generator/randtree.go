// Package generator builds pseudo-random labeled trees for tests, demos,
// and the gen command.
package generator

import (
	"math/rand"
	"strings"

	"github.com/WittleWolfie/PyGram/internal/analyzer"
)

// Options controls random tree generation.
type Options struct {
	// Depth is the number of levels including the root. Values below 1 are
	// treated as 1.
	Depth int

	// Width bounds the children per node: each non-leaf gets between 1 and
	// Width+1 children. Values below 1 are treated as 1.
	Width int

	// Alphabet is the character set labels are drawn from. Defaults to the
	// lowercase latin alphabet.
	Alphabet string

	// LabelLength is the number of characters per generated label. Values
	// below 1 are treated as 1.
	LabelLength int

	// Seed seeds the RNG so runs are reproducible.
	Seed int64
}

// DefaultOptions returns the generation defaults used by the gen command.
func DefaultOptions() Options {
	return Options{
		Depth:       4,
		Width:       2,
		Alphabet:    "abcdefghijklmnopqrstuvwxyz",
		LabelLength: 2,
		Seed:        1,
	}
}

// Random generates a tree level by level: the root is labeled "root", and
// every node on a non-final level receives a random number of children with
// random labels. The same options always produce the same tree.
func Random(opts Options) *analyzer.TreeNode {
	if opts.Depth < 1 {
		opts.Depth = 1
	}
	if opts.Width < 1 {
		opts.Width = 1
	}
	if opts.Alphabet == "" {
		opts.Alphabet = DefaultOptions().Alphabet
	}
	if opts.LabelLength < 1 {
		opts.LabelLength = 1
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	root := analyzer.NewTreeNode("root")
	level := []*analyzer.TreeNode{root}
	for d := 1; d < opts.Depth; d++ {
		var next []*analyzer.TreeNode
		for _, parent := range level {
			kids := 1 + rng.Intn(opts.Width+1)
			for k := 0; k < kids; k++ {
				child := analyzer.NewTreeNode(randomLabel(rng, opts.Alphabet, opts.LabelLength))
				parent.AddKid(child)
				next = append(next, child)
			}
		}
		level = next
	}
	return root
}

func randomLabel(rng *rand.Rand, alphabet string, length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}
