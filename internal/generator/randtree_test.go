package generator

import (
	"strings"
	"testing"

	"github.com/WittleWolfie/PyGram/internal/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_Deterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 99

	tree1 := Random(opts)
	tree2 := Random(opts)

	assert.Equal(t, tree1.Size(), tree2.Size())

	profile1, err := analyzer.BuildProfile(tree1, 2, 3)
	require.NoError(t, err)
	profile2, err := analyzer.BuildProfile(tree2, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, profile1.EditDistance(profile2))
}

func TestRandom_DifferentSeedsDiffer(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	tree1 := Random(opts)
	opts.Seed = 2
	tree2 := Random(opts)

	profile1, err := analyzer.BuildProfile(tree1, 2, 3)
	require.NoError(t, err)
	profile2, err := analyzer.BuildProfile(tree2, 2, 3)
	require.NoError(t, err)
	assert.Greater(t, profile1.EditDistance(profile2), 0.0)
}

func TestRandom_RespectsBounds(t *testing.T) {
	opts := Options{Depth: 5, Width: 3, Alphabet: "ab", LabelLength: 4, Seed: 7}
	tree := Random(opts)

	assert.Equal(t, "root", tree.Label)
	assert.LessOrEqual(t, tree.Height(), opts.Depth-1)
	assert.GreaterOrEqual(t, tree.Height(), 1)

	var check func(n *analyzer.TreeNode, depth int)
	check = func(n *analyzer.TreeNode, depth int) {
		if depth > 0 {
			assert.Len(t, n.Label, opts.LabelLength)
			for _, c := range n.Label {
				assert.True(t, strings.ContainsRune(opts.Alphabet, c))
			}
		}
		if depth < opts.Depth-1 {
			assert.GreaterOrEqual(t, len(n.Children), 1)
			assert.LessOrEqual(t, len(n.Children), opts.Width+1)
		} else {
			assert.True(t, n.IsLeaf())
		}
		for _, child := range n.Children {
			check(child, depth+1)
		}
	}
	check(tree, 0)
}

func TestRandom_SingleLevel(t *testing.T) {
	tree := Random(Options{Depth: 1, Width: 2, Seed: 3})
	assert.True(t, tree.IsLeaf())
	assert.Equal(t, 1, tree.Size())
}

func TestRandom_SanitizesOptions(t *testing.T) {
	tree := Random(Options{Depth: -2, Width: 0, LabelLength: 0})
	assert.Equal(t, 1, tree.Size())
}
