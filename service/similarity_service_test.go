package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WittleWolfie/PyGram/domain"
)

func compareRequest(left, right string) *domain.CompareRequest {
	req := domain.DefaultCompareRequest()
	req.LeftTree = left
	req.RightTree = right
	return req
}

func TestCompare(t *testing.T) {
	service := NewSimilarityService()
	ctx := context.Background()

	t.Run("inline trees", func(t *testing.T) {
		resp, err := service.Compare(ctx, compareRequest("a(a(e,b),b,c)", "a(a(e,b),b,x)"))
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.P)
		assert.Equal(t, 3, resp.Q)
		assert.Equal(t, 13, resp.Left.Grams)
		assert.Equal(t, 13, resp.Right.Grams)
		assert.InDelta(t, 0.31, roundTo(resp.Distance, 2), 1e-9)
		assert.InDelta(t, 1.0, resp.Distance+resp.Similarity, 1e-12)
	})

	t.Run("identical trees", func(t *testing.T) {
		resp, err := service.Compare(ctx, compareRequest("a(b,c(d))", "a(b,c(d))"))
		require.NoError(t, err)

		assert.Zero(t, resp.Distance)
		assert.Equal(t, 1.0, resp.Similarity)
		assert.Equal(t, resp.Left.Grams, resp.SharedGrams)
	})

	t.Run("tree files", func(t *testing.T) {
		dir := t.TempDir()
		left := filepath.Join(dir, "left.tree")
		right := filepath.Join(dir, "right.tree")
		require.NoError(t, os.WriteFile(left, []byte("a(b,c)"), 0o644))
		require.NoError(t, os.WriteFile(right, []byte("a(b,c)"), 0o644))

		resp, err := service.Compare(ctx, compareRequest(left, right))
		require.NoError(t, err)

		assert.Zero(t, resp.Distance)
		assert.Equal(t, "left.tree", resp.Left.Source)
		assert.Equal(t, "right.tree", resp.Right.Source)
	})

	t.Run("profiles included on request", func(t *testing.T) {
		req := compareRequest("a(b)", "a(b)")
		req.ShowProfiles = true

		resp, err := service.Compare(ctx, req)
		require.NoError(t, err)

		assert.Len(t, resp.LeftProfile, resp.Left.Grams)
		assert.Contains(t, resp.LeftProfile, "(a, b, *, *, *)")
	})

	t.Run("invalid notation", func(t *testing.T) {
		_, err := service.Compare(ctx, compareRequest("a(b", "a"))
		require.Error(t, err)

		var derr domain.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, domain.ErrCodeParseError, derr.Code)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		req := compareRequest("a", "b")
		req.P = 0

		_, err := service.Compare(ctx, req)
		require.Error(t, err)

		var derr domain.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, domain.ErrCodeInvalidParameter, derr.Code)
	})
}

func TestComputeMatrix(t *testing.T) {
	service := NewSimilarityService()
	ctx := context.Background()

	writeTrees := func(t *testing.T, trees map[string]string) string {
		dir := t.TempDir()
		for name, notation := range trees {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(notation), 0o644))
		}
		return dir
	}

	matrixRequest := func(dir string) *domain.MatrixRequest {
		req := domain.DefaultMatrixRequest()
		req.Paths = []string{dir}
		return req
	}

	t.Run("pairwise distances", func(t *testing.T) {
		dir := writeTrees(t, map[string]string{
			"a.tree": "a(a(e,b),b,c)",
			"b.tree": "a(a(e,b),b,x)",
			"c.tree": "a(a(e,b),b,c)",
		})

		resp, err := service.ComputeMatrix(ctx, matrixRequest(dir))
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Len(t, resp.Trees, 3)
		require.Len(t, resp.Pairs, 3)

		stats := resp.Statistics
		require.NotNil(t, stats)
		assert.Equal(t, 3, stats.TreesCompared)
		assert.Equal(t, 3, stats.PairsCompared)
		assert.Equal(t, 3, stats.PairsReported)
		assert.Zero(t, stats.MinDistance)
		assert.InDelta(t, 0.31, roundTo(stats.MaxDistance, 2), 1e-9)

		// Default sort is by ascending distance, so the identical pair
		// comes first.
		first := resp.Pairs[0]
		assert.Zero(t, first.Distance)
		assert.Equal(t, "a.tree", filepath.Base(first.Left))
		assert.Equal(t, "c.tree", filepath.Base(first.Right))
	})

	t.Run("threshold filters reported pairs", func(t *testing.T) {
		dir := writeTrees(t, map[string]string{
			"a.tree": "a(a(e,b),b,c)",
			"b.tree": "a(a(e,b),b,x)",
			"c.tree": "a(a(e,b),b,c)",
		})

		req := matrixRequest(dir)
		req.Threshold = 0.1

		resp, err := service.ComputeMatrix(ctx, req)
		require.NoError(t, err)

		require.Len(t, resp.Pairs, 1)
		assert.Zero(t, resp.Pairs[0].Distance)
		assert.Equal(t, 3, resp.Statistics.PairsCompared)
		assert.Equal(t, 1, resp.Statistics.PairsReported)
	})

	t.Run("sort by name", func(t *testing.T) {
		dir := writeTrees(t, map[string]string{
			"a.tree": "x(y)",
			"b.tree": "x(z)",
			"c.tree": "x(y)",
		})

		req := matrixRequest(dir)
		req.SortBy = domain.SortByName

		resp, err := service.ComputeMatrix(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Pairs, 3)

		assert.True(t, resp.Pairs[0].Left <= resp.Pairs[1].Left)
		assert.True(t, resp.Pairs[1].Left <= resp.Pairs[2].Left)
	})

	t.Run("canceled context", func(t *testing.T) {
		dir := writeTrees(t, map[string]string{
			"a.tree": "x(y)",
			"b.tree": "x(z)",
		})

		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.ComputeMatrix(canceled, matrixRequest(dir))
		assert.Error(t, err)
	})

	t.Run("malformed tree file", func(t *testing.T) {
		dir := writeTrees(t, map[string]string{
			"a.tree":   "x(y)",
			"bad.tree": "x(y",
		})

		_, err := service.ComputeMatrix(ctx, matrixRequest(dir))
		require.Error(t, err)

		var derr domain.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, domain.ErrCodeParseError, derr.Code)
	})

	t.Run("invalid threshold", func(t *testing.T) {
		req := domain.DefaultMatrixRequest()
		req.Threshold = 1.5

		_, err := service.ComputeMatrix(ctx, req)
		assert.Error(t, err)
	})
}
