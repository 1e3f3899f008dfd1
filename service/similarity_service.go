package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/WittleWolfie/PyGram/domain"
	"github.com/WittleWolfie/PyGram/internal/analyzer"
)

// SimilarityServiceImpl implements the domain.SimilarityService interface on
// top of the pq-gram analyzer.
type SimilarityServiceImpl struct {
	reader   domain.TreeReader
	progress domain.ProgressReporter
}

// NewSimilarityService creates a similarity service with the default tree
// reader and no progress reporting.
func NewSimilarityService() *SimilarityServiceImpl {
	return &SimilarityServiceImpl{
		reader: NewTreeReader(),
	}
}

// NewSimilarityServiceWithReader creates a similarity service with a custom
// tree reader.
func NewSimilarityServiceWithReader(reader domain.TreeReader) *SimilarityServiceImpl {
	return &SimilarityServiceImpl{
		reader: reader,
	}
}

// SetProgressReporter attaches a progress reporter used during matrix runs.
func (s *SimilarityServiceImpl) SetProgressReporter(progress domain.ProgressReporter) {
	s.progress = progress
}

// Compare compares two trees and returns their normalized pq-gram distance.
func (s *SimilarityServiceImpl) Compare(ctx context.Context, req *domain.CompareRequest) (*domain.CompareResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	leftTree, err := s.resolveTree(req.LeftTree)
	if err != nil {
		return nil, err
	}
	rightTree, err := s.resolveTree(req.RightTree)
	if err != nil {
		return nil, err
	}

	leftProfile, err := analyzer.BuildProfile(leftTree, req.P, req.Q)
	if err != nil {
		return nil, mapAnalyzerError(req.LeftTree, err)
	}
	rightProfile, err := analyzer.BuildProfile(rightTree, req.P, req.Q)
	if err != nil {
		return nil, mapAnalyzerError(req.RightTree, err)
	}

	distance := leftProfile.EditDistance(rightProfile)

	response := &domain.CompareResponse{
		Left:        treeInfo(req.LeftTree, leftTree, leftProfile),
		Right:       treeInfo(req.RightTree, rightTree, rightProfile),
		P:           req.P,
		Q:           req.Q,
		Distance:    distance,
		Similarity:  1.0 - distance,
		SharedGrams: leftProfile.Overlap(rightProfile),
		Success:     true,
	}

	if req.ShowProfiles {
		response.LeftProfile = renderProfile(leftProfile)
		response.RightProfile = renderProfile(rightProfile)
	}

	return response, nil
}

// ComputeMatrix computes pairwise distances over a set of tree files. Pairs
// are compared sequentially; the context is checked between comparisons.
func (s *SimilarityServiceImpl) ComputeMatrix(ctx context.Context, req *domain.MatrixRequest) (*domain.MatrixResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	files, err := s.reader.CollectTreeFiles(req.Paths, req.Recursive, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	trees := make([]*domain.TreeInfo, 0, len(files))
	profiles := make([]*analyzer.Profile, 0, len(files))
	for _, file := range files {
		tree, err := s.reader.ReadTreeFile(file)
		if err != nil {
			return nil, err
		}
		profile, err := analyzer.BuildProfile(tree, req.P, req.Q)
		if err != nil {
			return nil, mapAnalyzerError(file, err)
		}
		trees = append(trees, treeInfo(file, tree, profile))
		profiles = append(profiles, profile)
	}

	n := len(profiles)
	totalPairs := n * (n - 1) / 2
	if s.progress != nil {
		s.progress.Initialize(totalPairs)
		s.progress.Start()
		defer s.progress.Close()
	}

	stats := &domain.MatrixStatistics{TreesCompared: n}
	var pairs []*domain.TreePair
	var distanceSum float64
	done := 0

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := ctx.Err(); err != nil {
				return nil, domain.NewAnalysisError("matrix computation canceled", err)
			}

			distance := profiles[i].EditDistance(profiles[j])

			stats.PairsCompared++
			distanceSum += distance
			if stats.PairsCompared == 1 || distance < stats.MinDistance {
				stats.MinDistance = distance
			}
			if distance > stats.MaxDistance {
				stats.MaxDistance = distance
			}

			if distance <= req.Threshold {
				pairs = append(pairs, &domain.TreePair{
					Left:       trees[i].Source,
					Right:      trees[j].Source,
					Distance:   distance,
					Similarity: 1.0 - distance,
				})
			}

			done++
			if s.progress != nil {
				s.progress.Update(done, totalPairs)
			}
		}
	}

	if stats.PairsCompared > 0 {
		stats.AverageDistance = distanceSum / float64(stats.PairsCompared)
	}
	stats.PairsReported = len(pairs)

	sortPairs(pairs, req.SortBy)
	if s.progress != nil {
		s.progress.Complete(true)
	}

	return &domain.MatrixResponse{
		Trees:      trees,
		Pairs:      pairs,
		Statistics: stats,
		P:          req.P,
		Q:          req.Q,
		Success:    true,
	}, nil
}

// resolveTree resolves a tree argument: an existing file is read and parsed,
// anything else is treated as inline notation.
func (s *SimilarityServiceImpl) resolveTree(source string) (*analyzer.TreeNode, error) {
	if s.reader.IsTreeFile(source) {
		return s.reader.ReadTreeFile(source)
	}

	tree, err := s.reader.ParseTree(source)
	if err != nil {
		return nil, domain.NewParseError(source, errorCause(err))
	}
	return tree, nil
}

// errorCause unwraps a domain parse error produced by the reader so it is
// not double-wrapped.
func errorCause(err error) error {
	var derr domain.DomainError
	if errors.As(err, &derr) && derr.Cause != nil {
		return derr.Cause
	}
	return err
}

// treeInfo summarizes one profiled tree, using the base name for file
// sources and the notation itself for inline trees.
func treeInfo(source string, tree *analyzer.TreeNode, profile *analyzer.Profile) *domain.TreeInfo {
	name := source
	if filepath.Ext(source) != "" || filepath.Base(source) != source {
		name = filepath.Base(source)
	}
	return &domain.TreeInfo{
		Source: name,
		Label:  tree.Label,
		Nodes:  tree.Size(),
		Height: tree.Height(),
		Grams:  profile.Len(),
	}
}

// renderProfile renders a profile's grams in emission order.
func renderProfile(profile *analyzer.Profile) []string {
	grams := profile.Grams()
	out := make([]string, len(grams))
	for i, g := range grams {
		out[i] = g.String()
	}
	return out
}

// sortPairs orders reported pairs according to the requested criteria.
func sortPairs(pairs []*domain.TreePair, criteria domain.SortCriteria) {
	switch criteria {
	case domain.SortBySimilarity:
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].Similarity > pairs[j].Similarity
		})
	case domain.SortByName:
		sort.SliceStable(pairs, func(i, j int) bool {
			if pairs[i].Left != pairs[j].Left {
				return pairs[i].Left < pairs[j].Left
			}
			return pairs[i].Right < pairs[j].Right
		})
	default:
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].Distance < pairs[j].Distance
		})
	}
}

// mapAnalyzerError converts core analyzer errors into domain errors.
func mapAnalyzerError(source string, err error) error {
	switch {
	case errors.Is(err, analyzer.ErrInvalidParameter):
		return domain.NewInvalidParameterError(fmt.Sprintf("invalid profile parameters for %s", source), err)
	case errors.Is(err, analyzer.ErrMalformedTree):
		return domain.NewMalformedTreeError(fmt.Sprintf("malformed tree: %s", source), err)
	default:
		return domain.NewAnalysisError(fmt.Sprintf("failed to profile tree: %s", source), err)
	}
}
