package app

import (
	"context"
	"fmt"
	"time"

	"github.com/WittleWolfie/PyGram/domain"
)

// MatrixUseCase orchestrates pairwise distance matrix computations
type MatrixUseCase struct {
	service   domain.SimilarityService
	reader    domain.TreeReader
	formatter domain.SimilarityOutputFormatter
}

// NewMatrixUseCase creates a new matrix use case with the given dependencies
func NewMatrixUseCase(
	service domain.SimilarityService,
	reader domain.TreeReader,
	formatter domain.SimilarityOutputFormatter,
) *MatrixUseCase {
	return &MatrixUseCase{
		service:   service,
		reader:    reader,
		formatter: formatter,
	}
}

// Execute runs the matrix computation and writes the formatted result
func (uc *MatrixUseCase) Execute(ctx context.Context, req domain.MatrixRequest) error {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	files, err := uc.reader.CollectTreeFiles(req.Paths, req.Recursive, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}

	if len(files) == 0 {
		return uc.outputEmptyResults(req)
	}

	response, err := uc.service.ComputeMatrix(ctx, &req)
	if err != nil {
		return fmt.Errorf("matrix computation failed: %w", err)
	}

	response.Duration = time.Since(startTime).Milliseconds()

	if !req.HasValidOutputWriter() {
		return fmt.Errorf("no valid output writer specified")
	}

	if err := uc.formatter.FormatMatrixResponse(response, req.OutputFormat, req.OutputWriter); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return nil
}

// outputEmptyResults outputs empty results when no tree files are found
func (uc *MatrixUseCase) outputEmptyResults(req domain.MatrixRequest) error {
	emptyResponse := &domain.MatrixResponse{
		Trees:      []*domain.TreeInfo{},
		Pairs:      []*domain.TreePair{},
		Statistics: &domain.MatrixStatistics{},
		P:          req.P,
		Q:          req.Q,
		Success:    true,
	}

	if req.HasValidOutputWriter() {
		return uc.formatter.FormatMatrixResponse(emptyResponse, req.OutputFormat, req.OutputWriter)
	}

	return nil
}

// MatrixUseCaseBuilder helps build MatrixUseCase with dependencies
type MatrixUseCaseBuilder struct {
	service   domain.SimilarityService
	reader    domain.TreeReader
	formatter domain.SimilarityOutputFormatter
}

// NewMatrixUseCaseBuilder creates a new builder for MatrixUseCase
func NewMatrixUseCaseBuilder() *MatrixUseCaseBuilder {
	return &MatrixUseCaseBuilder{}
}

// WithService sets the similarity service
func (b *MatrixUseCaseBuilder) WithService(service domain.SimilarityService) *MatrixUseCaseBuilder {
	b.service = service
	return b
}

// WithReader sets the tree reader
func (b *MatrixUseCaseBuilder) WithReader(reader domain.TreeReader) *MatrixUseCaseBuilder {
	b.reader = reader
	return b
}

// WithFormatter sets the output formatter
func (b *MatrixUseCaseBuilder) WithFormatter(formatter domain.SimilarityOutputFormatter) *MatrixUseCaseBuilder {
	b.formatter = formatter
	return b
}

// Build creates the MatrixUseCase with the configured dependencies
func (b *MatrixUseCaseBuilder) Build() (*MatrixUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("similarity service is required")
	}
	if b.reader == nil {
		return nil, fmt.Errorf("tree reader is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	return NewMatrixUseCase(b.service, b.reader, b.formatter), nil
}
