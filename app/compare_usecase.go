package app

import (
	"context"
	"fmt"
	"time"

	"github.com/WittleWolfie/PyGram/domain"
)

// CompareUseCase orchestrates a single pairwise tree comparison
type CompareUseCase struct {
	service   domain.SimilarityService
	formatter domain.SimilarityOutputFormatter
}

// NewCompareUseCase creates a new compare use case with the given dependencies
func NewCompareUseCase(
	service domain.SimilarityService,
	formatter domain.SimilarityOutputFormatter,
) *CompareUseCase {
	return &CompareUseCase{
		service:   service,
		formatter: formatter,
	}
}

// Execute runs the comparison and writes the formatted result
func (uc *CompareUseCase) Execute(ctx context.Context, req domain.CompareRequest) error {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	response, err := uc.service.Compare(ctx, &req)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	response.Duration = time.Since(startTime).Milliseconds()

	if !req.HasValidOutputWriter() {
		return fmt.Errorf("no valid output writer specified")
	}

	if err := uc.formatter.FormatCompareResponse(response, req.OutputFormat, req.OutputWriter); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return nil
}

// CompareUseCaseBuilder helps build CompareUseCase with dependencies
type CompareUseCaseBuilder struct {
	service   domain.SimilarityService
	formatter domain.SimilarityOutputFormatter
}

// NewCompareUseCaseBuilder creates a new builder for CompareUseCase
func NewCompareUseCaseBuilder() *CompareUseCaseBuilder {
	return &CompareUseCaseBuilder{}
}

// WithService sets the similarity service
func (b *CompareUseCaseBuilder) WithService(service domain.SimilarityService) *CompareUseCaseBuilder {
	b.service = service
	return b
}

// WithFormatter sets the output formatter
func (b *CompareUseCaseBuilder) WithFormatter(formatter domain.SimilarityOutputFormatter) *CompareUseCaseBuilder {
	b.formatter = formatter
	return b
}

// Build creates the CompareUseCase with the configured dependencies
func (b *CompareUseCaseBuilder) Build() (*CompareUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("similarity service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	return NewCompareUseCase(b.service, b.formatter), nil
}
