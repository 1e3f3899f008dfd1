package domain

import (
	"github.com/WittleWolfie/PyGram/internal/constants"
)

// DefaultCompareRequest returns a compare request with default settings.
// Tree inputs are left empty; the caller supplies them.
func DefaultCompareRequest() *CompareRequest {
	return &CompareRequest{
		P:            constants.DefaultP,
		Q:            constants.DefaultQ,
		OutputFormat: OutputFormatText,
		ShowProfiles: false,
	}
}

// DefaultMatrixRequest returns a matrix request with default settings.
func DefaultMatrixRequest() *MatrixRequest {
	return &MatrixRequest{
		Paths:           []string{"."},
		Recursive:       true,
		IncludePatterns: []string{constants.DefaultTreeFilePattern},
		ExcludePatterns: []string{},
		P:               constants.DefaultP,
		Q:               constants.DefaultQ,
		Threshold:       constants.DefaultMatrixThreshold,
		OutputFormat:    OutputFormatText,
		SortBy:          SortByDistance,
	}
}
