package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCompareRequest() *CompareRequest {
	req := DefaultCompareRequest()
	req.LeftTree = "a(b,c)"
	req.RightTree = "a(b,x)"
	return req
}

func TestCompareRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CompareRequest)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(r *CompareRequest) {}, wantErr: false},
		{name: "missing left tree", mutate: func(r *CompareRequest) { r.LeftTree = "" }, wantErr: true},
		{name: "missing right tree", mutate: func(r *CompareRequest) { r.RightTree = "" }, wantErr: true},
		{name: "zero p", mutate: func(r *CompareRequest) { r.P = 0 }, wantErr: true},
		{name: "negative q", mutate: func(r *CompareRequest) { r.Q = -1 }, wantErr: true},
		{name: "bad format", mutate: func(r *CompareRequest) { r.OutputFormat = "xml" }, wantErr: true},
		{name: "yaml format", mutate: func(r *CompareRequest) { r.OutputFormat = OutputFormatYAML }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCompareRequest()
			tt.mutate(req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatrixRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MatrixRequest)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(r *MatrixRequest) {}, wantErr: false},
		{name: "empty paths", mutate: func(r *MatrixRequest) { r.Paths = nil }, wantErr: true},
		{name: "zero q", mutate: func(r *MatrixRequest) { r.Q = 0 }, wantErr: true},
		{name: "threshold above one", mutate: func(r *MatrixRequest) { r.Threshold = 1.5 }, wantErr: true},
		{name: "negative threshold", mutate: func(r *MatrixRequest) { r.Threshold = -0.1 }, wantErr: true},
		{name: "bad sort", mutate: func(r *MatrixRequest) { r.SortBy = "age" }, wantErr: true},
		{name: "sort by name", mutate: func(r *MatrixRequest) { r.SortBy = SortByName }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultMatrixRequest()
			tt.mutate(req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDomainError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewAnalysisError("profiling failed", cause)

	assert.Contains(t, err.Error(), "ANALYSIS_ERROR")
	assert.Contains(t, err.Error(), "profiling failed")
	assert.ErrorIs(t, err, cause)

	bare := NewValidationError("p must be >= 1")
	assert.Contains(t, bare.Error(), "INVALID_PARAMETER")
}

func TestOutputFormat_IsValid(t *testing.T) {
	assert.True(t, OutputFormatText.IsValid())
	assert.True(t, OutputFormatJSON.IsValid())
	assert.True(t, OutputFormatCSV.IsValid())
	assert.False(t, OutputFormat("html").IsValid())
}
