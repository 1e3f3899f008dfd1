package domain

// OutputFormat represents the output format for results
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// IsValid reports whether the format is one of the supported formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatCSV:
		return true
	default:
		return false
	}
}

// SortCriteria defines how matrix pairs are sorted
type SortCriteria string

const (
	SortByDistance   SortCriteria = "distance"
	SortBySimilarity SortCriteria = "similarity"
	SortByName       SortCriteria = "name"
)

// IsValid reports whether the sort criteria is supported.
func (s SortCriteria) IsValid() bool {
	switch s {
	case SortByDistance, SortBySimilarity, SortByName:
		return true
	default:
		return false
	}
}

// ProgressReporter tracks progress of long-running matrix computations.
//
// Implementations live in the service layer.
type ProgressReporter interface {
	// Initialize sets up progress tracking with the maximum value
	Initialize(maxValue int)

	// Start starts the progress display
	Start()

	// Update updates the progress
	Update(processed, total int)

	// Complete marks the progress as completed
	Complete(success bool)

	// IsInteractive returns true if progress should be shown
	IsInteractive() bool

	// Close cleans up any resources
	Close()
}
