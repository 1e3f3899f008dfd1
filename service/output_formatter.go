package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/WittleWolfie/PyGram/domain"
)

// SimilarityFormatter implements the domain.SimilarityOutputFormatter
// interface
type SimilarityFormatter struct{}

// NewSimilarityFormatter creates a new similarity output formatter
func NewSimilarityFormatter() *SimilarityFormatter {
	return &SimilarityFormatter{}
}

// FormatCompareResponse formats a compare response according to the
// specified format
func (f *SimilarityFormatter) FormatCompareResponse(response *domain.CompareResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatText:
		return f.formatCompareAsText(response, writer)
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatCSV:
		return f.formatCompareAsCSV(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// FormatMatrixResponse formats a matrix response according to the specified
// format
func (f *SimilarityFormatter) FormatMatrixResponse(response *domain.MatrixResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatText:
		return f.formatMatrixAsText(response, writer)
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatCSV:
		return f.formatMatrixAsCSV(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// formatCompareAsText formats the compare response as human-readable text
func (f *SimilarityFormatter) formatCompareAsText(response *domain.CompareResponse, writer io.Writer) error {
	if !response.Success {
		fmt.Fprintf(writer, "Comparison failed: %s\n", response.Error)
		return nil
	}

	fmt.Fprint(writer, FormatMainHeader("PQ-Gram Comparison"))

	fmt.Fprintf(writer, "Gram shape: p=%d, q=%d\n\n", response.P, response.Q)
	f.printTreeInfo(writer, "Left", response.Left)
	f.printTreeInfo(writer, "Right", response.Right)
	fmt.Fprintf(writer, "\n")

	fmt.Fprintf(writer, "Distance:     %.4f\n", response.Distance)
	fmt.Fprintf(writer, "Similarity:   %.4f\n", response.Similarity)
	fmt.Fprintf(writer, "Shared grams: %d\n", response.SharedGrams)

	if len(response.LeftProfile) > 0 {
		fmt.Fprintf(writer, "\n")
		f.printProfile(writer, "Left profile", response.LeftProfile)
		f.printProfile(writer, "Right profile", response.RightProfile)
	}

	return nil
}

// printTreeInfo prints one tree summary line
func (f *SimilarityFormatter) printTreeInfo(writer io.Writer, side string, info *domain.TreeInfo) {
	if info == nil {
		return
	}
	fmt.Fprintf(writer, "%-6s %s (root: %s, %d nodes, height %d, %d grams)\n",
		side+":", info.Source, info.Label, info.Nodes, info.Height, info.Grams)
}

// printProfile prints a profile's grams, one per line
func (f *SimilarityFormatter) printProfile(writer io.Writer, title string, grams []string) {
	fmt.Fprintf(writer, "%s (%d grams):\n", title, len(grams))
	for _, gram := range grams {
		fmt.Fprintf(writer, "  %s\n", gram)
	}
}

// formatCompareAsCSV formats the compare response as a single CSV record
func (f *SimilarityFormatter) formatCompareAsCSV(response *domain.CompareResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)

	header := []string{"left", "right", "p", "q", "distance", "similarity", "shared_grams"}
	if err := w.Write(header); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}

	record := []string{
		response.Left.Source,
		response.Right.Source,
		strconv.Itoa(response.P),
		strconv.Itoa(response.Q),
		formatFloat(response.Distance),
		formatFloat(response.Similarity),
		strconv.Itoa(response.SharedGrams),
	}
	if err := w.Write(record); err != nil {
		return domain.NewOutputError("failed to write CSV record", err)
	}

	w.Flush()
	return w.Error()
}

// formatMatrixAsText formats the matrix response as human-readable text
func (f *SimilarityFormatter) formatMatrixAsText(response *domain.MatrixResponse, writer io.Writer) error {
	if !response.Success {
		fmt.Fprintf(writer, "Matrix computation failed: %s\n", response.Error)
		return nil
	}

	fmt.Fprint(writer, FormatMainHeader("PQ-Gram Distance Matrix"))
	fmt.Fprintf(writer, "Gram shape: p=%d, q=%d\n\n", response.P, response.Q)

	if stats := response.Statistics; stats != nil {
		fmt.Fprint(writer, FormatSectionHeader("Summary"))
		fmt.Fprintf(writer, "  Trees compared: %d\n", stats.TreesCompared)
		fmt.Fprintf(writer, "  Pairs compared: %d\n", stats.PairsCompared)
		fmt.Fprintf(writer, "  Pairs reported: %d\n", stats.PairsReported)
		if stats.PairsCompared > 0 {
			fmt.Fprintf(writer, "  Min distance: %.4f\n", stats.MinDistance)
			fmt.Fprintf(writer, "  Max distance: %.4f\n", stats.MaxDistance)
			fmt.Fprintf(writer, "  Avg distance: %.4f\n", stats.AverageDistance)
		}
		fmt.Fprintf(writer, "\n")
	}

	if len(response.Pairs) == 0 {
		fmt.Fprintf(writer, "No pairs within threshold.\n")
		return nil
	}

	fmt.Fprint(writer, FormatSectionHeader("Pairs"))
	for i, pair := range response.Pairs {
		if pair == nil {
			continue
		}
		fmt.Fprintf(writer, "%3d. %s <-> %s  distance: %.4f  similarity: %.4f\n",
			i+1, pair.Left, pair.Right, pair.Distance, pair.Similarity)
	}

	return nil
}

// formatMatrixAsCSV formats the matrix pairs as CSV records
func (f *SimilarityFormatter) formatMatrixAsCSV(response *domain.MatrixResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)

	header := []string{"left", "right", "distance", "similarity"}
	if err := w.Write(header); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}

	for _, pair := range response.Pairs {
		if pair == nil {
			continue
		}
		record := []string{
			pair.Left,
			pair.Right,
			formatFloat(pair.Distance),
			formatFloat(pair.Similarity),
		}
		if err := w.Write(record); err != nil {
			return domain.NewOutputError("failed to write CSV record", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
