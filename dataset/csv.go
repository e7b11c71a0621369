package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNoData is returned when a CSV source contains no data rows.
	ErrNoData = errors.New("no data found in CSV")
	// ErrColumnNotFound is returned when the requested column is not in the header.
	ErrColumnNotFound = errors.New("column not found")
)

// CSVOptions holds options for loading a column from CSV.
type CSVOptions struct {
	Column      string   // Header name of the column to load (default: last column)
	ColumnIndex int      // Zero-based column index, used when HasHeader is false
	HasHeader   bool     // Whether the first row is a header (default: true)
	Delimiter   rune     // Field delimiter (default: ',')
	SkipRows    int      // Number of rows to skip before the header
	NAValues    []string // Cells treated as missing (default: "NA", "null")
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
		NAValues:  []string{"NA", "null"},
	}
}

// LoadColumnFile loads a single column from a CSV file.
func LoadColumnFile(filename string, opts *CSVOptions) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cells, err := LoadColumn(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cells, nil
}

// LoadColumn reads one column from CSV data and returns its trimmed cells
// in row order. Cells listed in opts.NAValues are returned as empty strings
// so they read as missing tokens. Rows too short to hold the column are
// returned as empty cells as well. Selecting a column by name requires
// opts.HasHeader.
func LoadColumn(r io.Reader, opts *CSVOptions) ([]string, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	if !opts.HasHeader && opts.Column != "" {
		return nil, fmt.Errorf("%w: %q needs a header row", ErrColumnNotFound, opts.Column)
	}

	idx := opts.ColumnIndex
	if opts.HasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoData
		}
		if err != nil {
			return nil, err
		}
		idx, err = columnIndex(header, opts.Column)
		if err != nil {
			return nil, err
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: index %d", ErrColumnNotFound, idx)
	}

	na := make(map[string]struct{}, len(opts.NAValues))
	for _, v := range opts.NAValues {
		na[v] = struct{}{}
	}

	var cells []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var cell string
		if idx < len(record) {
			cell = strings.TrimSpace(record[idx])
		}
		if _, ok := na[cell]; ok {
			cell = ""
		}
		cells = append(cells, cell)
	}

	if len(cells) == 0 {
		return nil, ErrNoData
	}
	return cells, nil
}

// columnIndex finds column in header. An empty name selects the last column.
func columnIndex(header []string, column string) (int, error) {
	if column == "" {
		return len(header) - 1, nil
	}
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}
