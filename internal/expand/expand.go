// Package expand inflates a sample activity log by replaying its rows under
// other years. The output is synthetic load data for the tracker app.
package expand

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/julianstephens/practicelog/internal/logger"
)

var (
	// ErrEmptyInput is returned when the sample has no header row
	ErrEmptyInput = errors.New("input has no header row")
	// ErrNoTargetYears is returned when there is nothing to expand into
	ErrNoTargetYears = errors.New("no target years")
)

// Options selects the year rewrite. Every data row is emitted once per
// target, with a leading Source year in column 0 replaced by the target.
type Options struct {
	Source  int
	Targets []int
}

// Validate checks that the years are usable as four digit prefixes
func (o Options) Validate() error {
	if len(o.Targets) == 0 {
		return ErrNoTargetYears
	}
	if err := checkYear(o.Source); err != nil {
		return fmt.Errorf("source year: %w", err)
	}
	for _, y := range o.Targets {
		if err := checkYear(y); err != nil {
			return fmt.Errorf("target year: %w", err)
		}
	}
	return nil
}

func checkYear(y int) error {
	if y < 1000 || y > 9999 {
		return fmt.Errorf("%d is not a four digit year", y)
	}
	return nil
}

// Stats describes an expansion
type Stats struct {
	RowsRead    int
	RowsWritten int
	// Unchanged counts rows per pass left as-is for lacking the source prefix
	Unchanged int
	Passes    int
}

// ShiftYear replaces the first occurrence of the source year in the first
// field when that field starts with it. Other fields are left alone.
func ShiftYear(row []string, source, target string) ([]string, bool) {
	if len(row) == 0 || !strings.HasPrefix(row[0], source) {
		return row, false
	}
	out := make([]string, len(row))
	copy(out, row)
	out[0] = strings.Replace(row[0], source, target, 1)
	return out, true
}

// Sample is a sample log held in memory
type Sample struct {
	Header []string
	Rows   [][]string
}

// ReadSample reads the whole sample log. A file with no header row is
// ErrEmptyInput.
func ReadSample(r io.Reader) (*Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read sample: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return &Sample{Header: records[0], Rows: records[1:]}, nil
}

// Write emits the header once and then every sample row once per target
// year, in target order.
func (s *Sample) Write(w io.Writer, opts Options) (Stats, error) {
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(s.Header); err != nil {
		return Stats{}, fmt.Errorf("failed to write header: %w", err)
	}

	stats := Stats{RowsRead: len(s.Rows), Passes: len(opts.Targets)}
	source := strconv.Itoa(opts.Source)
	for _, year := range opts.Targets {
		target := strconv.Itoa(year)
		unchanged := 0
		for _, row := range s.Rows {
			shifted, ok := ShiftYear(row, source, target)
			if !ok {
				unchanged++
			}
			if err := cw.Write(shifted); err != nil {
				return Stats{}, fmt.Errorf("failed to write row: %w", err)
			}
			stats.RowsWritten++
		}
		if unchanged > 0 {
			logger.Debug("Rows passed through without year shift", "source", source, "target", target, "count", unchanged)
		}
		stats.Unchanged += unchanged
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return Stats{}, fmt.Errorf("failed to flush output: %w", err)
	}
	return stats, nil
}

// Expand reads the whole sample from r before writing the expansion to w
func Expand(r io.Reader, w io.Writer, opts Options) (Stats, error) {
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}
	sample, err := ReadSample(r)
	if err != nil {
		return Stats{}, err
	}
	return sample.Write(w, opts)
}

// ExpandFile runs an expansion from the input path to the output path. The
// input is fully read and closed before the output is created, so both may
// name the same file.
func ExpandFile(input, output string, opts Options) (Stats, error) {
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}

	sample, err := readSampleFile(input)
	if err != nil {
		return Stats{}, err
	}

	out, err := os.Create(output)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	stats, err := sample.Write(out, opts)
	if err != nil {
		return Stats{}, err
	}
	if err := out.Close(); err != nil {
		return Stats{}, fmt.Errorf("failed to close %s: %w", output, err)
	}

	logger.Info("Expansion complete", "input", input, "output", output, "rows", stats.RowsWritten, "passes", stats.Passes)
	return stats, nil
}

func readSampleFile(path string) (*Sample, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	return ReadSample(in)
}
