package convert

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/practicelog/internal/constants"
	"github.com/julianstephens/practicelog/internal/logger"
	"github.com/julianstephens/practicelog/internal/models"
)

// WriteActivities writes the long-format header followed by rows
func WriteActivities(w io.Writer, rows []models.ActivityRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(constants.LongHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Record()); err != nil {
			return fmt.Errorf("failed to write activity: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ConvertFile reads the wide export at input and writes the activity log to
// output. Nothing is written when the export yields no activities.
func ConvertFile(input, output string, opts Options) (Summary, error) {
	in, err := os.Open(input)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	sheet, err := ReadSheet(in)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read %s: %w", input, err)
	}
	logger.Debug("Read wide export", "path", input, "columns", len(sheet.Labels), "rows", len(sheet.Records))

	res := Convert(sheet, opts)
	summary, err := Summarize(res)
	if err != nil {
		logger.Warn("Conversion produced nothing", "path", input, "discarded", res.Stats.TotalDiscarded())
		return Summary{}, err
	}

	out, err := os.Create(output)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	if err := WriteActivities(out, res.Activities); err != nil {
		return Summary{}, fmt.Errorf("failed to write %s: %w", output, err)
	}
	if err := out.Close(); err != nil {
		return Summary{}, fmt.Errorf("failed to close %s: %w", output, err)
	}

	if info, err := os.Stat(output); err == nil {
		summary.Bytes = info.Size()
	}
	summary.Output = output

	logger.Info("Conversion complete",
		"pieces", summary.Pieces,
		"activities", summary.Activities,
		"discarded", summary.Stats.TotalDiscarded(),
		"output", output,
	)
	return summary, nil
}
