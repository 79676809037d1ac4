package convert

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "Piano Songs Performance Record - Sheet1.csv", sampleSheet)
	output := filepath.Join(dir, "historical_piano_data.csv")

	summary, err := ConvertFile(input, output, Options{})
	if err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := strings.Join([]string{
		"DateTime,Length,ActivityType,Piece,Level,PerformanceType,Notes",
		"2024-01-01 13:00:00,-1,PRACTICE,Clair de Lune,1,practice,",
		"2024-01-01 13:00:00,-1,PRACTICE,Fur Elise,1,practice,",
		"2024-01-01 13:00:00,-1,PERFORMANCE,Nocturne,1,practice,",
		"2024-01-02 13:00:00,-1,PRACTICE,Clair de Lune,4,practice,",
		"2024-01-02 13:00:00,-1,PERFORMANCE,Fur Elise,2,practice,",
	}, "\n") + "\n"
	if string(data) != want {
		t.Errorf("output =\n%s\nwant\n%s", data, want)
	}

	if summary.Output != output {
		t.Errorf("Output = %q, want %q", summary.Output, output)
	}
	if summary.Bytes != int64(len(want)) {
		t.Errorf("Bytes = %d, want %d", summary.Bytes, len(want))
	}
	if summary.Activities != 5 {
		t.Errorf("Activities = %d, want 5", summary.Activities)
	}
}

func TestConvertFile_QuotesPieceNames(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", ",20240615\n\"Sonata No. 8, Pathetique\",X\n")
	output := filepath.Join(dir, "out.csv")

	if _, err := ConvertFile(input, output, Options{}); err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}
	data, _ := os.ReadFile(output)
	if !strings.Contains(string(data), `"Sonata No. 8, Pathetique"`) {
		t.Errorf("piece name with comma was not quoted:\n%s", data)
	}
}

func TestConvertFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertFile(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "out.csv"), Options{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ConvertFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestConvertFile_NoActivitiesWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", ",12 days\nPrelude,P\n")
	output := filepath.Join(dir, "out.csv")

	_, err := ConvertFile(input, output, Options{})
	if !errors.Is(err, ErrNoActivities) {
		t.Fatalf("ConvertFile() error = %v, want ErrNoActivities", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output file should not exist, stat error = %v", err)
	}
}

func TestConvertFile_StrayQuoteInName(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.csv", ",20240101\nChopin 12\" Etude,P\nNocturne,X\n")
	output := filepath.Join(dir, "out.csv")

	summary, err := ConvertFile(input, output, Options{})
	if err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}
	if summary.Pieces != 2 || summary.Activities != 2 {
		t.Errorf("summary = %d pieces, %d activities, want 2 and 2", summary.Pieces, summary.Activities)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := strings.Join([]string{
		"DateTime,Length,ActivityType,Piece,Level,PerformanceType,Notes",
		"2024-01-01 13:00:00,-1,PRACTICE,\"Chopin 12\"\" Etude\",4,practice,",
		"2024-01-01 13:00:00,-1,PERFORMANCE,Nocturne,2,practice,",
	}, "\n") + "\n"
	if string(data) != want {
		t.Errorf("output =\n%s\nwant\n%s", data, want)
	}
}
