package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/practicelog/internal/convert"
	"github.com/julianstephens/practicelog/internal/expand"
)

func setupTestContext(t *testing.T) (*Context, *bytes.Buffer, string) {
	t.Helper()
	var out bytes.Buffer
	return &Context{Out: &out}, &out, t.TempDir()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestConvertCmd_Success(t *testing.T) {
	ctx, out, dir := setupTestContext(t)
	input := filepath.Join(dir, "sheet.csv")
	output := filepath.Join(dir, "log.csv")
	writeFile(t, input, ",20240615,12 days\nMinuet in G,P,X\nGavotte,x?,\n")

	cmd := &ConvertCmd{Input: input, Output: output}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("convert command failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output was not written: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 3 {
		t.Errorf("output has %d lines, want 3:\n%s", got, data)
	}
	if !strings.Contains(out.String(), "Conversion complete!") {
		t.Errorf("report missing from output:\n%s", out.String())
	}
}

func TestConvertCmd_NoActivities(t *testing.T) {
	ctx, _, dir := setupTestContext(t)
	input := filepath.Join(dir, "sheet.csv")
	writeFile(t, input, ",4 Days\nMinuet in G,P\n")

	cmd := &ConvertCmd{Input: input, Output: filepath.Join(dir, "log.csv")}
	if err := cmd.Run(ctx); !errors.Is(err, convert.ErrNoActivities) {
		t.Errorf("convert command error = %v, want ErrNoActivities", err)
	}
}

func TestConvertCmd_Backup(t *testing.T) {
	ctx, out, dir := setupTestContext(t)
	input := filepath.Join(dir, "sheet.csv")
	output := filepath.Join(dir, "log.csv")
	writeFile(t, input, ",20240615\nMinuet in G,P\n")
	writeFile(t, output, "previous run\n")

	cmd := &ConvertCmd{Input: input, Output: output, Backup: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("convert command failed: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "backups", "log-*.csv"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one backup, got %v (err %v)", matches, err)
	}
	saved, _ := os.ReadFile(matches[0])
	if string(saved) != "previous run\n" {
		t.Errorf("backup content = %q", saved)
	}
	if !strings.Contains(out.String(), "Backed up previous output") {
		t.Errorf("backup notice missing:\n%s", out.String())
	}
}

func TestExpandCmd_DefaultsSourceToFirstYear(t *testing.T) {
	ctx, out, dir := setupTestContext(t)
	input := filepath.Join(dir, "PlayTest_2024.csv")
	output := filepath.Join(dir, "PlayTest_XL.csv")
	writeFile(t, input, "DateTime,Piece\n2024-01-01 13:00:00,Etude\n")

	cmd := &ExpandCmd{Input: input, Output: output, Years: []int{2024, 2023, 2022}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("expand command failed: %v", err)
	}

	data, _ := os.ReadFile(output)
	want := "DateTime,Piece\n2024-01-01 13:00:00,Etude\n2023-01-01 13:00:00,Etude\n2022-01-01 13:00:00,Etude\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
	if !strings.Contains(out.String(), "Expansion complete!") {
		t.Errorf("report missing from output:\n%s", out.String())
	}
}

func TestExpandCmd_NoYears(t *testing.T) {
	ctx, _, dir := setupTestContext(t)

	cmd := &ExpandCmd{Input: filepath.Join(dir, "in.csv"), Output: filepath.Join(dir, "out.csv")}
	if err := cmd.Run(ctx); !errors.Is(err, expand.ErrNoTargetYears) {
		t.Errorf("expand command error = %v, want ErrNoTargetYears", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.csv")); !os.IsNotExist(err) {
		t.Error("output should not be created when options are invalid")
	}
}

func TestShiftCmd(t *testing.T) {
	ctx, _, dir := setupTestContext(t)
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")
	writeFile(t, input, "DateTime,Piece\n2024-07-04 13:00:00,Etude\n2023-07-04 13:00:00,Nocturne\n")

	cmd := &ShiftCmd{Input: input, Output: output, From: 2024, To: 2019}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("shift command failed: %v", err)
	}

	data, _ := os.ReadFile(output)
	want := "DateTime,Piece\n2019-07-04 13:00:00,Etude\n2023-07-04 13:00:00,Nocturne\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestCheckCmd(t *testing.T) {
	ctx, out, dir := setupTestContext(t)
	good := filepath.Join(dir, "good.csv")
	bad := filepath.Join(dir, "bad.csv")
	header := "DateTime,Length,ActivityType,Piece,Level,PerformanceType,Notes\n"
	writeFile(t, good, header+"2024-01-01 13:00:00,-1,PRACTICE,Etude,4,practice,\n")
	writeFile(t, bad, header+"2024-01-01 13:00:00,-1,PERFORMANCE,Etude,4,practice,\n")

	if err := (&CheckCmd{Input: good}).Run(ctx); err != nil {
		t.Errorf("check of a valid log failed: %v", err)
	}
	if !strings.Contains(out.String(), "No conflicts detected.") {
		t.Errorf("unexpected report:\n%s", out.String())
	}

	out.Reset()
	err := (&CheckCmd{Input: bad}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "1 line(s) would be rejected") {
		t.Errorf("check of an invalid log error = %v", err)
	}
	if !strings.Contains(out.String(), "Line 2: Invalid performance level 4") {
		t.Errorf("unexpected report:\n%s", out.String())
	}
}

func TestCheckCmd_ConvertedOutputPasses(t *testing.T) {
	ctx, _, dir := setupTestContext(t)
	input := filepath.Join(dir, "sheet.csv")
	output := filepath.Join(dir, "log.csv")
	writeFile(t, input, ",20240101,20240102,20240103\nClair de Lune,P,A,pV\nFur Elise,X,x?,Pa\n")

	if err := (&ConvertCmd{Input: input, Output: output}).Run(ctx); err != nil {
		t.Fatalf("convert command failed: %v", err)
	}
	if err := (&CheckCmd{Input: output}).Run(ctx); err != nil {
		t.Errorf("converted output failed the import check: %v", err)
	}
}
