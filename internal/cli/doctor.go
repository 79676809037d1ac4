package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/practicelog/internal/backup"
	"github.com/julianstephens/practicelog/internal/convert"
)

type DoctorCmd struct {
	Input  string `help:"Wide-format practice record to look for." type:"path" default:"${default_wide_input}"`
	Output string `help:"Activity log the convert command writes." type:"path" default:"${default_long_output}"`
	Sample string `help:"Sample activity log the expand command reads." type:"path" default:"${default_sample_input}"`
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	hasError := false

	// Check 1: practice record readable
	if err := checkPracticeRecord(cmd.Input); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Practice record: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Practice record: OK\n")
	}

	// Check 2: output directory writable
	if err := checkWritableDir(filepath.Dir(cmd.Output)); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Output directory: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Output directory: OK\n")
	}

	// Check 3: sample log present (warning only)
	if _, err := os.Stat(cmd.Sample); err != nil {
		fmt.Fprintf(ctx.Out, "⚠ Sample log: WARNING\n")
		fmt.Fprintf(ctx.Out, "   %s not found - expand needs --input\n", cmd.Sample)
	} else {
		fmt.Fprintf(ctx.Out, "✓ Sample log: OK\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(cmd.Output); err != nil {
		fmt.Fprintf(ctx.Out, "⚠ Backups present: WARNING\n")
		fmt.Fprintf(ctx.Out, "   %v\n", err)
	} else {
		fmt.Fprintf(ctx.Out, "✓ Backups present: OK\n")
	}

	// Check 5: clock sanity
	if err := checkClock(time.Now()); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Clock: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Clock: OK\n")
	}

	fmt.Fprintln(ctx.Out)
	if hasError {
		fmt.Fprintln(ctx.Out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(ctx.Out, "All diagnostics passed!")
	return nil
}

func checkPracticeRecord(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet, err := convert.ReadSheet(f)
	if err != nil {
		return err
	}
	if len(sheet.Records) == 0 {
		return fmt.Errorf("%s has a header but no piece rows", path)
	}
	return nil
}

func checkWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	probe, err := os.CreateTemp(dir, ".practicelog-doctor-*")
	if err != nil {
		return fmt.Errorf("cannot write to %s: %w", dir, err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

func checkBackupsPresent(output string) error {
	mgr := backup.NewManager(output)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s - pass --backup to keep a copy of the previous output", mgr.GetBackupDir())
	}

	return nil
}

func checkClock(now time.Time) error {
	// Backup names are ordered by wall clock time
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
