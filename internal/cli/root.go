package cli

import (
	"fmt"
	"io"

	"github.com/julianstephens/practicelog/internal/backup"
	"github.com/julianstephens/practicelog/internal/logger"
)

// Context is passed to every command's Run method
type Context struct {
	// Out receives the human-readable report
	Out io.Writer
}

// BackupOutput copies an existing output file aside before it is overwritten
func (c *Context) BackupOutput(path string) error {
	mgr := backup.NewManager(path)
	saved, err := mgr.BackupIfExists()
	if err != nil {
		return fmt.Errorf("failed to back up %s: %w", path, err)
	}
	if saved != "" {
		logger.Info("Backed up previous output", "path", saved)
		fmt.Fprintf(c.Out, "Backed up previous output to %s\n", saved)
	}
	return nil
}
