package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/practicelog/internal/constants"
	"github.com/julianstephens/practicelog/internal/logger"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager keeps timestamped copies of a generated CSV before it is overwritten
type Manager struct {
	target    string
	backupDir string
	stem      string
	ext       string
	keep      int
	now       func() time.Time
}

// NewManager creates a backup manager for the file at target. Copies go to
// a backups directory next to it.
func NewManager(target string) *Manager {
	base := filepath.Base(target)
	ext := filepath.Ext(base)
	return &Manager{
		target:    target,
		backupDir: filepath.Join(filepath.Dir(target), constants.BackupDirName),
		stem:      strings.TrimSuffix(base, ext),
		ext:       ext,
		keep:      constants.MaxBackups,
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// BackupIfExists copies the target aside when it exists. It returns the
// backup path, or "" when there was nothing to back up.
func (m *Manager) BackupIfExists() (string, error) {
	if _, err := os.Stat(m.target); os.IsNotExist(err) {
		return "", nil
	}
	return m.CreateBackup()
}

// CreateBackup copies the target into the backup directory and rotates old copies
func (m *Manager) CreateBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.target); err != nil {
		return "", fmt.Errorf("nothing to back up: %w", err)
	}

	stamp := m.now().Format(constants.BackupStamp)
	backupPath := filepath.Join(m.backupDir, m.stem+"-"+stamp+m.ext)

	// Same-second backups get a counter
	for counter := 1; ; counter++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s-%s-%d%s", m.stem, stamp, counter, m.ext))
	}

	if err := copyFile(m.target, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", m.target, err)
	}
	logger.Debug("Backed up output", "from", m.target, "to", backupPath)

	if err := m.rotateBackups(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}

	return backupPath, nil
}

// ListBackups returns the backups of the target, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	type ranked struct {
		BackupInfo
		counter int
	}
	var found []ranked
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, counter, ok := m.parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		found = append(found, ranked{
			BackupInfo: BackupInfo{
				Path:      filepath.Join(m.backupDir, entry.Name()),
				Timestamp: ts,
				Size:      info.Size(),
			},
			counter: counter,
		})
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].Timestamp.Equal(found[j].Timestamp) {
			return found[i].Timestamp.After(found[j].Timestamp)
		}
		return found[i].counter > found[j].counter
	})

	backups := make([]BackupInfo, len(found))
	for i, f := range found {
		backups[i] = f.BackupInfo
	}
	return backups, nil
}

// parseName extracts the timestamp and collision counter from a backup file name
func (m *Manager) parseName(name string) (time.Time, int, bool) {
	prefix := m.stem + "-"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, m.ext) {
		return time.Time{}, 0, false
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(name, prefix), m.ext)
	if len(rest) < len(constants.BackupStamp) {
		return time.Time{}, 0, false
	}

	ts, err := time.ParseInLocation(constants.BackupStamp, rest[:len(constants.BackupStamp)], time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}

	suffix := rest[len(constants.BackupStamp):]
	if suffix == "" {
		return ts, 0, true
	}
	counter, err := strconv.Atoi(strings.TrimPrefix(suffix, "-"))
	if err != nil || !strings.HasPrefix(suffix, "-") {
		return time.Time{}, 0, false
	}
	return ts, counter, true
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := m.keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
