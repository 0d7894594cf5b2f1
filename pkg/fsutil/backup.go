package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a target's path to name its backup.
const BackupSuffix = ".mdbridge.bak"

// BackupPath returns the backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies an existing file to its backup path before it is
// overwritten. It reports whether a backup was made: a missing original or
// an existing backup means there is nothing to do. Backups are never
// overwritten, so repeated runs keep the first version.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	backupPath := BackupPath(path)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat original for backup: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
