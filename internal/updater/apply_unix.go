//go:build !windows

package updater

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// replaceExecutable swaps the file at exePath for the contents of
// newBinPath while the original image is still executing. The new binary is
// first copied to a sibling in the same directory (rename must not cross
// filesystems), the old one is renamed to ".old" as a best-effort backup,
// and the sibling is renamed into place. Any failure restores the backup.
func replaceExecutable(exePath, newBinPath string) error {
	fi, err := os.Stat(exePath)
	if err != nil {
		return err
	}
	mode := fi.Mode()
	if mode&0o111 == 0 {
		mode |= 0o755
	}

	dir := filepath.Dir(exePath)
	staged := filepath.Join(dir, fmt.Sprintf(".openuo-launcher-new-%d", time.Now().UnixNano()))
	if err := copyFile(staged, newBinPath, mode.Perm()); err != nil {
		_ = os.Remove(staged)
		return err
	}

	backup := exePath + ".old"
	_ = os.Remove(backup)

	if err := os.Rename(exePath, backup); err != nil {
		_ = os.Remove(staged)
		return err
	}
	if err := os.Rename(staged, exePath); err != nil {
		_ = os.Rename(backup, exePath)
		_ = os.Remove(staged)
		return err
	}
	return nil
}
