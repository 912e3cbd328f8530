//go:build windows

package updater

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/windows"
)

// replaceExecutable swaps the file at exePath for the contents of
// newBinPath. Windows allows renaming a running executable but not deleting
// or overwriting it, so the current binary is moved aside to ".old" and the
// new one is moved into place with MoveFileEx. The ".old" file stays behind
// until a later run; deleting it now would fail while the image is mapped.
func replaceExecutable(exePath, newBinPath string) error {
	staged := filepath.Join(filepath.Dir(exePath), fmt.Sprintf(".openuo-launcher-new-%d.exe", time.Now().UnixNano()))
	if err := copyFile(staged, newBinPath, 0o755); err != nil {
		_ = os.Remove(staged)
		return err
	}

	backup := exePath + ".old"
	_ = os.Remove(backup)

	if err := moveFileReplacing(exePath, backup); err != nil {
		_ = os.Remove(staged)
		return err
	}
	if err := moveFileReplacing(staged, exePath); err != nil {
		_ = moveFileReplacing(backup, exePath)
		_ = os.Remove(staged)
		return err
	}
	return nil
}

func moveFileReplacing(from, to string) error {
	fromPtr, err := windows.UTF16PtrFromString(from)
	if err != nil {
		return err
	}
	toPtr, err := windows.UTF16PtrFromString(to)
	if err != nil {
		return err
	}
	return windows.MoveFileEx(fromPtr, toPtr, windows.MOVEFILE_REPLACE_EXISTING)
}
