package updater

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/openuo-online/openuo-launcher/internal/logger"
)

// extractZip unpacks the archive into targetDir, recreating nested
// directories and restoring unix permission bits where the platform has
// them. Duplicate entries overwrite. Entries that would escape targetDir
// are rejected.
func extractZip(archivePath, targetDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		rel := filepath.Clean(f.Name)
		if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
			return fmt.Errorf("archive entry %q escapes target directory", f.Name)
		}
		target := filepath.Join(targetDir, rel)

		if strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}

		if err := extractZipEntry(f, target); err != nil {
			return fmt.Errorf("failed to extract %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractZipEntry(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// Restore stored unix mode bits; the client binary needs its execute
	// bit back. Failure here is logged, not fatal.
	if runtime.GOOS != "windows" {
		if perm := f.Mode().Perm(); perm != 0 {
			if err := os.Chmod(target, perm); err != nil {
				logger.Warn("failed to restore permissions on %s: %v", target, err)
			}
		}
	}
	return nil
}
