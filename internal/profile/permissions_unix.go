//go:build !windows

package profile

import (
	"os"

	"github.com/openuo-online/openuo-launcher/internal/logger"
)

func warnIfPermissiveSettings(path string) {
	// Settings files can carry saved account credentials; warn when group
	// or others can read them.
	if fi, err := os.Stat(path); err == nil {
		mode := fi.Mode().Perm()
		if mode&0o044 != 0 {
			logger.Warn("settings file %s has permissive permissions (%o), consider chmod 600", path, mode)
		}
	}
}
