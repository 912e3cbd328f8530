package updater

import (
	"os"
	"path/filepath"
	"strings"
)

const versionMarkerName = ".version-marker"

// UnknownVersionSentinel is returned when the client binary exists but no
// version marker does: installed, version unidentified. Distinct from "not
// installed", which callers use to offer install instead of update.
const UnknownVersionSentinel = "installed (unknown version)"

// writeVersionMarker records the release identifier that was just installed
// into installDir.
func writeVersionMarker(installDir, version string) error {
	return os.WriteFile(filepath.Join(installDir, versionMarkerName), []byte(version), 0o644)
}

// ReadVersionMarker returns the recorded version for installDir, if any.
func ReadVersionMarker(installDir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(installDir, versionMarkerName))
	if err != nil {
		return "", false
	}
	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", false
	}
	return v, true
}

// DetectInstalledVersion answers "what client version is installed in
// installDir". ok=false means the client binary itself is absent (not
// installed); otherwise the marker value is returned, or
// UnknownVersionSentinel when the binary exists without a marker.
func DetectInstalledVersion(installDir, binaryName string) (string, bool) {
	if _, err := os.Stat(filepath.Join(installDir, binaryName)); err != nil {
		return "", false
	}
	if v, ok := ReadVersionMarker(installDir); ok {
		return v, true
	}
	return UnknownVersionSentinel, true
}
