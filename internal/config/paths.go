package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Directory layout, relative to the launcher executable:
//
//	OpenUO/              installed game client
//	Profiles/            profile index files ({uuid}.json)
//	Profiles/Settings/   per-profile game settings ({uuid}.json)
//	logs/                launcher logs
const (
	clientDirName   = "OpenUO"
	profilesDirName = "Profiles"
	settingsDirName = "Settings"
)

// BaseDir returns the directory containing the launcher executable.
// Falls back to the working directory when the executable path cannot
// be resolved (e.g. under go test).
func BaseDir() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// ClientDir returns the game client install directory under base.
func ClientDir(base string) string {
	return filepath.Join(base, clientDirName)
}

// ClientBinaryName returns the platform-specific name of the client executable.
func ClientBinaryName() string {
	if runtime.GOOS == "windows" {
		return "OpenUO.exe"
	}
	return "OpenUO"
}

// ClientBinaryPath returns the full path of the installed client executable.
func ClientBinaryPath(base string) string {
	return filepath.Join(ClientDir(base), ClientBinaryName())
}

// ProfilesDir returns the profile index directory under base.
func ProfilesDir(base string) string {
	return filepath.Join(base, profilesDirName)
}

// SettingsDir returns the per-profile settings directory under base.
func SettingsDir(base string) string {
	return filepath.Join(base, profilesDirName, settingsDirName)
}
