package updater

import (
	"fmt"
	"runtime"
	"strings"
)

// Profile names the release assets for one supported OS/architecture pair.
// It is resolved once at startup; everything platform-conditional in the
// update pipeline goes through it.
type Profile struct {
	OS   string
	Arch string

	// ClientAsset is the client archive name, e.g. "linux-x64.zip".
	ClientAsset string
	// LauncherAsset is the launcher binary name, e.g. "OpenUO-Launcher-linux-x64".
	LauncherAsset string
}

// Key returns the platform key used by the simplified release format's
// download_url map ("osx-arm64", "osx-x64", "linux-x64", "win-x64").
func (p Profile) Key() string {
	return strings.TrimSuffix(p.ClientAsset, ".zip")
}

// AssetName returns the expected asset name for the given product.
func (p Profile) AssetName(product Product) string {
	if product == ProductLauncher {
		return p.LauncherAsset
	}
	return p.ClientAsset
}

// CurrentProfile resolves the profile for the running binary. An
// unsupported OS/architecture pair is a configuration error: the launcher
// cannot name release assets for a platform nothing is published for.
func CurrentProfile() (Profile, error) {
	return profileFor(runtime.GOOS, runtime.GOARCH)
}

func profileFor(goos, goarch string) (Profile, error) {
	switch goos {
	case "darwin":
		switch goarch {
		case "arm64":
			return Profile{goos, goarch, "osx-arm64.zip", "OpenUO-Launcher-macos-arm64"}, nil
		case "amd64":
			return Profile{goos, goarch, "osx-x64.zip", "OpenUO-Launcher-macos-x64"}, nil
		}
	case "linux":
		if goarch == "amd64" {
			return Profile{goos, goarch, "linux-x64.zip", "OpenUO-Launcher-linux-x64"}, nil
		}
	case "windows":
		if goarch == "amd64" {
			return Profile{goos, goarch, "win-x64.zip", "OpenUO-Launcher-windows-x64.exe"}, nil
		}
	}
	return Profile{}, fmt.Errorf("unsupported platform %s/%s", goos, goarch)
}
