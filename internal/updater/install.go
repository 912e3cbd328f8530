package updater

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openuo-online/openuo-launcher/internal/logger"
)

// DownloadAndUnpackClient installs or updates the game client: resolve the
// latest release, download this platform's archive to a temp file, unpack it
// into the install directory and record the installed version. Returns the
// version string that was installed.
//
// The install directory must not be written by anything else while this
// runs; the caller enforces one install at a time.
func (u *Updater) DownloadAndUnpackClient(ctx context.Context, progress ProgressFunc) (string, error) {
	rel, err := FetchLatestRelease(ctx, u.source(), ProductClient, u.Profile)
	if err != nil {
		return "", err
	}

	asset, ok := findAssetByName(rel.Assets, u.Profile.ClientAsset)
	if !ok {
		return "", &NoAssetError{Release: rel.Version(), Asset: u.Profile.ClientAsset}
	}

	tmp := filepath.Join(os.TempDir(), asset.Name)
	if err := downloadAsset(ctx, asset.BrowserDownloadURL, tmp, progress); err != nil {
		return "", err
	}
	defer os.Remove(tmp)

	if err := os.MkdirAll(u.InstallDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create install directory: %w", err)
	}
	if err := extractZip(tmp, u.InstallDir); err != nil {
		return "", err
	}

	version := rel.Version()
	if err := writeVersionMarker(u.InstallDir, version); err != nil {
		return "", fmt.Errorf("failed to write version marker: %w", err)
	}
	logger.Info("installed client %s into %s", version, u.InstallDir)
	return version, nil
}

// StartClientDownload runs DownloadAndUnpackClient on a background
// goroutine. The caller owns the returned channel and must drain it until
// the finished event.
func (u *Updater) StartClientDownload() <-chan DownloadEvent {
	return startDownloadOp(u.DownloadAndUnpackClient)
}
