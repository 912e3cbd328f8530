package updater

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/openuo-online/openuo-launcher/internal/logger"
)

// DownloadLauncherUpdate replaces the running launcher binary with the
// latest release and relaunches it at its original path. On success the
// returned string is RestartSentinelPrefix + version; the caller must show
// a completion message, wait briefly, then terminate this process.
//
// Failure before the replace step leaves the running binary untouched. The
// replace itself writes to a sibling path and renames, keeping a ".old"
// backup, so no failure mode leaves the launcher path empty or truncated.
func (u *Updater) DownloadLauncherUpdate(ctx context.Context, progress ProgressFunc) (string, error) {
	rel, err := FetchLatestRelease(ctx, u.source(), ProductLauncher, u.Profile)
	if err != nil {
		return "", err
	}

	asset, ok := findAssetByName(rel.Assets, u.Profile.LauncherAsset)
	if !ok {
		return "", &NoAssetError{Release: rel.Version(), Asset: u.Profile.LauncherAsset}
	}

	tmp := filepath.Join(os.TempDir(), asset.Name)
	if err := downloadAsset(ctx, asset.BrowserDownloadURL, tmp, progress); err != nil {
		return "", err
	}
	defer os.Remove(tmp)

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmp, 0o755); err != nil {
			return "", fmt.Errorf("failed to mark new launcher executable: %w", err)
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate running executable: %w", err)
	}
	exe, err = filepath.Abs(exe)
	if err != nil {
		return "", err
	}

	if err := replaceExecutable(exe, tmp); err != nil {
		return "", fmt.Errorf("failed to replace launcher binary: %w", err)
	}

	version := rel.Version()
	logger.Info("launcher updated to %s, relaunching %s", version, exe)
	if err := relaunch(exe); err != nil {
		logger.Warn("failed to relaunch updated launcher: %v", err)
	}
	return RestartSentinelPrefix + version, nil
}

// StartLauncherDownload runs DownloadLauncherUpdate on a background
// goroutine. The caller owns the returned channel and must drain it until
// the finished event.
func (u *Updater) StartLauncherDownload() <-chan DownloadEvent {
	return startDownloadOp(u.DownloadLauncherUpdate)
}
