package updater

import (
	"context"

	"github.com/openuo-online/openuo-launcher/internal/config"
)

// downloadEventBuffer bounds the event channel of one background operation.
// Progress snapshots beyond it are dropped; terminal events never are.
const downloadEventBuffer = 64

// Updater runs release checks, client installs and launcher self-updates
// for one launcher installation. Background operations communicate with the
// owning goroutine exclusively through event channels; the owner polls and
// must drain each channel until its terminal event.
type Updater struct {
	// BaseDir is the launcher directory, holding update_source.json and
	// the client install directory.
	BaseDir string
	// InstallDir is the client install target, normally <BaseDir>/OpenUO.
	InstallDir string
	// BinaryName is the client executable name inside InstallDir.
	BinaryName string
	// Profile names the release assets for this platform.
	Profile Profile
}

// New resolves the current platform and returns an Updater rooted at
// baseDir. Fails on platforms no release assets are published for.
func New(baseDir string) (*Updater, error) {
	profile, err := CurrentProfile()
	if err != nil {
		return nil, err
	}
	return &Updater{
		BaseDir:    baseDir,
		InstallDir: config.ClientDir(baseDir),
		BinaryName: config.ClientBinaryName(),
		Profile:    profile,
	}, nil
}

// InstalledClientVersion reports the installed client version, or ok=false
// when the client is not installed at all.
func (u *Updater) InstalledClientVersion() (string, bool) {
	return DetectInstalledVersion(u.InstallDir, u.BinaryName)
}

func (u *Updater) source() Source {
	return LoadSource(u.BaseDir)
}

// startDownloadOp runs op on a background goroutine and returns the channel
// its events arrive on: zero or more progress events in byte order, then
// exactly one finished event.
func startDownloadOp(op func(context.Context, ProgressFunc) (string, error)) <-chan DownloadEvent {
	ch := make(chan DownloadEvent, downloadEventBuffer)
	go func() {
		version, err := op(context.Background(), func(received, total int64) {
			select {
			case ch <- DownloadEvent{Received: received, Total: total}:
			default:
				// Consumer is lagging; progress snapshots are droppable.
			}
		})
		ev := DownloadEvent{Finished: true}
		if err != nil {
			ev.Err = err.Error()
		} else {
			ev.Version = version
		}
		ch <- ev
	}()
	return ch
}
