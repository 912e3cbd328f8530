package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openuo-online/openuo-launcher/internal/notify"
	"github.com/openuo-online/openuo-launcher/internal/updater"
)

// restartDelay gives the desktop notification and log writes a moment to
// land before the old process exits.
var restartDelay = 1500 * time.Millisecond

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Download the latest launcher and restart into it",
		Long: `Self-update downloads the latest launcher release for this platform,
swaps the running executable for it, and starts the new version. The old
executable is kept next to it with an .old suffix.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := updater.New(cfg.BaseDir())
			if err != nil {
				return err
			}
			result, err := drainDownload(u.StartLauncherDownload(), "launcher")
			if err != nil {
				notify.InstallFailed("Launcher", err.Error())
				return err
			}
			version := strings.TrimPrefix(result, updater.RestartSentinelPrefix)
			fmt.Printf("launcher updated to %s, restarting\n", version)
			notify.InstallFinished("Launcher", version)

			teardown()
			time.Sleep(restartDelay)
			os.Exit(0)
			return nil
		},
	}
}
