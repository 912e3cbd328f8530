package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openuo-online/openuo-launcher/internal/notify"
	"github.com/openuo-online/openuo-launcher/internal/updater"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download and install the latest game client",
		Long: `Install fetches the latest client release for this platform, downloads
its archive, and unpacks it into the OpenUO directory next to the launcher.
An existing installation is updated in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := updater.New(cfg.BaseDir())
			if err != nil {
				return err
			}
			version, err := drainDownload(u.StartClientDownload(), "client")
			if err != nil {
				notify.InstallFailed("OpenUO", err.Error())
				return err
			}
			fmt.Printf("OpenUO %s installed\n", version)
			notify.InstallFinished("OpenUO", version)
			return nil
		},
	}
}

// drainDownload consumes download events until the terminal one, rendering
// progress on the way, and returns the installed version.
func drainDownload(events <-chan updater.DownloadEvent, what string) (string, error) {
	var rendered bool
	for ev := range events {
		if ev.Finished {
			if rendered {
				fmt.Fprintln(os.Stdout)
			}
			if ev.Err != "" {
				return "", fmt.Errorf("%s download failed: %s", what, ev.Err)
			}
			return ev.Version, nil
		}
		renderProgress(ev.Received, ev.Total)
		rendered = true
	}
	return "", fmt.Errorf("%s download ended without result", what)
}

func renderProgress(received, total int64) {
	if total > 0 {
		fmt.Fprintf(os.Stdout, "\rdownloading... %3d%% (%s / %s)",
			received*100/total, formatBytes(received), formatBytes(total))
		return
	}
	fmt.Fprintf(os.Stdout, "\rdownloading... %s", formatBytes(received))
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
