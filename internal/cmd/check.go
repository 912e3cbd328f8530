package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/openuo-online/openuo-launcher/internal/logger"
	"github.com/openuo-online/openuo-launcher/internal/notify"
	"github.com/openuo-online/openuo-launcher/internal/updater"
)

var watchFlag bool

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check for client and launcher updates",
		Long: `Check queries the configured release sources for the latest client and
launcher versions and reports whether an update is available. With --watch
it keeps checking on an interval until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := updater.New(cfg.BaseDir())
			if err != nil {
				return err
			}
			if watchFlag {
				return watchUpdates(u)
			}
			return runCheck(u, u.TriggerUpdateCheck(true, true))
		},
	}
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "Keep checking on an interval")
	return cmd
}

func runCheck(u *updater.Updater, events <-chan updater.UpdateEvent) error {
	var failed bool
	for ev := range events {
		switch ev.Kind {
		case updater.UpdateClientResult:
			failed = reportClient(u, ev) || failed
		case updater.UpdateLauncherResult:
			failed = reportLauncher(ev) || failed
		case updater.UpdateDone:
			if failed {
				return fmt.Errorf("update check failed")
			}
			return nil
		}
	}
	return fmt.Errorf("update check ended without result")
}

func reportClient(u *updater.Updater, ev updater.UpdateEvent) (failed bool) {
	if ev.Err != "" {
		fmt.Printf("client:   check failed: %s\n", ev.Err)
		return true
	}
	installed, ok := u.InstalledClientVersion()
	if !ok {
		fmt.Printf("client:   not installed, latest is %s\n", ev.Version)
		notify.UpdateAvailable("OpenUO", ev.Version)
		return false
	}
	needs, comparable := updater.NeedsUpdate(installed, ev.Version)
	switch {
	case needs && comparable:
		fmt.Printf("client:   %s -> %s (update available)\n", installed, ev.Version)
		notify.UpdateAvailable("OpenUO", ev.Version)
	case needs:
		fmt.Printf("client:   have %s, latest is %s\n", installed, ev.Version)
		notify.UpdateAvailable("OpenUO", ev.Version)
	default:
		fmt.Printf("client:   %s (up to date)\n", installed)
	}
	return false
}

func reportLauncher(ev updater.UpdateEvent) (failed bool) {
	if ev.Err != "" {
		fmt.Printf("launcher: check failed: %s\n", ev.Err)
		return true
	}
	needs, comparable := updater.NeedsUpdate(launcherVersion, ev.Version)
	switch {
	case needs && comparable:
		fmt.Printf("launcher: %s -> %s (run self-update)\n", launcherVersion, ev.Version)
		notify.UpdateAvailable("Launcher", ev.Version)
	case needs:
		fmt.Printf("launcher: have %s, latest is %s\n", launcherVersion, ev.Version)
	default:
		fmt.Printf("launcher: %s (up to date)\n", launcherVersion)
	}
	return false
}

// watchUpdates runs periodic checks until interrupted. The scheduler owns
// the busy flags; events from an in-flight check are observed back into it.
func watchUpdates(u *updater.Updater) error {
	sched := updater.NewCheckScheduler(u.TriggerUpdateCheck)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	events := sched.Trigger(true, true)
	for {
		select {
		case <-sig:
			logger.Info("watch interrupted")
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			sched.Observe(ev)
			switch ev.Kind {
			case updater.UpdateClientResult:
				reportClient(u, ev)
			case updater.UpdateLauncherResult:
				reportLauncher(ev)
			}
		case <-ticker.C:
			if next := sched.MaybeTrigger(); next != nil {
				events = next
			}
		}
	}
}
