// Package cmd wires the launcher's CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openuo-online/openuo-launcher/internal/config"
	"github.com/openuo-online/openuo-launcher/internal/logger"
	"github.com/openuo-online/openuo-launcher/internal/notify"
)

var (
	// Global flags
	baseDirFlag  string
	logLevelFlag string

	// Populated by PersistentPreRunE for every subcommand.
	cfg *config.Config

	launcherVersion string

	logWriter *logger.RotatingFileWriter
)

func Execute(version, commit, date string) error {
	launcherVersion = version

	rootCmd := &cobra.Command{
		Use:   "openuo-launcher",
		Short: "Install, update, and launch the OpenUO game client",
		Long: `openuo-launcher keeps an OpenUO installation next to itself, downloads
client and launcher releases, and starts the game with a chosen profile.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			teardown()
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseDirFlag, "base-dir", "", "Launcher base directory (default: executable directory)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newLaunchCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newProfileCmd())

	return rootCmd.Execute()
}

func setup() error {
	baseDir := baseDirFlag
	if baseDir == "" {
		baseDir = config.BaseDir()
	}

	var err error
	cfg, err = config.Load(baseDir)
	if err != nil {
		return err
	}
	if logLevelFlag != "" {
		cfg.LogLevel = config.LogLevel(logLevelFlag)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.SetLevel(cfg.LogLevel)
	logWriter, err = logger.NewRotatingFileWriter(cfg.LogDir, "launcher", cfg.LogRetentionDays)
	if err != nil {
		// Logging to file is best effort; console output still works.
		logger.Warn("file logging disabled: %v", err)
	} else {
		var out io.Writer = logWriter
		if cfg.LogStdout == nil || *cfg.LogStdout {
			out = io.MultiWriter(os.Stderr, logWriter)
		}
		logger.SetOutput(out)
	}

	notify.Configure(cfg)
	return nil
}

func teardown() {
	notify.Shutdown()
	if logWriter != nil {
		logWriter.Close()
	}
}
