// Package launch starts the game client with the arguments a profile asks
// for.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/openuo-online/openuo-launcher/internal/config"
	"github.com/openuo-online/openuo-launcher/internal/logger"
	"github.com/openuo-online/openuo-launcher/internal/profile"
)

// Args builds the client command line for a profile and its settings file.
func Args(p *profile.Profile, settingsPath string) []string {
	args := []string{"-settings", settingsPath, "-skipupdatecheck"}
	if p.Settings.AutoLogin {
		args = append(args, "-skiploginscreen")
		if p.Index.LastCharacterName != "" {
			args = append(args, "-lastcharactername", p.Index.LastCharacterName)
		}
	}
	if p.Index.AdditionalArgs != "" {
		args = append(args, strings.Fields(p.Index.AdditionalArgs)...)
	}
	return args
}

// Client saves the profile so the game sees current settings, then spawns
// the client binary detached. The client's working directory is its install
// directory.
func Client(baseDir string, store *profile.Store, p *profile.Profile) error {
	exe := config.ClientBinaryPath(baseDir)
	if _, err := os.Stat(exe); err != nil {
		return fmt.Errorf("game client not installed at %s", exe)
	}

	if err := store.Save(p); err != nil {
		return fmt.Errorf("failed to save profile before launch: %w", err)
	}

	args := Args(p, store.SettingsPath(p))
	cmd := exec.Command(exe, args...)
	cmd.Dir = config.ClientDir(baseDir)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start game client: %w", err)
	}
	logger.Info("launched client pid=%d profile=%s", cmd.Process.Pid, p.Index.Name)
	// Let the client outlive the launcher.
	return cmd.Process.Release()
}
