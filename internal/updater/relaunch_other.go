//go:build !windows && !darwin

package updater

import "os/exec"

// relaunch spawns the updated launcher directly at its original path.
func relaunch(exePath string) error {
	return exec.Command(exePath).Start()
}
