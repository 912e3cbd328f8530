//go:build darwin

package updater

import "os/exec"

// relaunch starts the updated launcher through `open` so macOS detaches it
// from the terminating process.
func relaunch(exePath string) error {
	return exec.Command("open", exePath).Start()
}
