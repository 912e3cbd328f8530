//go:build windows

package updater

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// relaunch starts the updated launcher through `cmd /C start` (the empty
// string is the window title) in a new process group so it survives this
// process exiting.
func relaunch(exePath string) error {
	cmd := exec.Command("cmd", "/C", "start", "", exePath)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP,
	}
	return cmd.Start()
}
