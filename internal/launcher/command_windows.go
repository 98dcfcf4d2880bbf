//go:build windows

package launcher

import (
	"os/exec"
	"syscall"
)

func command(mode Mode, path string) *exec.Cmd {
	if mode == ModeDirect {
		return exec.Command(path)
	}
	// start resolves file associations the way Explorer does; "" is the window title.
	return exec.Command("cmd", "/C", "start", "", path)
}

func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}
