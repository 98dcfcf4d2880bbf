//go:build !windows

package launcher

import (
	"os/exec"
	"runtime"
	"syscall"
)

func command(mode Mode, path string) *exec.Cmd {
	switch mode {
	case ModeDirect:
		return exec.Command(path)
	case ModeOpen:
		if runtime.GOOS == "darwin" {
			return exec.Command("open", path)
		}
		return exec.Command("xdg-open", path)
	default:
		// "$0" keeps paths with spaces intact while letting the shell resolve them.
		return exec.Command("/bin/sh", "-c", `exec "$0"`, path)
	}
}

// detach moves the child into its own process group so terminal signals
// aimed at legion do not reach it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
