//go:build !windows

package video

import (
	"os/exec"
	"syscall"
)

// sysProcAttr places ffmpeg in its own process group so a terminal SIGINT
// reaches framex first and the decoder is torn down through Close.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	return cmd.Process.Kill()
}
