// Package open launches files and directories with the system's default handler.
package open

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/framex-cli/framex/constant"
)

// Start opens path with the default handler without waiting for it to exit.
func Start(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	cmd, ok := command(runtime.GOOS, abs)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", abs, err)
	}

	// The handler outlives us; release it instead of waiting.
	return cmd.Process.Release()
}

func command(goos, input string) (*exec.Cmd, bool) {
	switch goos {
	case constant.Windows:
		return exec.Command("explorer.exe", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
