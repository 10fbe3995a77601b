package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/framex-cli/framex/icon"
	"github.com/framex-cli/framex/style"
	"github.com/framex-cli/framex/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

const maxBoxWidth = 72

// CheckDependencies exits with an explanation when any of the given
// executables cannot be found in PATH.
func CheckDependencies(deps ...string) {
	missing := lo.Filter(deps, func(dep string, _ int) bool {
		_, err := exec.LookPath(dep)
		return err != nil
	})

	if len(missing) == 0 {
		return
	}

	printMissingDependencyError(os.Stderr, missing[0])
	os.Exit(1)
}

func installHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "brew install ffmpeg"
	case "linux":
		return "sudo apt install ffmpeg"
	case "windows":
		return "scoop install ffmpeg"
	}
	return ""
}

// wrapText breaks on word boundaries and only splits words longer than width.
func wrapText(s string, width int) string {
	return wrap.String(wordwrap.String(s, width), width)
}

func printMissingDependencyError(out io.Writer, dep string) {
	width := maxBoxWidth
	if w, _, err := util.TerminalSize(); err == nil {
		width = util.Clamp(w-8, 20, maxBoxWidth)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(wrapText(
		fmt.Sprintf("The required dependency '%s' was not found in your PATH. Install ffmpeg, point decoder.ffmpeg_path at it, or use --backend mpeg for MPEG-1 files.", dep),
		width,
	))

	suggestion := ""
	if installCmd := installHint(); installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	_, _ = fmt.Fprintln(out, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
