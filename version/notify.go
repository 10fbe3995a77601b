package version

import (
	"fmt"
	"io"

	"github.com/framex-cli/framex/color"
	"github.com/framex-cli/framex/constant"
	"github.com/framex-cli/framex/icon"
	"github.com/framex-cli/framex/key"
	"github.com/framex-cli/framex/style"
	"github.com/framex-cli/framex/util"
	"github.com/spf13/viper"
)

// Notify prints a notice to out when a newer release is available.
// It does nothing unless cli.version_check is enabled.
func Notify(out io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(out, fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	_, _ = fmt.Fprintf(out, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, latest)),
	)
}
