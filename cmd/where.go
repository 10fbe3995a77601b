package cmd

import (
	"os"

	"github.com/framex-cli/framex/color"
	"github.com/framex-cli/framex/style"
	"github.com/framex-cli/framex/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// whereTarget is a path framex reads or writes, selectable by flag.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
	{"Cache", where.Cache, "cache", mo.None[string]()},
	{"Probe cache", where.Probes, "probes", mo.Some("p")},
	{"Release cache", where.Release, "release", mo.None[string]()},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		help := n.name + " path"
		if short, ok := n.argShort.Get(); ok {
			whereCmd.Flags().BoolP(n.argLong, short, false, help)
		} else {
			whereCmd.Flags().Bool(n.argLong, false, help)
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints the paths framex uses.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the paths of the config file, logs and caches",
	Run: func(cmd *cobra.Command, args []string) {
		selected, found := lo.Find(wherePaths, func(t whereTarget) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})
		if found {
			cmd.Println(selected.where())
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", header(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			cmd.Println(n.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
