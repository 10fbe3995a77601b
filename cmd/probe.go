package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/framex-cli/framex/extract"
	"github.com/framex-cli/framex/filesystem"
	"github.com/framex-cli/framex/report"
	"github.com/framex-cli/framex/video"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

// probeCmd prints the metadata table of a video without extracting anything.
var probeCmd = &cobra.Command{
	Use:   "probe <video_path>",
	Short: "Display the frame rate, frame count, duration, resolution and codec of a video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		if info, err := filesystem.API().Stat(path); err != nil || !info.Mode().IsRegular() {
			handleErr(fmt.Errorf("%w: %s", extract.ErrInputNotFound, path))
		}

		decoder := video.OptionsFromConfig()
		if decoder.Resolve(path) == video.BackendFFmpeg {
			CheckDependencies(decoder.FFprobePath)
		}

		meta, err := video.Probe(context.Background(), path, decoder)
		if err != nil {
			handleErr(fmt.Errorf("%w: %w", extract.ErrOpenFailure, err))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(meta))
			return
		}

		cmd.Println(report.MetadataTable(meta))
	},
}
