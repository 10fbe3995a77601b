package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/framex-cli/framex/config"
	"github.com/framex-cli/framex/extract"
	"github.com/framex-cli/framex/filesystem"
	"github.com/framex-cli/framex/frame"
	"github.com/framex-cli/framex/icon"
	"github.com/framex-cli/framex/key"
	"github.com/framex-cli/framex/log"
	"github.com/framex-cli/framex/open"
	"github.com/framex-cli/framex/report"
	"github.com/framex-cli/framex/style"
	"github.com/framex-cli/framex/util"
	"github.com/framex-cli/framex/video"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionBackends(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{string(video.BackendAuto), string(video.BackendFFmpeg), string(video.BackendMPEG)}, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntP("threads", "t", extract.DefaultThreads, "Number of concurrent frame writers")
	lo.Must0(viper.BindPFlag(key.ExtractThreads, extractCmd.Flags().Lookup("threads")))

	extractCmd.Flags().Int("queue-size", 0, "Decoded frames allowed to wait for a writer (0 means twice the threads)")
	lo.Must0(viper.BindPFlag(key.ExtractQueueSize, extractCmd.Flags().Lookup("queue-size")))

	extractCmd.Flags().IntP("quality", "q", frame.DefaultQuality, "JPEG quality of the written frames (1-100)")
	lo.Must0(viper.BindPFlag(key.ExtractQuality, extractCmd.Flags().Lookup("quality")))

	extractCmd.Flags().StringP("backend", "b", string(video.BackendAuto), "Decoder backend: auto, ffmpeg or mpeg")
	lo.Must0(extractCmd.RegisterFlagCompletionFunc("backend", completionBackends))
	lo.Must0(viper.BindPFlag(key.DecoderBackend, extractCmd.Flags().Lookup("backend")))

	extractCmd.Flags().BoolP("yes", "y", false, "Overwrite existing frames without asking")
	lo.Must0(viper.BindPFlag(key.CliAssumeYes, extractCmd.Flags().Lookup("yes")))

	extractCmd.Flags().BoolP("json", "j", false, "Print the result as JSON instead of the summary")
	extractCmd.Flags().BoolP("open", "o", false, "Open the output directory once extraction succeeds")
}

// extractCmd decodes a video and writes every frame to the output directory.
var extractCmd = &cobra.Command{
	Use:   "extract <video_path> <output_dir>",
	Short: "Extract every frame of a video into numbered JPEG files",
	Long: `Extract every frame of a video into numbered JPEG files.

Frames are written as frame_0000.jpg, frame_0001.jpg and so on. The output
directory is created, along with any missing parents, before the first frame
is written.`,
	Example: "  framex extract clip.mp4 frames --threads 8",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(config.Validate())

		var (
			videoPath = args[0]
			outputDir = args[1]
			asJSON    = lo.Must(cmd.Flags().GetBool("json"))
			decoder   = video.OptionsFromConfig()
		)

		if err := extract.CheckInput(videoPath); err != nil {
			failExtraction(nil, err)
		}

		if decoder.Resolve(videoPath) == video.BackendFFmpeg {
			CheckDependencies(decoder.FFmpegPath, decoder.FFprobePath)
		}

		if !confirmOverwrite(outputDir) {
			cmd.PrintErrf("%s Nothing extracted\n", icon.Get(icon.Warn))
			return
		}

		result, err := runExtraction(cmd, extract.Options{
			VideoPath: videoPath,
			OutputDir: outputDir,
			Threads:   viper.GetInt(key.ExtractThreads),
			QueueSize: viper.GetInt(key.ExtractQueueSize),
			Quality:   viper.GetInt(key.ExtractQuality),
			Open: func(ctx context.Context, path string) (video.Source, error) {
				return video.Open(ctx, path, decoder)
			},
		}, asJSON)
		if err != nil {
			failExtraction(result, err)
		}

		if asJSON {
			handleErr(report.JSON(cmd.OutOrStdout(), result))
			return
		}

		report.Success(cmd.OutOrStdout(), result)

		if lo.Must(cmd.Flags().GetBool("open")) {
			if err := open.Start(outputDir); err != nil {
				log.Warnf("open output directory: %v", err)
				cmd.PrintErrf("%s %v\n", icon.Get(icon.Warn), err)
			}
		}
	},
}

// runExtraction opens the source and runs the writer pool until the stream
// ends or the process is interrupted.
func runExtraction(cmd *cobra.Command, opts extract.Options, asJSON bool) (*extract.Result, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	extraction, err := extract.Open(ctx, opts)
	if err != nil {
		return nil, err
	}

	if !asJSON {
		cmd.Println(report.MetadataTable(extraction.Metadata()))
		cmd.Println()
	}

	tracker := report.NewTracker(os.Stderr, extraction.Progress(), viper.GetBool(key.ProgressEnabled))
	tracker.Start()
	defer tracker.Stop()

	return extraction.Run(ctx)
}

// confirmOverwrite asks before writing into a directory that already holds
// frames. Without a terminal to ask on, it proceeds.
func confirmOverwrite(dir string) bool {
	if viper.GetBool(key.CliAssumeYes) || !util.IsTerminal(os.Stdin) {
		return true
	}

	existing, err := frame.Existing(filesystem.API(), dir)
	if err != nil || len(existing) == 0 {
		return true
	}

	var overwrite bool
	err = survey.AskOne(&survey.Confirm{
		Message: fmt.Sprintf("%s already contains %s. Overwrite?", dir, util.Quantify(len(existing), "frame", "frames")),
		Default: false,
	}, &overwrite)
	handleErr(err)

	return overwrite
}

func failExtraction(result *extract.Result, err error) {
	log.Error(err)
	report.Failure(os.Stderr, result, err)

	if errors.Is(err, extract.ErrCancelled) {
		_, _ = fmt.Fprintln(os.Stderr, style.Faint("Interrupted. Frames already written were kept."))
	}
	os.Exit(1)
}
