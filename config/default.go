package config

import (
	"sort"

	"github.com/framex-cli/framex/key"
)

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string, flag ...string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}

	f := Field{Key: k, Value: v, Description: desc}
	if len(flag) > 0 {
		f.Flag = flag[0]
	}

	Default[k] = f
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.ExtractThreads, 4, "Number of concurrent frame writers", "threads")
	register(key.ExtractQueueSize, 0, "Decoded frames allowed to wait for a writer.\n0 means twice the number of writers", "queue-size")
	register(key.ExtractQuality, 95, "JPEG quality of written frames. From 1 to 100", "quality")

	register(key.DecoderBackend, "auto", "Video decoding backend.\nAvailable options are: auto, ffmpeg, mpeg", "backend")
	register(key.DecoderFFmpegPath, "ffmpeg", "Path or name of the ffmpeg executable")
	register(key.DecoderFFprobePath, "ffprobe", "Path or name of the ffprobe executable")
	register(key.DecoderCacheProbe, true, "Cache probed video metadata between runs")

	register(key.ProgressEnabled, true, "Show extraction progress")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)", "icons")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Enable automatic version check")
	register(key.CliAssumeYes, false, "Overwrite existing frames without asking", "yes")
}

// Fields returns the registered fields sorted by key.
func Fields() []Field {
	fields := make([]Field, 0, len(Default))
	for _, f := range Default {
		fields = append(fields, f)
	}

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}
