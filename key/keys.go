// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 15

// Extraction - these keys size the writer pool and tune the produced images.
const (
	ExtractThreads   = "extract.threads"
	ExtractQueueSize = "extract.queue_size"
	ExtractQuality   = "extract.quality"
)

// Decoding - these keys select and locate the video decoding backend.
const (
	DecoderBackend     = "decoder.backend"
	DecoderFFmpegPath  = "decoder.ffmpeg_path"
	DecoderFFprobePath = "decoder.ffprobe_path"
	DecoderCacheProbe  = "decoder.cache_probe"
)

// Progress - these keys govern the live extraction progress display.
const (
	ProgressEnabled = "progress.enabled"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliAssumeYes    = "cli.assume_yes"
)
