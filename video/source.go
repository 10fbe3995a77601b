// Package video opens video files and decodes them frame by frame.
//
// Two backends are available: an ffmpeg subprocess that streams raw RGBA
// frames over a pipe (any container ffmpeg understands), and a pure Go MPEG-1
// decoder for .mpg files on machines without ffmpeg.
package video

import (
	"context"
	"fmt"
	"image"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/framex-cli/framex/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Source is an opened, sequentially decodable video.
type Source interface {
	// Metadata returns the normalized stream description.
	Metadata() Metadata

	// Next decodes the following frame. It returns io.EOF once the stream is exhausted.
	// Every returned image is freshly allocated and never touched by the source again.
	Next() (image.Image, error)

	// Close releases the underlying file or process. It is safe to call more than once.
	Close() error
}

// Backend names a decoding implementation.
type Backend string

const (
	BackendAuto   Backend = "auto"
	BackendFFmpeg Backend = "ffmpeg"
	BackendMPEG   Backend = "mpeg"
)

// mpegExtensions are the containers the pure Go decoder understands.
var mpegExtensions = []string{".mpg", ".mpeg", ".m1v"}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Options selects and configures a backend.
type Options struct {
	Backend     Backend
	FFmpegPath  string
	FFprobePath string
	CacheProbe  bool
}

// OptionsFromConfig reads decoder settings from the global configuration.
func OptionsFromConfig() Options {
	return Options{
		Backend:     Backend(viper.GetString(key.DecoderBackend)),
		FFmpegPath:  viper.GetString(key.DecoderFFmpegPath),
		FFprobePath: viper.GetString(key.DecoderFFprobePath),
		CacheProbe:  viper.GetBool(key.DecoderCacheProbe),
	}
}

// Resolve turns BackendAuto into a concrete backend for path. MPEG-1 files
// fall back to the pure Go decoder only when ffmpeg cannot be found.
func (o Options) Resolve(path string) Backend {
	if o.Backend != BackendAuto && o.Backend != "" {
		return o.Backend
	}

	ext := strings.ToLower(filepath.Ext(path))
	if lo.Contains(mpegExtensions, ext) {
		if _, err := lookPath(o.FFmpegPath); err != nil {
			return BackendMPEG
		}
	}

	return BackendFFmpeg
}

// Open opens path with the backend chosen by opts.
func Open(ctx context.Context, path string, opts Options) (Source, error) {
	switch backend := opts.Resolve(path); backend {
	case BackendFFmpeg:
		return openFFmpeg(ctx, path, opts)
	case BackendMPEG:
		return openMPEG(path)
	default:
		return nil, fmt.Errorf("unknown decoder backend %q", backend)
	}
}

// Probe reads the normalized metadata of path without decoding any frame.
func Probe(ctx context.Context, path string, opts Options) (Metadata, error) {
	switch backend := opts.Resolve(path); backend {
	case BackendFFmpeg:
		meta, err := cachedProbe(ctx, path, opts)
		if err != nil {
			return Metadata{}, err
		}
		return meta.Normalize(), nil
	case BackendMPEG:
		src, err := openMPEG(path)
		if err != nil {
			return Metadata{}, err
		}
		defer src.Close()
		return src.Metadata(), nil
	default:
		return Metadata{}, fmt.Errorf("unknown decoder backend %q", backend)
	}
}
