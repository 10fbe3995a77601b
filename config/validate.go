package config

import (
	"errors"
	"fmt"

	"github.com/framex-cli/framex/key"
	"github.com/spf13/viper"
)

var validBackends = map[string]bool{
	"auto": true, "ffmpeg": true, "mpeg": true,
}

// Validate checks the extraction-related settings currently held by viper.
// All violations are joined into a single error.
func Validate() error {
	var errs []error

	if threads := viper.GetInt(key.ExtractThreads); threads < 1 {
		errs = append(errs, fmt.Errorf("%s: must be at least 1, got %d", key.ExtractThreads, threads))
	}

	if size := viper.GetInt(key.ExtractQueueSize); size < 0 {
		errs = append(errs, fmt.Errorf("%s: must not be negative, got %d", key.ExtractQueueSize, size))
	}

	if q := viper.GetInt(key.ExtractQuality); q < 1 || q > 100 {
		errs = append(errs, fmt.Errorf("%s: must be between 1 and 100, got %d", key.ExtractQuality, q))
	}

	if b := viper.GetString(key.DecoderBackend); !validBackends[b] {
		errs = append(errs, fmt.Errorf("%s: must be one of auto, ffmpeg, mpeg; got %q", key.DecoderBackend, b))
	}

	return errors.Join(errs...)
}
