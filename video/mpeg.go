package video

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/framex-cli/framex/filesystem"
	"github.com/gen2brain/mpeg"
	"github.com/spf13/afero"
)

// mpegCodec is the tag OpenCV-style tooling reports for MPEG-1 video.
var mpegCodec = ParseFourCC("PIM1")

// mpegSource decodes MPEG-1 program streams in process.
type mpegSource struct {
	file afero.File
	mpg  *mpeg.MPEG
	meta Metadata
}

func openMPEG(path string) (Source, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}

	mpg, err := mpeg.New(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mpeg: %w", err)
	}
	mpg.SetAudioEnabled(false)

	if mpg.Width() <= 0 || mpg.Height() <= 0 {
		_ = f.Close()
		return nil, errNoVideoStream
	}

	// MPEG-1 streams carry no frame count; estimate it from the duration.
	rate := mpg.Framerate()
	meta := Metadata{
		FrameRate:   rate,
		TotalFrames: int(math.Round(mpg.Duration().Seconds() * rate)),
		Width:       mpg.Width(),
		Height:      mpg.Height(),
		Codec:       mpegCodec,
	}

	return &mpegSource{file: f, mpg: mpg, meta: meta.Normalize()}, nil
}

func (s *mpegSource) Metadata() Metadata {
	return s.meta
}

// Next returns a copy of the decoded picture: the decoder reuses its planes.
func (s *mpegSource) Next() (image.Image, error) {
	for !s.mpg.HasEnded() {
		if frame := s.mpg.DecodeVideo(); frame != nil {
			return imaging.Clone(frame.YCbCr()), nil
		}
	}
	return nil, io.EOF
}

func (s *mpegSource) Close() error {
	return s.file.Close()
}
