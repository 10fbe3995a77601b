package video

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

var errNoVideoStream = errors.New("no video stream found")

type probeStream struct {
	CodecType    string `json:"codec_type"`
	CodecTag     string `json:"codec_tag"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AvgFrameRate string `json:"avg_frame_rate"`
	RFrameRate   string `json:"r_frame_rate"`
	NbFrames     string `json:"nb_frames"`
	Duration     string `json:"duration"`
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// probe runs ffprobe against path and returns the raw, unnormalized metadata.
func probe(ctx context.Context, path string, opts Options) (Metadata, error) {
	cmd := exec.CommandContext(ctx, opts.FFprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_streams",
		"-show_format",
		"-print_format", "json",
		path,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return Metadata{}, fmt.Errorf("ffprobe: %w: %s", err, msg)
		}
		return Metadata{}, fmt.Errorf("ffprobe: %w", err)
	}

	return parseProbe(out)
}

// parseProbe extracts metadata from ffprobe's JSON output.
func parseProbe(data []byte) (Metadata, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Metadata{}, fmt.Errorf("decode ffprobe output: %w", err)
	}

	var stream *probeStream
	for i := range out.Streams {
		if out.Streams[i].CodecType == "video" {
			stream = &out.Streams[i]
			break
		}
	}
	if stream == nil {
		return Metadata{}, errNoVideoStream
	}

	rate := parseRational(stream.AvgFrameRate)
	if rate <= 0 {
		rate = parseRational(stream.RFrameRate)
	}

	meta := Metadata{
		FrameRate: rate,
		Width:     stream.Width,
		Height:    stream.Height,
		Codec:     parseCodecTag(stream.CodecTag),
	}

	// Containers without a frame index only know their duration.
	meta.TotalFrames = parseInt(stream.NbFrames).OrElse(0)
	if meta.TotalFrames <= 0 && rate > 0 {
		duration := parseFloat(stream.Duration).OrElse(parseFloat(out.Format.Duration).OrElse(0))
		meta.TotalFrames = int(math.Round(duration * rate))
	}

	return meta, nil
}

// parseRational parses ffprobe rates such as "30000/1001" or "25".
// Malformed input and zero denominators yield 0.
func parseRational(s string) float64 {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}

// parseCodecTag converts ffprobe's hex codec_tag ("0x31637661") into a FourCC.
func parseCodecTag(s string) FourCC {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0
	}
	return FourCC(v)
}

func parseInt(s string) mo.Option[int] {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return mo.None[int]()
	}
	return mo.Some(v)
}

func parseFloat(s string) mo.Option[float64] {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return mo.None[float64]()
	}
	return mo.Some(v)
}
