package video

import (
	"fmt"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
)

// Fallbacks applied when a container reports non-positive values.
const (
	DefaultFrameRate   = 30.0
	DefaultTotalFrames = 1
)

// unknownCodec is how a zero codec tag is rendered.
const unknownCodec = "Unknown"

// FourCC is a four-character codec identifier packed little-endian into 32 bits,
// first character in the lowest byte.
type FourCC uint32

// ParseFourCC packs a four-character code. Anything that is not exactly four
// bytes long, including "Unknown", yields the zero tag.
func ParseFourCC(s string) FourCC {
	if len(s) != 4 {
		return 0
	}
	return FourCC(uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24)
}

// String decodes the packed characters, or returns "Unknown" for a zero tag.
func (c FourCC) String() string {
	if c == 0 {
		return unknownCodec
	}

	var b strings.Builder
	for i := 0; i < 4; i++ {
		b.WriteRune(rune((uint32(c) >> (8 * i)) & 0xFF))
	}
	return b.String()
}

func (c FourCC) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *FourCC) UnmarshalText(text []byte) error {
	*c = ParseFourCC(string(text))
	return nil
}

// JSONSchema describes the textual form produced by MarshalText.
func (FourCC) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: `Four character codec tag, or "Unknown".`,
	}
}

// Metadata describes an opened video stream.
type Metadata struct {
	FrameRate   float64 `json:"frame_rate" jsonschema:"description=Frames per second reported by the container."`
	TotalFrames int     `json:"total_frames" jsonschema:"description=Frame count reported by the container. May be an estimate."`
	Width       int     `json:"width" jsonschema:"description=Frame width in pixels."`
	Height      int     `json:"height" jsonschema:"description=Frame height in pixels."`
	Codec       FourCC  `json:"codec"`
}

// Normalize substitutes the defaults for a non-positive frame rate or frame count.
func (m Metadata) Normalize() Metadata {
	if m.FrameRate <= 0 {
		m.FrameRate = DefaultFrameRate
	}
	if m.TotalFrames <= 0 {
		m.TotalFrames = DefaultTotalFrames
	}
	return m
}

// Duration is the frame count divided by the frame rate. Zero when the rate is unknown.
func (m Metadata) Duration() time.Duration {
	if m.FrameRate <= 0 {
		return 0
	}
	return time.Duration(float64(m.TotalFrames) / m.FrameRate * float64(time.Second))
}

// Resolution renders the frame size as WIDTHxHEIGHT.
func (m Metadata) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}
