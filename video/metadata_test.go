package video

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFourCC(t *testing.T) {
	Convey("Given a packed codec tag", t, func() {
		Convey("0x31637661 should decode to avc1", func() {
			So(FourCC(0x31637661).String(), ShouldEqual, "avc1")
		})

		Convey("The lowest byte should come first", func() {
			So(FourCC('m'|'p'<<8|'4'<<16|'v'<<24).String(), ShouldEqual, "mp4v")
		})

		Convey("A zero tag should render as Unknown", func() {
			So(FourCC(0).String(), ShouldEqual, "Unknown")
		})

		Convey("ParseFourCC should invert String", func() {
			So(ParseFourCC("hvc1").String(), ShouldEqual, "hvc1")
			So(ParseFourCC("Unknown"), ShouldEqual, FourCC(0))
			So(ParseFourCC(""), ShouldEqual, FourCC(0))
		})

		Convey("It should survive a JSON round trip", func() {
			data, err := json.Marshal(Metadata{Codec: ParseFourCC("avc1")})
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"codec":"avc1"`)

			var meta Metadata
			So(json.Unmarshal(data, &meta), ShouldBeNil)
			So(meta.Codec.String(), ShouldEqual, "avc1")
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given metadata with non-positive values", t, func() {
		meta := Metadata{FrameRate: 0, TotalFrames: -3, Width: 640, Height: 480}.Normalize()

		Convey("Frame rate should default to 30", func() {
			So(meta.FrameRate, ShouldEqual, 30.0)
		})

		Convey("Frame count should default to 1", func() {
			So(meta.TotalFrames, ShouldEqual, 1)
		})

		Convey("Dimensions should be untouched", func() {
			So(meta.Resolution(), ShouldEqual, "640x480")
		})
	})

	Convey("Given metadata with valid values", t, func() {
		meta := Metadata{FrameRate: 25, TotalFrames: 250}

		Convey("Normalize should keep them", func() {
			So(meta.Normalize(), ShouldResemble, meta)
		})

		Convey("Duration should be frames over rate", func() {
			So(meta.Duration(), ShouldEqual, 10*time.Second)
		})
	})

	Convey("Duration is zero without a frame rate", t, func() {
		So(Metadata{TotalFrames: 10}.Duration(), ShouldEqual, time.Duration(0))
	})
}
