package video

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleProbe = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "codec_tag_string": "avc1",
      "codec_tag": "0x31637661",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "30000/1001",
      "avg_frame_rate": "30000/1001",
      "duration": "10.010000",
      "nb_frames": "300"
    }
  ],
  "format": {
    "duration": "10.010000"
  }
}`

func TestParseProbe(t *testing.T) {
	Convey("Given ffprobe output for an mp4", t, func() {
		meta, err := parseProbe([]byte(sampleProbe))

		Convey("It should parse without error", func() {
			So(err, ShouldBeNil)
		})

		Convey("It should read the stream properties", func() {
			So(meta.Width, ShouldEqual, 1920)
			So(meta.Height, ShouldEqual, 1080)
			So(meta.TotalFrames, ShouldEqual, 300)
			So(meta.FrameRate, ShouldAlmostEqual, 29.97, 0.01)
			So(meta.Codec.String(), ShouldEqual, "avc1")
		})
	})

	Convey("Given a stream without a frame count", t, func() {
		meta, err := parseProbe([]byte(`{
			"streams": [{"codec_type": "video", "codec_tag": "0x0000", "width": 320, "height": 240,
				"avg_frame_rate": "0/0", "r_frame_rate": "25/1", "nb_frames": "N/A"}],
			"format": {"duration": "4.0"}
		}`))

		So(err, ShouldBeNil)

		Convey("Frame rate should fall back to r_frame_rate", func() {
			So(meta.FrameRate, ShouldEqual, 25.0)
		})

		Convey("Frame count should be estimated from the container duration", func() {
			So(meta.TotalFrames, ShouldEqual, 100)
		})

		Convey("A zero codec tag should stay unknown", func() {
			So(meta.Codec.String(), ShouldEqual, "Unknown")
		})
	})

	Convey("Given output without a video stream", t, func() {
		_, err := parseProbe([]byte(`{"streams": [{"codec_type": "audio"}]}`))

		Convey("It should report the missing stream", func() {
			So(err, ShouldEqual, errNoVideoStream)
		})
	})

	Convey("Given malformed output", t, func() {
		_, err := parseProbe([]byte(`not json`))
		So(err, ShouldNotBeNil)
	})
}

func TestParseRational(t *testing.T) {
	Convey("parseRational", t, func() {
		So(parseRational("25/1"), ShouldEqual, 25.0)
		So(parseRational("24"), ShouldEqual, 24.0)
		So(parseRational("0/0"), ShouldEqual, 0.0)
		So(parseRational("abc"), ShouldEqual, 0.0)
		So(parseRational(""), ShouldEqual, 0.0)
	})
}
