package report

import (
	"bytes"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/framex-cli/framex/extract"
	"github.com/framex-cli/framex/video"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeCounter struct {
	decoded atomic.Int64
	total   int
}

func (c *fakeCounter) Fraction() float64 { return float64(c.decoded.Load()) / float64(c.total) }
func (c *fakeCounter) Decoded() int      { return int(c.decoded.Load()) }
func (c *fakeCounter) Total() int        { return c.total }

var sample = video.Metadata{
	FrameRate:   25,
	TotalFrames: 250,
	Width:       1920,
	Height:      1080,
	Codec:       video.ParseFourCC("avc1"),
}

func TestMetadataTable(t *testing.T) {
	Convey("Given the metadata of a ten second clip", t, func() {
		Convey("The rows should be in display order", func() {
			rows := MetadataRows(sample)
			So(rows, ShouldResemble, []Row{
				{"FPS", "25.00"},
				{"Total Frames", "250"},
				{"Duration", "10.00 sec"},
				{"Resolution", "1920x1080"},
				{"Codec", "avc1"},
			})
		})

		Convey("The rendered table should carry the title and every value", func() {
			rendered := MetadataTable(sample)
			So(rendered, ShouldContainSubstring, "Video Information")
			for _, r := range MetadataRows(sample) {
				So(rendered, ShouldContainSubstring, r.Label)
				So(rendered, ShouldContainSubstring, r.Value)
			}
		})
	})

	Convey("An unknown codec should be shown as such", t, func() {
		meta := sample
		meta.Codec = 0
		So(MetadataRows(meta)[4].Value, ShouldEqual, "Unknown")
	})
}

func TestTracker(t *testing.T) {
	Convey("Given a tracker writing to a buffer", t, func() {
		var out bytes.Buffer
		counter := &fakeCounter{total: 4}

		Convey("When enabled it should print plain progress lines", func() {
			tracker := NewTracker(&out, counter, true)
			tracker.interval = 5 * time.Millisecond
			tracker.Start()

			counter.decoded.Store(2)
			time.Sleep(30 * time.Millisecond)
			counter.decoded.Store(4)
			tracker.Stop()

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			So(len(lines), ShouldBeGreaterThanOrEqualTo, 1)
			So(lines[len(lines)-1], ShouldContainSubstring, "100.0% (4/4)")
		})

		Convey("Stopping twice should be harmless", func() {
			tracker := NewTracker(&out, counter, true)
			tracker.Start()
			tracker.Stop()
			So(tracker.Stop, ShouldNotPanic)
		})

		Convey("When disabled it should print nothing", func() {
			tracker := NewTracker(&out, counter, false)
			tracker.Start()
			tracker.Stop()
			So(out.Len(), ShouldEqual, 0)
		})
	})
}

func TestSummary(t *testing.T) {
	res := &extract.Result{
		Video:     "clip.mp4",
		OutputDir: "frames",
		Frames:    3,
		Decoded:   4,
		Bytes:     1500,
		Threads:   4,
		Elapsed:   0.5,
		Metadata:  video.Metadata{FrameRate: 25, TotalFrames: 10, Width: 4, Height: 4},
	}

	Convey("Given a successful run", t, func() {
		var out bytes.Buffer
		Success(&out, res)

		Convey("It should announce the frame count and the video", func() {
			So(out.String(), ShouldContainSubstring, "Success! Extracted 3 frames from 'clip.mp4'.")
		})

		Convey("It should summarize the output size", func() {
			So(out.String(), ShouldContainSubstring, "1.5 kB")
			So(out.String(), ShouldContainSubstring, "4 writers")
		})
	})

	Convey("Given a failed run", t, func() {
		var out bytes.Buffer
		err := &extract.RunError{Kind: extract.ErrWrite, Index: 3, Decoded: 4, Written: 3, Err: errors.New("disk full")}
		Failure(&out, res, err)

		Convey("It should print the error", func() {
			So(out.String(), ShouldContainSubstring, "failed to write frame 3: disk full")
		})

		Convey("It should report the partial progress", func() {
			So(out.String(), ShouldContainSubstring, "3 of 10 frames written to frames (4 decoded), stopped at frame_0003.jpg")
		})
	})

	Convey("Given a failure before any frame was written", t, func() {
		err := &extract.RunError{Kind: extract.ErrDecode, Index: -1, Decoded: 0, Written: 0, Err: errors.New("corrupt")}

		So(PartialLine(err, res), ShouldEqual, "No frames written to frames (0 decoded)")
	})

	Convey("Given a cancelled run that decoded every frame", t, func() {
		err := &extract.RunError{Kind: extract.ErrCancelled, Index: -1, Decoded: 10, Written: 7}

		So(PartialLine(err, res), ShouldEqual, "7 of 10 frames written to frames")
	})

	Convey("Given an error without progress", t, func() {
		var out bytes.Buffer
		Failure(&out, nil, errors.New("boom"))

		So(out.String(), ShouldContainSubstring, "boom")
		So(out.String(), ShouldNotContainSubstring, "frames written")
	})

	Convey("JSON output should use the documented field names", t, func() {
		var out bytes.Buffer
		So(JSON(&out, res), ShouldBeNil)
		So(out.String(), ShouldContainSubstring, `"elapsed_seconds": 0.5`)
		So(out.String(), ShouldContainSubstring, `"frames": 3`)
	})
}
