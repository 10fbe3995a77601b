package video

import (
	"testing"

	"github.com/framex-cli/framex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestProbeCacheKey(t *testing.T) {
	Convey("Given a video file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/videos", 0755), ShouldBeNil)
		So(fs.WriteFile("/videos/clip.mp4", []byte("first"), 0644), ShouldBeNil)

		first, err := probeCacheKey("/videos/clip.mp4")
		So(err, ShouldBeNil)

		Convey("The key should be stable", func() {
			again, err := probeCacheKey("/videos/clip.mp4")
			So(err, ShouldBeNil)
			So(again, ShouldEqual, first)
		})

		Convey("Replacing the file should change the key", func() {
			So(fs.WriteFile("/videos/clip.mp4", []byte("second version"), 0644), ShouldBeNil)
			changed, err := probeCacheKey("/videos/clip.mp4")
			So(err, ShouldBeNil)
			So(changed, ShouldNotEqual, first)
		})
	})

	Convey("A missing file has no key", t, func() {
		_, err := probeCacheKey("/videos/missing.mp4")
		So(err, ShouldNotBeNil)
	})
}

func TestProbeCache(t *testing.T) {
	Convey("Given a cached probe result", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/videos", 0755), ShouldBeNil)
		So(fs.WriteFile("/videos/cached.mp4", []byte("data"), 0644), ShouldBeNil)

		cacheKey, err := probeCacheKey("/videos/cached.mp4")
		So(err, ShouldBeNil)

		want := Metadata{FrameRate: 24, TotalFrames: 48, Width: 64, Height: 32, Codec: ParseFourCC("avc1")}
		So(probes().Set(map[string]Metadata{cacheKey: want}), ShouldBeNil)

		Convey("ffprobe should not be invoked", func() {
			opts := Options{FFprobePath: "/nonexistent/ffprobe", CacheProbe: true}
			got, err := cachedProbe(t.Context(), "/videos/cached.mp4", opts)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, want)
		})
	})
}

func TestProbe(t *testing.T) {
	Convey("Given a cached probe result without a frame count", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/videos", 0755), ShouldBeNil)
		So(fs.WriteFile("/videos/stream.mkv", []byte("stream"), 0644), ShouldBeNil)

		cacheKey, err := probeCacheKey("/videos/stream.mkv")
		So(err, ShouldBeNil)
		So(probes().Set(map[string]Metadata{cacheKey: {Width: 320, Height: 240}}), ShouldBeNil)

		Convey("Probe should return normalized metadata", func() {
			opts := Options{Backend: BackendFFmpeg, FFprobePath: "/nonexistent/ffprobe", CacheProbe: true}
			meta, err := Probe(t.Context(), "/videos/stream.mkv", opts)
			So(err, ShouldBeNil)
			So(meta.FrameRate, ShouldEqual, DefaultFrameRate)
			So(meta.TotalFrames, ShouldEqual, DefaultTotalFrames)
			So(meta.Resolution(), ShouldEqual, "320x240")
		})
	})

	Convey("An unknown backend should be rejected", t, func() {
		_, err := Probe(t.Context(), "/videos/stream.mkv", Options{Backend: "vlc"})
		So(err, ShouldNotBeNil)
	})
}

func TestPruneStale(t *testing.T) {
	Convey("Given cache entries for a kept, a changed and a removed file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/videos", 0755), ShouldBeNil)
		So(fs.WriteFile("/videos/kept.mp4", []byte("kept"), 0644), ShouldBeNil)
		So(fs.WriteFile("/videos/changed.mp4", []byte("old"), 0644), ShouldBeNil)
		So(fs.WriteFile("/videos/removed.mp4", []byte("gone"), 0644), ShouldBeNil)

		saved := map[string]Metadata{}
		for _, path := range []string{"/videos/kept.mp4", "/videos/changed.mp4", "/videos/removed.mp4"} {
			cacheKey, err := probeCacheKey(path)
			So(err, ShouldBeNil)
			saved[cacheKey] = Metadata{Width: 1, Height: 1}
		}

		So(fs.WriteFile("/videos/changed.mp4", []byte("new and longer"), 0644), ShouldBeNil)
		So(fs.Remove("/videos/removed.mp4"), ShouldBeNil)

		pruneStale(saved)

		Convey("Only the unchanged file should remain", func() {
			keptKey, err := probeCacheKey("/videos/kept.mp4")
			So(err, ShouldBeNil)
			So(saved, ShouldHaveLength, 1)
			So(saved, ShouldContainKey, keptKey)
		})
	})
}
