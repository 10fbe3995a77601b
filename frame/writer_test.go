package frame

import (
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: 200, A: 255})
		}
	}
	return img
}

func TestName(t *testing.T) {
	Convey("Name", t, func() {
		So(Name(0), ShouldEqual, "frame_0000.jpg")
		So(Name(42), ShouldEqual, "frame_0042.jpg")
		So(Name(9999), ShouldEqual, "frame_9999.jpg")
		So(Name(12345), ShouldEqual, "frame_12345.jpg")
	})
}

func TestWriter(t *testing.T) {
	Convey("Given a writer on an in-memory filesystem", t, func() {
		fs := afero.NewMemMapFs()
		So(fs.MkdirAll("/out", 0755), ShouldBeNil)
		w := NewWriter(fs, "/out", 90)

		Convey("Path should join the directory and the frame name", func() {
			So(w.Path(7), ShouldEqual, filepath.Join("/out", "frame_0007.jpg"))
		})

		Convey("When a frame is written", func() {
			n, err := w.Write(3, testImage())
			So(err, ShouldBeNil)

			Convey("The reported size should match the file", func() {
				info, err := fs.Stat("/out/frame_0003.jpg")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, info.Size())
				So(n, ShouldBeGreaterThan, 0)
			})

			Convey("The file should decode as a JPEG of the same size", func() {
				f, err := fs.Open("/out/frame_0003.jpg")
				So(err, ShouldBeNil)
				defer f.Close()

				img, err := jpeg.Decode(f)
				So(err, ShouldBeNil)
				So(img.Bounds().Dx(), ShouldEqual, 8)
				So(img.Bounds().Dy(), ShouldEqual, 6)
			})
		})
	})

	Convey("Given a read-only filesystem", t, func() {
		w := NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/out", DefaultQuality)

		Convey("The error should name the failing index", func() {
			_, err := w.Write(12, testImage())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "frame 12")
		})
	})

	Convey("An invalid quality falls back to the default", t, func() {
		So(NewWriter(afero.NewMemMapFs(), "/", 0).quality, ShouldEqual, DefaultQuality)
		So(NewWriter(afero.NewMemMapFs(), "/", 101).quality, ShouldEqual, DefaultQuality)
	})
}

func TestExisting(t *testing.T) {
	Convey("Given a directory with frames and other files", t, func() {
		fs := afero.NewMemMapFs()
		So(fs.MkdirAll("/out/frame_0009.jpg.d", 0755), ShouldBeNil)
		for _, name := range []string{"frame_0001.jpg", "frame_0000.jpg", "notes.txt", "frame_1.jpg"} {
			So(afero.WriteFile(fs, filepath.Join("/out", name), []byte{1}, 0644), ShouldBeNil)
		}

		Convey("Only frame files should be listed, in order", func() {
			names, err := Existing(fs, "/out")
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []string{"frame_0000.jpg", "frame_0001.jpg"})
		})
	})

	Convey("A missing directory holds no frames", t, func() {
		names, err := Existing(afero.NewMemMapFs(), "/absent")
		So(err, ShouldBeNil)
		So(names, ShouldBeEmpty)
	})
}
