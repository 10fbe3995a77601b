package extract

import (
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRunError(t *testing.T) {
	Convey("Given a write failure at a known index", t, func() {
		err := &RunError{Kind: ErrWrite, Index: 12, Decoded: 20, Written: 11, Err: os.ErrPermission}

		Convey("The message should carry the index and the cause", func() {
			So(err.Error(), ShouldEqual, "failed to write frame 12: permission denied")
		})

		Convey("errors.Is should match both the kind and the cause", func() {
			So(errors.Is(err, ErrWrite), ShouldBeTrue)
			So(errors.Is(err, os.ErrPermission), ShouldBeTrue)
			So(errors.Is(err, ErrDecode), ShouldBeFalse)
		})

		Convey("It should count as partial", func() {
			So(err.Partial(), ShouldBeTrue)
		})
	})

	Convey("Given an input failure", t, func() {
		err := &RunError{Kind: ErrInputNotFound, Index: noIndex}

		Convey("The message should be the kind alone", func() {
			So(err.Error(), ShouldEqual, "video file not found")
			So(err.HasIndex(), ShouldBeFalse)
			So(err.Partial(), ShouldBeFalse)
		})

		Convey("Unwrap should still expose the kind", func() {
			So(errors.Is(err, ErrInputNotFound), ShouldBeTrue)
		})
	})
}
