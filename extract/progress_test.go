package extract

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProgress(t *testing.T) {
	Convey("Given a progress counter for 4 frames", t, func() {
		p := NewProgress(4)

		Convey("It should start empty", func() {
			So(p.Decoded(), ShouldEqual, 0)
			So(p.Fraction(), ShouldEqual, 0.0)
		})

		Convey("Decoding should advance the fraction", func() {
			p.addDecoded()
			So(p.Fraction(), ShouldEqual, 0.25)
		})

		Convey("Writes should be counted separately", func() {
			p.addDecoded()
			p.addWritten(100)
			p.addWritten(50)
			So(p.Written(), ShouldEqual, 2)
			So(p.Bytes(), ShouldEqual, 150)
			So(p.Decoded(), ShouldEqual, 1)
		})

		Convey("Outrunning the estimate should grow the total", func() {
			for i := 0; i < 6; i++ {
				p.addDecoded()
			}
			So(p.Total(), ShouldEqual, 6)
			So(p.Fraction(), ShouldEqual, 1.0)
		})
	})

	Convey("Concurrent updates should not be lost", t, func() {
		p := NewProgress(1000)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 125; j++ {
					p.addWritten(1)
				}
			}()
		}
		wg.Wait()
		So(p.Written(), ShouldEqual, 1000)
	})

	Convey("A zero total has no fraction", t, func() {
		So(NewProgress(0).Fraction(), ShouldEqual, 0.0)
	})
}
