package version

import (
	"bytes"
	"testing"

	"github.com/framex-cli/framex/constant"
	"github.com/framex-cli/framex/filesystem"
	"github.com/framex-cli/framex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare should order semantic versions", t, func() {
		for _, tc := range []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.1.0", "0.1.1", -1},
			{"2.0.0", "v10.0.0", -1},
			{"1.2", "1.2.0", 0},
			{"1.3.0-rc1", "1.2.9", 1},
		} {
			got, err := Compare(tc.a, tc.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tc.want)
		}
	})

	Convey("Malformed versions should be rejected", t, func() {
		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a cached release", t, func() {
		So(releases().Set("99.0.0"), ShouldBeNil)

		Convey("Latest should answer from the cache", func() {
			latest, err := Latest()
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "99.0.0")
		})

		Convey("Notify should announce it when enabled", func() {
			viper.Set(key.CliVersionCheck, true)
			defer viper.Set(key.CliVersionCheck, false)

			var out bytes.Buffer
			Notify(&out)
			So(out.String(), ShouldContainSubstring, "New version is available")
			So(out.String(), ShouldContainSubstring, constant.Version)
		})

		Convey("Notify should stay silent when disabled", func() {
			viper.Set(key.CliVersionCheck, false)

			var out bytes.Buffer
			Notify(&out)
			So(out.Len(), ShouldEqual, 0)
		})
	})
}
