package where

import (
	"path/filepath"
	"testing"

	"github.com/epishuffle/epishuffle/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("ConfigFile()", func() {
			So(filepath.Base(ConfigFile()), ShouldEqual, "epishuffle.toml")
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Shows()", func() {
			path := Shows()
			So(filepath.Base(path), ShouldEqual, "shows")
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})

	Convey("Given the config path override", t, func() {
		t.Setenv(EnvConfigPath, "/tmp/epishuffle-test")

		Convey("Config() should honour it", func() {
			So(Config(), ShouldEqual, "/tmp/epishuffle-test")
		})
	})
}
