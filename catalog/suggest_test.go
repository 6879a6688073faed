package catalog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSuggest(t *testing.T) {
	Convey("Given a catalog", t, func() {
		c, err := New([]*Show{
			buildShow("brooklyn-nine-nine", 1),
			buildShow("community", 1),
			buildShow("friends", 1),
			buildShow("silicon-valley", 1),
		})
		So(err, ShouldBeNil)

		Convey("A prefix suggests the full key", func() {
			So(c.Suggest("brooklyn").MustGet(), ShouldEqual, "brooklyn-nine-nine")
		})

		Convey("A typo suggests the nearest key", func() {
			So(c.Suggest("freinds").MustGet(), ShouldEqual, "friends")
		})

		Convey("Case is ignored", func() {
			So(c.Suggest("COMMUNITY").MustGet(), ShouldEqual, "community")
		})

		Convey("Nothing close yields no suggestion", func() {
			So(c.Suggest("zzzzzzzzzzzzzzzz").IsAbsent(), ShouldBeTrue)
		})

		Convey("An empty key yields no suggestion", func() {
			So(c.Suggest("  ").IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given an empty catalog", t, func() {
		c, _ := New(nil)
		So(c.Suggest("friends").IsAbsent(), ShouldBeTrue)
	})
}
