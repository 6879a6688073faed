package icon

import (
	"testing"

	"github.com/epishuffle/epishuffle/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Every catalog icon renders in every variant", t, func() {
		for _, variant := range AvailableVariants() {
			viper.Set(key.IconsVariant, variant)
			for _, i := range []Icon{Fail, Success, Progress, Show, Season, Episode} {
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("Plain icons are ASCII", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(Get(Show), ShouldEqual, "#")
		So(Get(Season), ShouldEqual, "S")
		So(Get(Episode), ShouldEqual, "E")
	})

	Convey("Unknown variants and icons render nothing", t, func() {
		viper.Set(key.IconsVariant, "")
		So(Get(Episode), ShouldBeEmpty)

		viper.Set(key.IconsVariant, "plain")
		So(Get(Icon(99)), ShouldBeEmpty)
	})
}
