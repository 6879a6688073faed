package cmd

import (
	"errors"
	"os"
	"testing"

	"github.com/epishuffle/epishuffle/catalog"
	"github.com/epishuffle/epishuffle/config"
	"github.com/epishuffle/epishuffle/filesystem"
	"github.com/epishuffle/epishuffle/key"
	. "github.com/smartystreets/goconvey/convey"
)

const demoShow = `
title = "Demo Show"

[[seasons]]
title = "Season One"

[[seasons.episodes]]
title = "Pilot"
aired = "January 1, 2001"
description = "It begins with a long description that has to be wrapped somewhere."
`

func TestCheckFiles(t *testing.T) {
	Convey("Given show files on disk", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/in/demo.toml", []byte(demoShow), os.ModePerm), ShouldBeNil)
		So(filesystem.API().WriteFile("/in/broken.toml", []byte(`title = `), os.ModePerm), ShouldBeNil)

		Convey("When a valid file is checked", func() {
			c, err := checkFiles([]string{"/in/demo.toml"})

			Convey("Then it is loaded under its file stem", func() {
				So(err, ShouldBeNil)
				So(c.Has("demo"), ShouldBeTrue)
				So(c.Stats(), ShouldResemble, catalog.Stats{Shows: 1, Seasons: 1, Episodes: 1})
			})
		})

		Convey("When a malformed file is checked", func() {
			_, err := checkFiles([]string{"/in/demo.toml", "/in/broken.toml"})

			Convey("Then the whole check fails", func() {
				So(errors.Is(err, catalog.ErrMalformedDefinition), ShouldBeTrue)
			})
		})

		Convey("When a file does not exist", func() {
			_, err := checkFiles([]string{"/in/missing.toml"})

			Convey("Then the source is reported unavailable", func() {
				So(errors.Is(err, catalog.ErrSourceUnavailable), ShouldBeTrue)
				So(failureBox(err), ShouldContainSubstring, "/in/missing.toml")
			})
		})
	})
}

func TestPickOutput(t *testing.T) {
	Convey("Given a catalog with a single show", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/in/demo.toml", []byte(demoShow), os.ModePerm), ShouldBeNil)
		c, err := checkFiles([]string{"/in/demo.toml"})
		So(err, ShouldBeNil)

		Convey("When a selection is rendered", func() {
			picked, err := c.PickRandomEpisode("demo")
			So(err, ShouldBeNil)
			out := renderSelection(picked.MustGet(), 20)

			Convey("Then every field is shown", func() {
				So(out, ShouldContainSubstring, "Demo Show")
				So(out, ShouldContainSubstring, "Season One")
				So(out, ShouldContainSubstring, "Pilot")
				So(out, ShouldContainSubstring, "January 1, 2001")
				So(out, ShouldContainSubstring, "wrapped")
			})
		})

		Convey("When an unknown show is requested", func() {
			err := errUnknownShow(c, "dem")

			Convey("Then the error suggests the closest key", func() {
				So(err.Error(), ShouldContainSubstring, "no such show")
				So(err.Error(), ShouldContainSubstring, "did you mean")
				So(err.Error(), ShouldContainSubstring, "demo")
			})
		})

		Convey("When nothing resembles the requested show", func() {
			err := errUnknownShow(c, "zzzzzzzzzz")

			Convey("Then no suggestion is offered", func() {
				So(err.Error(), ShouldNotContainSubstring, "did you mean")
			})
		})
	})
}

func TestConfigValues(t *testing.T) {
	Convey("Given registered config fields", t, func() {
		Convey("Values are parsed to the type of the default", func() {
			v, err := parseValue(config.Default[key.PickWrapWidth], []string{"100"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 100)

			v, err = parseValue(config.Default[key.CatalogStrict], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			v, err = parseValue(config.Default[key.ServerAddress], []string{":9090"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, ":9090")
		})

		Convey("Malformed values are rejected", func() {
			_, err := parseValue(config.Default[key.PickWrapWidth], []string{"wide"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(config.Default[key.CatalogStrict], []string{"maybe"})
			So(err, ShouldNotBeNil)
		})

		Convey("Keys are resolved from arguments", func() {
			field, err := lookupField(configGetCmd, []string{key.ServerAddress})
			So(err, ShouldBeNil)
			So(field.Key, ShouldEqual, key.ServerAddress)

			_, err = lookupField(configGetCmd, []string{"server.adress"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.ServerAddress)
		})
	})
}

func TestEnvVariables(t *testing.T) {
	Convey("Every config field has an environment variable", t, func() {
		names := envVariables()
		So(names, ShouldContain, "EPISHUFFLE_CATALOG_PATH")
		So(names, ShouldContain, "EPISHUFFLE_SERVER_ADDRESS")
		So(names, ShouldContain, "EPISHUFFLE_CONFIG_PATH")
		So(len(names), ShouldEqual, len(config.Default)+1)
	})
}
