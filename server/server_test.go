package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/epishuffle/epishuffle/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func demoCatalog(opts ...catalog.Option) *catalog.Catalog {
	c, err := catalog.New([]*catalog.Show{
		{
			Key:   "demo",
			Title: "Demo Show",
			Seasons: []*catalog.Season{{
				Title: "Season One",
				Episodes: []*catalog.Episode{
					{Title: "Pilot", Aired: "January 1, 2001", Description: "It <b>begins</b>."},
					{Title: "Second", Aired: "January 8, 2001", Description: "It continues."},
				},
			}},
		},
		{
			Key:     "friends",
			Title:   "Friends",
			Seasons: []*catalog.Season{{Title: "Season 1", Episodes: []*catalog.Episode{{Title: "The One Where It All Began"}}}},
		},
	}, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndex(t *testing.T) {
	Convey("Given a server over the demo catalog", t, func() {
		first := func(int) int { return 0 }
		h := New(demoCatalog(catalog.WithRand(first)), Options{}).Handler()

		Convey("The index lists every show", func() {
			rec := get(h, "/")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldStartWith, "text/html")
			So(rec.Body.String(), ShouldContainSubstring, `<option value="demo">Demo Show</option>`)
			So(rec.Body.String(), ShouldContainSubstring, `<option value="friends">Friends</option>`)
			So(rec.Body.String(), ShouldNotContainSubstring, `class="episode"`)
		})

		Convey("Selecting a show renders a random episode", func() {
			rec := get(h, "/?show=demo")
			So(rec.Code, ShouldEqual, http.StatusOK)
			body := rec.Body.String()
			So(body, ShouldContainSubstring, `<option value="demo" selected>`)
			So(body, ShouldContainSubstring, "Season 1 · Season One")
			So(body, ShouldContainSubstring, "1. Pilot")
			So(body, ShouldContainSubstring, "Aired January 1, 2001")
		})

		Convey("Descriptions are escaped", func() {
			So(get(h, "/?show=demo").Body.String(), ShouldContainSubstring, "It &lt;b&gt;begins&lt;/b&gt;.")
		})

		Convey("An unknown show renders a hint instead of an error", func() {
			rec := get(h, "/?show=freinds")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(rec.Body.String(), ShouldContainSubstring, "No such show: freinds.")
			So(rec.Body.String(), ShouldContainSubstring, `Did you mean <a href="/?show=friends">friends</a>?`)
		})
	})
}

func TestAPI(t *testing.T) {
	Convey("Given a server over the demo catalog", t, func() {
		h := New(demoCatalog(), Options{}).Handler()

		Convey("GET /api/shows lists shows sorted by key", func() {
			rec := get(h, "/api/shows")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var shows []catalog.ShowRef
			So(json.Unmarshal(rec.Body.Bytes(), &shows), ShouldBeNil)
			So(shows, ShouldResemble, []catalog.ShowRef{
				{Key: "demo", Title: "Demo Show"},
				{Key: "friends", Title: "Friends"},
			})
		})

		Convey("GET /api/shows/{key}/random returns a selection", func() {
			rec := get(h, "/api/shows/demo/random")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var sel map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &sel), ShouldBeNil)
			So(sel["show"], ShouldEqual, "demo")
			So(sel["season_idx"], ShouldEqual, float64(1))
			So(sel["season_name"], ShouldEqual, "Season One")
			So(sel["episode_name"], ShouldBeIn, "Pilot", "Second")
		})

		Convey("An unknown key is a 404 with a suggestion", func() {
			rec := get(h, "/api/shows/dem/random")
			So(rec.Code, ShouldEqual, http.StatusNotFound)

			var body apiError
			So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
			So(body.Error, ShouldEqual, "no such show: dem")
			So(body.Suggestion, ShouldEqual, "demo")
		})

		Convey("Health reports the catalog size", func() {
			rec := get(h, "/health")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"shows":2`)
		})

		Convey("Other methods are rejected", func() {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/shows", nil))
			So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)

			rec = httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/shows/demo/random", nil))
			So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})

	Convey("Given a random source that misbehaves", t, func() {
		h := New(demoCatalog(catalog.WithRand(func(n int) int { return -1 })), Options{}).Handler()

		Convey("The pick is a server error", func() {
			So(get(h, "/api/shows/demo/random").Code, ShouldEqual, http.StatusInternalServerError)
			rec := get(h, "/?show=demo")
			So(rec.Code, ShouldEqual, http.StatusInternalServerError)
			So(rec.Body.String(), ShouldStartWith, "Internal server error: ")
		})
	})
}

func TestMetrics(t *testing.T) {
	Convey("Given a server with metrics enabled", t, func() {
		h := New(demoCatalog(), Options{Metrics: true}).Handler()

		Convey("Picks are counted by show and outcome", func() {
			get(h, "/api/shows/demo/random")
			get(h, "/?show=demo")
			get(h, "/api/shows/nope/random")

			rec := get(h, "/metrics")
			So(rec.Code, ShouldEqual, http.StatusOK)
			body := rec.Body.String()
			So(body, ShouldContainSubstring, `epishuffle_picks_total{outcome="picked",show="demo"} 2`)
			So(body, ShouldContainSubstring, `epishuffle_picks_total{outcome="unknown",show=""} 1`)
			So(body, ShouldContainSubstring, "epishuffle_catalog_shows 2")
			So(body, ShouldContainSubstring, "epishuffle_http_requests_total")
		})

		Convey("Unrouted requests are counted too", func() {
			get(h, "/nope")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

			body := get(h, "/metrics").Body.String()
			So(body, ShouldContainSubstring, `code="404"`)
			So(body, ShouldContainSubstring, `code="405"`)
		})
	})

	Convey("Given a server with metrics disabled", t, func() {
		h := New(demoCatalog(), Options{}).Handler()

		Convey("There is no metrics endpoint", func() {
			So(get(h, "/metrics").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given a server", t, func() {
		h := New(demoCatalog(), Options{}).Handler()

		Convey("Every response carries a request id", func() {
			So(get(h, "/health").Header().Get("X-Request-Id"), ShouldNotBeEmpty)
		})

		Convey("Not found and method not allowed replies carry one as well", func() {
			rec := get(h, "/nope")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(rec.Header().Get("X-Request-Id"), ShouldNotBeEmpty)

			rec = httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/shows", nil))
			So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(rec.Header().Get("X-Request-Id"), ShouldNotBeEmpty)
		})

		Convey("An incoming request id is echoed", func() {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("X-Request-Id", "abc-123")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			So(rec.Header().Get("X-Request-Id"), ShouldEqual, "abc-123")
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a server on a free port", t, func() {
		s := New(demoCatalog(), Options{Address: "127.0.0.1:0", ShutdownTimeout: time.Second})
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- s.Run(ctx) }()

		Convey("Cancelling the context stops it cleanly", func() {
			time.Sleep(50 * time.Millisecond)
			cancel()

			select {
			case err := <-done:
				So(err, ShouldBeNil)
			case <-time.After(5 * time.Second):
				So("server did not stop", ShouldBeEmpty)
			}
		})
	})
}
