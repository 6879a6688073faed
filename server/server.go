// Package server exposes the catalog over HTTP: an HTML page and a small JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/epishuffle/epishuffle/catalog"
	"github.com/epishuffle/epishuffle/log"
	"github.com/gorilla/mux"
)

// Options configures the HTTP listener.
type Options struct {
	Address           string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool
}

// Server serves random episodes from a catalog that is never modified.
type Server struct {
	catalog *catalog.Catalog
	handler http.Handler
	metrics *metrics
	http    *http.Server
	options Options
}

// New wires the routes for c.
func New(c *catalog.Catalog, options Options) *Server {
	s := &Server{
		catalog: c,
		metrics: newMetrics(c),
		options: options,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	if options.Metrics {
		r.Handle("/metrics", s.metrics.handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/api/shows", s.handleShows).Methods(http.MethodGet)
	r.HandleFunc("/api/shows/{key}/random", s.handleRandom).Methods(http.MethodGet)

	// Wrapping the router rather than r.Use also covers 404 and 405 replies.
	s.handler = logMiddleware(s.metrics.middleware(r))
	s.http = &http.Server{
		Addr:              options.Address,
		Handler:           s.handler,
		ReadHeaderTimeout: options.ReadHeaderTimeout,
	}
	return s
}

// Handler returns the routed handler with logging and metrics, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", s.options.Address)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.options.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"shows":  s.catalog.Len(),
	})
}
