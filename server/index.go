package server

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/epishuffle/epishuffle/catalog"
	"github.com/epishuffle/epishuffle/log"
	"github.com/samber/lo"
)

//go:embed templates/index.html
var indexSource string

var indexTemplate = lo.Must(template.New("index.html").Parse(indexSource))

type indexPage struct {
	Shows       []catalog.ShowRef
	CurrentShow string
	Episode     *catalog.Selection
	Unknown     string
	Suggestion  string
}

// handleIndex renders the show picker and, when ?show= names a known show, a random episode of it.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := indexPage{Shows: s.catalog.Shows()}

	if key := r.URL.Query().Get("show"); key != "" {
		picked, err := s.catalog.PickRandomEpisode(key)
		s.metrics.observePick(key, picked.IsPresent(), err)
		if err != nil {
			internalError(w, err)
			return
		}

		if sel, ok := picked.Get(); ok {
			page.CurrentShow = key
			page.Episode = &sel
		} else {
			page.Unknown = key
			page.Suggestion = s.catalog.Suggest(key).OrEmpty()
		}
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if page.Unknown != "" {
		w.WriteHeader(http.StatusNotFound)
	}
	_, _ = buf.WriteTo(w)
}

func internalError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrInvariantViolation) {
		log.Errorf("corrupt catalog: %v", err)
	} else {
		log.Error(err)
	}
	http.Error(w, fmt.Sprintf("Internal server error: %s", err), http.StatusInternalServerError)
}
