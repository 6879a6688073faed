package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type apiError struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (s *Server) handleShows(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Shows())
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	picked, err := s.catalog.PickRandomEpisode(key)
	s.metrics.observePick(key, picked.IsPresent(), err)
	if err != nil {
		internalError(w, err)
		return
	}

	sel, ok := picked.Get()
	if !ok {
		writeJSON(w, http.StatusNotFound, apiError{
			Error:      "no such show: " + key,
			Suggestion: s.catalog.Suggest(key).OrEmpty(),
		})
		return
	}

	writeJSON(w, http.StatusOK, sel)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

