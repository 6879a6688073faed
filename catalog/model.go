// Package catalog loads show definitions into an immutable in-memory index and picks random episodes from it.
package catalog

import (
	"errors"
	"fmt"
)

// Show is a television show with its seasons in broadcast order.
type Show struct {
	Key     string
	Title   string
	Seasons []*Season
}

// Season groups episodes in the order they appear in the source.
type Season struct {
	Title    string
	Episodes []*Episode
}

// Episode is a single entry of a season. Aired is display text and is never parsed.
type Episode struct {
	Title       string
	Aired       string
	Description string
}

// ShowRef is the listing view of a show.
type ShowRef struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Selection is the result of one random pick. Positions are 1-based.
type Selection struct {
	ShowKey            string `json:"show"`
	ShowTitle          string `json:"show_title"`
	SeasonPosition     int    `json:"season_idx"`
	SeasonTitle        string `json:"season_name"`
	EpisodePosition    int    `json:"episode_idx"`
	EpisodeTitle       string `json:"episode_name"`
	EpisodeAired       string `json:"episode_aired"`
	EpisodeDescription string `json:"episode_description"`
}

// Stats summarises the size of a catalog.
type Stats struct {
	Shows    int `json:"shows"`
	Seasons  int `json:"seasons"`
	Episodes int `json:"episodes"`
}

// validate enforces the structural invariants every show in a catalog must hold.
func (s *Show) validate() error {
	if s.Key == "" {
		return errors.New("empty show key")
	}
	if len(s.Seasons) == 0 {
		return errors.New("show has no seasons")
	}
	for i, season := range s.Seasons {
		if season == nil {
			return fmt.Errorf("season %d is nil", i+1)
		}
		if len(season.Episodes) == 0 {
			return fmt.Errorf("season %d (%s) has no episodes", i+1, season.Title)
		}
		for j, episode := range season.Episodes {
			if episode == nil {
				return fmt.Errorf("season %d: episode %d is nil", i+1, j+1)
			}
		}
	}
	return nil
}
