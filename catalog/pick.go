package catalog

import (
	"fmt"

	"github.com/samber/mo"
)

// PickRandomEpisode draws a season uniformly, then an episode of that season uniformly.
// Every season has the same chance regardless of its length.
//
// An unknown key yields mo.None and a nil error. The error is only set when the
// catalog is corrupt, in which case it wraps ErrInvariantViolation.
func (c *Catalog) PickRandomEpisode(key string) (mo.Option[Selection], error) {
	show, ok := c.shows[key]
	if !ok {
		return mo.None[Selection](), nil
	}

	seasonIdx, err := c.draw(len(show.Seasons))
	if err != nil {
		return mo.None[Selection](), fmt.Errorf("show %s: seasons: %w", key, err)
	}
	season := show.Seasons[seasonIdx]
	if season == nil {
		return mo.None[Selection](), fmt.Errorf("show %s: season %d: %w", key, seasonIdx+1, ErrInvariantViolation)
	}

	episodeIdx, err := c.draw(len(season.Episodes))
	if err != nil {
		return mo.None[Selection](), fmt.Errorf("show %s: season %d: %w", key, seasonIdx+1, err)
	}
	episode := season.Episodes[episodeIdx]
	if episode == nil {
		return mo.None[Selection](), fmt.Errorf("show %s: season %d: episode %d: %w", key, seasonIdx+1, episodeIdx+1, ErrInvariantViolation)
	}

	return mo.Some(Selection{
		ShowKey:            show.Key,
		ShowTitle:          show.Title,
		SeasonPosition:     seasonIdx + 1,
		SeasonTitle:        season.Title,
		EpisodePosition:    episodeIdx + 1,
		EpisodeTitle:       episode.Title,
		EpisodeAired:       episode.Aired,
		EpisodeDescription: episode.Description,
	}), nil
}

// draw returns an index in [0, n). It refuses empty ranges instead of panicking.
func (c *Catalog) draw(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: nothing to pick from", ErrInvariantViolation)
	}

	i := c.intn(n)
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: random index %d outside [0, %d)", ErrInvariantViolation, i, n)
	}
	return i, nil
}
