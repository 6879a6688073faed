package catalog

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Catalog is an immutable index of shows. It is safe for concurrent use.
type Catalog struct {
	shows map[string]*Show
	refs  []ShowRef
	intn  func(n int) int
}

// Option configures a Catalog at construction.
type Option func(*Catalog)

// WithRand replaces the random source. intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(c *Catalog) {
		c.intn = intn
	}
}

// New builds a catalog from already assembled shows, applying the same
// invariants as the loader. The catalog takes ownership of the shows.
func New(shows []*Show, opts ...Option) (*Catalog, error) {
	byKey := make(map[string]*Show, len(shows))
	for _, show := range shows {
		if show == nil {
			return nil, &LoadError{Kind: ErrMalformedDefinition, Err: fmt.Errorf("nil show")}
		}
		if err := show.validate(); err != nil {
			return nil, &LoadError{Kind: ErrMalformedDefinition, Key: show.Key, Err: err}
		}
		if _, ok := byKey[show.Key]; ok {
			return nil, &LoadError{Kind: ErrDuplicateKey, Key: show.Key}
		}
		byKey[show.Key] = show
	}

	return build(byKey, opts...), nil
}

func build(shows map[string]*Show, opts ...Option) *Catalog {
	c := &Catalog{
		shows: shows,
		intn:  rand.IntN,
	}

	c.refs = lo.MapToSlice(shows, func(key string, show *Show) ShowRef {
		return ShowRef{Key: key, Title: show.Title}
	})
	slices.SortFunc(c.refs, func(a, b ShowRef) int {
		return cmp.Or(strings.Compare(a.Key, b.Key), strings.Compare(a.Title, b.Title))
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Shows lists every show once, ordered by key and then title.
func (c *Catalog) Shows() []ShowRef {
	return slices.Clone(c.refs)
}

// Has reports whether a show is stored under key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.shows[key]
	return ok
}

// Len returns the number of shows.
func (c *Catalog) Len() int {
	return len(c.shows)
}

// Stats counts shows, seasons and episodes.
func (c *Catalog) Stats() Stats {
	shows := lo.Values(c.shows)
	return Stats{
		Shows: len(shows),
		Seasons: lo.SumBy(shows, func(s *Show) int {
			return len(s.Seasons)
		}),
		Episodes: lo.SumBy(shows, func(s *Show) int {
			return lo.SumBy(s.Seasons, func(season *Season) int { return len(season.Episodes) })
		}),
	}
}
