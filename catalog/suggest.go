package catalog

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Suggest returns the show key closest to an unknown key.
// Fuzzy matches are preferred; otherwise the nearest key by edit distance is
// returned if it is within half of the input length.
func (c *Catalog) Suggest(key string) mo.Option[string] {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || len(c.refs) == 0 {
		return mo.None[string]()
	}

	keys := lo.Map(c.refs, func(r ShowRef, _ int) string { return r.Key })
	distance := func(k string) int {
		return levenshtein.Distance(key, strings.ToLower(k))
	}
	closest := func(candidates []string) string {
		return lo.MinBy(candidates, func(a, b string) bool {
			return distance(a) < distance(b)
		})
	}

	if matches := fuzzy.FindNormalizedFold(key, keys); len(matches) > 0 {
		return mo.Some(closest(matches))
	}

	best := closest(keys)
	if distance(best) > len(key)/2 {
		return mo.None[string]()
	}
	return mo.Some(best)
}
