package catalog

import (
	"fmt"
	"strings"
)

const demoShow = `
title = "Demo Show"

[[seasons]]
title = "Season One"

[[seasons.episodes]]
title = "Pilot"
aired = "January 1, 2001"
description = "It begins."

[[seasons.episodes]]
title = "Second"
aired = "January 8, 2001"
description = "It continues."
`

// tomlShow renders a show with one season per entry of episodeCounts.
func tomlShow(title string, episodeCounts ...int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "title = %q\n", title)
	for s, count := range episodeCounts {
		fmt.Fprintf(&b, "\n[[seasons]]\ntitle = \"Season %d\"\n", s+1)
		for e := 0; e < count; e++ {
			fmt.Fprintf(&b, "\n[[seasons.episodes]]\ntitle = \"S%dE%d\"\naired = \"%d-01-%02d\"\ndescription = \"Episode %d of season %d.\"\n",
				s+1, e+1, 2000+s, e+1, e+1, s+1)
		}
	}
	return b.String()
}

func static(items map[string]string) StaticSource {
	src := StaticSource{Label: "test"}
	for key, data := range items {
		src.Items = append(src.Items, RawDefinition{Key: key, Origin: "test/" + key, Data: []byte(data)})
	}
	return src
}

// buildShow assembles a show with generated titles, one season per entry of episodeCounts.
func buildShow(key string, episodeCounts ...int) *Show {
	show := &Show{Key: key, Title: strings.ToUpper(key)}
	for s, count := range episodeCounts {
		season := &Season{Title: fmt.Sprintf("Season %d", s+1)}
		for e := 0; e < count; e++ {
			season.Episodes = append(season.Episodes, &Episode{
				Title:       fmt.Sprintf("S%dE%d", s+1, e+1),
				Aired:       fmt.Sprintf("%d-01-%02d", 2000+s, e+1),
				Description: fmt.Sprintf("Episode %d of season %d.", e+1, s+1),
			})
		}
		show.Seasons = append(show.Seasons, season)
	}
	return show
}
