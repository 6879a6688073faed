package catalog

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Definition is the on-disk shape of a show file:
//
//	title = "Community"
//
//	[[seasons]]
//	title = "Season 1"
//
//	[[seasons.episodes]]
//	title = "Pilot"
//	aired = "September 17, 2009"
//	description = "..."
//
// Fields are pointers so that a missing field can be told apart from an empty one.
type Definition struct {
	Title   *string            `toml:"title" json:"title" jsonschema:"description=Display title of the show."`
	Seasons []SeasonDefinition `toml:"seasons" json:"seasons" jsonschema:"minItems=1,description=Seasons in broadcast order."`
}

type SeasonDefinition struct {
	Title    *string             `toml:"title" json:"title" jsonschema:"description=Display title of the season."`
	Episodes []EpisodeDefinition `toml:"episodes" json:"episodes" jsonschema:"minItems=1,description=Episodes in broadcast order."`
}

type EpisodeDefinition struct {
	Title       *string `toml:"title" json:"title" jsonschema:"description=Display title of the episode."`
	Aired       *string `toml:"aired" json:"aired" jsonschema:"description=Air date as free text. It is shown verbatim."`
	Description *string `toml:"description" json:"description" jsonschema:"description=Episode synopsis."`
}

// ParseDefinition decodes a TOML show definition.
// In strict mode keys that do not map to a field are rejected.
func ParseDefinition(data []byte, strict bool) (*Definition, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}

	var def Definition
	if err := dec.Decode(&def); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}

		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, fmt.Errorf("%w\n%s", err, strictErr.String())
		}
		return nil, err
	}

	return &def, nil
}

// Show converts the definition into a validated show stored under key.
func (d *Definition) Show(key string) (*Show, error) {
	if d.Title == nil {
		return nil, errors.New("missing field title")
	}

	show := &Show{
		Key:     key,
		Title:   *d.Title,
		Seasons: make([]*Season, 0, len(d.Seasons)),
	}

	for i, sd := range d.Seasons {
		if sd.Title == nil {
			return nil, fmt.Errorf("season %d: missing field title", i+1)
		}

		season := &Season{
			Title:    *sd.Title,
			Episodes: make([]*Episode, 0, len(sd.Episodes)),
		}

		for j, ed := range sd.Episodes {
			missing := ""
			switch {
			case ed.Title == nil:
				missing = "title"
			case ed.Aired == nil:
				missing = "aired"
			case ed.Description == nil:
				missing = "description"
			}
			if missing != "" {
				return nil, fmt.Errorf("season %d, episode %d: missing field %s", i+1, j+1, missing)
			}

			season.Episodes = append(season.Episodes, &Episode{
				Title:       *ed.Title,
				Aired:       *ed.Aired,
				Description: *ed.Description,
			})
		}

		show.Seasons = append(show.Seasons, season)
	}

	if err := show.validate(); err != nil {
		return nil, err
	}
	return show, nil
}
