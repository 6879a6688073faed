package catalog

import "fmt"

// Loader turns sources into a Catalog.
//
// Loading is all-or-nothing unless Skip is set: Skip is consulted for malformed
// and duplicate definitions and returning true drops that single entry.
// A source that cannot be enumerated always aborts the load.
type Loader struct {
	Strict  bool
	Skip    func(*LoadError) bool
	Options []Option
}

// Load reads every source in order using a default Loader.
func Load(sources ...Source) (*Catalog, error) {
	return (&Loader{}).Load(sources...)
}

// Load reads every source in order. Keys must be unique across all sources.
func (l *Loader) Load(sources ...Source) (*Catalog, error) {
	shows := make(map[string]*Show)
	origins := make(map[string]string)

	for _, src := range sources {
		defs, err := src.Definitions()
		if err != nil {
			return nil, &LoadError{Kind: ErrSourceUnavailable, Origin: src.Name(), Err: err}
		}

		for _, raw := range defs {
			show, loadErr := l.parse(raw, origins)
			if loadErr != nil {
				if l.Skip != nil && l.Skip(loadErr) {
					continue
				}
				return nil, loadErr
			}

			shows[show.Key] = show
			origins[show.Key] = raw.Origin
		}
	}

	return build(shows, l.Options...), nil
}

func (l *Loader) parse(raw RawDefinition, loaded map[string]string) (*Show, *LoadError) {
	malformed := func(err error) *LoadError {
		return &LoadError{Kind: ErrMalformedDefinition, Key: raw.Key, Origin: raw.Origin, Err: err}
	}

	if raw.Key == "" {
		return nil, malformed(fmt.Errorf("empty show key"))
	}

	if prev, ok := loaded[raw.Key]; ok {
		return nil, &LoadError{
			Kind:   ErrDuplicateKey,
			Key:    raw.Key,
			Origin: raw.Origin,
			Err:    fmt.Errorf("already loaded from %s", prev),
		}
	}

	def, err := ParseDefinition(raw.Data, l.Strict)
	if err != nil {
		return nil, malformed(err)
	}

	show, err := def.Show(raw.Key)
	if err != nil {
		return nil, malformed(err)
	}
	return show, nil
}
