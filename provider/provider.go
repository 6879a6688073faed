// Package provider assembles the catalog sources enabled by configuration and loads them.
package provider

import (
	"github.com/epishuffle/epishuffle/bundle"
	"github.com/epishuffle/epishuffle/catalog"
	"github.com/epishuffle/epishuffle/filesystem"
	"github.com/epishuffle/epishuffle/key"
	"github.com/epishuffle/epishuffle/log"
	"github.com/epishuffle/epishuffle/where"
	"github.com/spf13/viper"
)

// Provider is a named catalog source.
type Provider struct {
	Name     string
	IsCustom bool // Reads user supplied files rather than the embedded bundle.
	Source   catalog.Source
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the embedded bundle when it is enabled.
func Builtins() []*Provider {
	if !viper.GetBool(key.CatalogEmbedded) {
		return []*Provider{}
	}

	return []*Provider{{Name: bundle.Name, Source: bundle.Source()}}
}

// Customs returns the directory provider. An empty catalog.path means the shows directory next to the config.
func Customs() []*Provider {
	dir := viper.GetString(key.CatalogPath)
	if dir == "" {
		dir = where.Shows()
	}

	return []*Provider{{
		Name:     dir,
		IsCustom: true,
		Source:   catalog.DirSource{Fs: filesystem.ReadOnly(), Dir: dir},
	}}
}

// All returns builtin providers followed by custom ones. Earlier providers win key collisions when skipping is enabled.
func All() []*Provider {
	return append(Builtins(), Customs()...)
}

// Load builds the catalog from every provider using the configured strictness and skip policy.
func Load() (*catalog.Catalog, error) {
	loader := &catalog.Loader{
		Strict: viper.GetBool(key.CatalogStrict),
	}

	if viper.GetBool(key.CatalogSkipInvalid) {
		loader.Skip = func(err *catalog.LoadError) bool {
			log.Warnf("skipping show: %v", err)
			return true
		}
	}

	var sources []catalog.Source
	for _, p := range All() {
		log.Debugf("loading shows from %s", p)
		sources = append(sources, p.Source)
	}

	c, err := loader.Load(sources...)
	if err != nil {
		return nil, err
	}

	stats := c.Stats()
	log.Infof("loaded %d shows, %d seasons, %d episodes", stats.Shows, stats.Seasons, stats.Episodes)
	return c, nil
}
