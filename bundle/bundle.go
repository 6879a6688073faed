// Package bundle ships a set of show definitions inside the binary.
package bundle

import (
	"embed"

	"github.com/epishuffle/epishuffle/catalog"
	"github.com/spf13/afero"
)

//go:embed shows/*.toml
var shows embed.FS

// Name labels the embedded source in errors and logs.
const Name = "embedded"

// Source returns the embedded show definitions as a catalog source.
func Source() catalog.Source {
	return catalog.DirSource{
		Fs:    afero.FromIOFS{FS: shows},
		Dir:   "shows",
		Label: Name,
	}
}
