package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/epishuffle/epishuffle/constant"
	"github.com/epishuffle/epishuffle/util"
	"github.com/spf13/afero"
)

// RawDefinition is one undecoded show definition together with the key it will be stored under.
type RawDefinition struct {
	Key    string
	Origin string
	Data   []byte
}

// Source enumerates raw show definitions.
type Source interface {
	// Name identifies the source in errors and logs.
	Name() string
	Definitions() ([]RawDefinition, error)
}

// DirSource reads every *.toml file of a directory. The file stem becomes the show key.
type DirSource struct {
	Fs  afero.Fs
	Dir string
	// Label overrides Dir in Name.
	Label string
}

func (s DirSource) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Dir
}

// Definitions returns the definitions sorted by file name.
func (s DirSource) Definitions() ([]RawDefinition, error) {
	files, err := afero.ReadDir(s.Fs, s.Dir)
	if err != nil {
		return nil, err
	}

	var defs []RawDefinition
	for _, f := range files {
		if f.IsDir() || !strings.EqualFold(filepath.Ext(f.Name()), constant.ShowFileExt) {
			continue
		}

		path := filepath.Join(s.Dir, f.Name())
		data, err := afero.ReadFile(s.Fs, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		defs = append(defs, RawDefinition{
			Key:    util.FileStem(f.Name()),
			Origin: filepath.Join(s.Name(), f.Name()),
			Data:   data,
		})
	}

	return defs, nil
}

// StaticSource serves definitions held in memory, keyed by show key.
type StaticSource struct {
	Label string
	Items []RawDefinition
}

func (s StaticSource) Name() string {
	return s.Label
}

func (s StaticSource) Definitions() ([]RawDefinition, error) {
	return s.Items, nil
}
