// Package filesystem holds the afero backend shared by config, logs and show sources.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// ReadOnly wraps the active backend for consumers that must never write, such as show sources.
func ReadOnly() afero.Fs {
	return afero.NewReadOnlyFs(backend.Fs)
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory filesystem. Used by tests.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
