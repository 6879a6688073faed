package catalog

import (
	"errors"
	"strings"
)

// Load-time failure kinds. Match them with errors.Is.
var (
	ErrMalformedDefinition = errors.New("malformed definition")
	ErrSourceUnavailable   = errors.New("source unavailable")
	ErrDuplicateKey        = errors.New("duplicate show key")
)

// ErrInvariantViolation means the catalog holds a show or season without entries.
// It can only happen if a catalog was assembled around the loader's validation.
var ErrInvariantViolation = errors.New("catalog invariant violated")

// LoadError describes why a definition or a whole source could not be loaded.
type LoadError struct {
	// Kind is one of ErrMalformedDefinition, ErrSourceUnavailable or ErrDuplicateKey.
	Kind error
	// Key of the offending show. Empty when the whole source failed.
	Key    string
	Origin string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder

	switch {
	case e.Key != "" && e.Origin != "":
		b.WriteString(e.Key + " (" + e.Origin + "): ")
	case e.Key != "":
		b.WriteString(e.Key + ": ")
	case e.Origin != "":
		b.WriteString(e.Origin + ": ")
	}

	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
