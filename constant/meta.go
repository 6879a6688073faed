// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Epishuffle is the canonical application identifier used for filesystem paths and CLI branding.
	Epishuffle = "epishuffle"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// ShowFileExt is the extension of show definition files.
	ShowFileExt = ".toml"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
