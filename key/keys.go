// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Sources - these keys select where show definitions are loaded from.
const (
	CatalogPath        = "catalog.path"
	CatalogEmbedded    = "catalog.embedded"
	CatalogStrict      = "catalog.strict"
	CatalogSkipInvalid = "catalog.skip_invalid"
)

// HTTP Server - these keys configure the listener serving the web page and JSON API.
const (
	ServerAddress           = "server.address"
	ServerReadHeaderTimeout = "server.read_header_timeout"
	ServerShutdownTimeout   = "server.shutdown_timeout"
	ServerMetrics           = "server.metrics"
)

// Random Pick Output
const (
	PickWrapWidth = "pick.wrap_width"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite  = "logs.write"
	LogsLevel  = "logs.level"
	LogsJson   = "logs.json"
	LogsStderr = "logs.stderr"
)

// CLI Execution Environment
const (
	CliColored = "cli.colored"
)
