package jsonclasses

import "github.com/rs/zerolog"

// logger is disabled by default; registration and pipeline events are only
// emitted when the host application installs a logger.
var logger = zerolog.Nop()

// SetLogger installs a structured logger for registration and pipeline
// diagnostics. Call it before schemas are registered or records flow; the
// package does not synchronize logger replacement.
func SetLogger(l zerolog.Logger) { logger = l }
