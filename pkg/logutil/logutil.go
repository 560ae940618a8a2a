// Package logutil provides the zerolog loggers used by the library's packages.
package logutil

import (
	"io"

	"github.com/rs/zerolog"
)

// ComponentField is the field that names the package a log entry comes from.
const ComponentField = "component"

// Discard is a Logger that ignores all loggings.
var Discard = zerolog.Nop()

// New returns a Logger that writes JSON lines to w, tagged with the component
// name. Callers use it to build the Logger they pass in decode.Config.
func New(w io.Writer, component string) zerolog.Logger {
	return zerolog.New(w).With().Str(ComponentField, component).Logger()
}

// Or returns the Logger l points to, or Discard if l is nil.
func Or(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return Discard
	}
	return *l
}
