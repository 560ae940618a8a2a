// Package decode builds associative containers from JSON and YAML documents.
//
// Objects and mappings decode to []assoc.Pair in document order by default,
// or to hash maps when Config.Objects is assoc.HashMapping. Arrays and
// sequences decode to []any. The results can be used directly with the
// functions in the assoc package.
package decode

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/elves/assoc/pkg/assoc"
	"github.com/elves/assoc/pkg/logutil"
)

// Config controls how documents are decoded. The zero value is ready to use.
type Config struct {
	// Objects is the shape objects and mappings decode to. It must be
	// assoc.OrderedPairs (the zero value) or assoc.HashMapping.
	Objects assoc.Shape
	// Logger receives debug messages about lossy decoding. If nil, nothing is
	// logged.
	Logger *zerolog.Logger
}

// ErrObjectShape is returned when Config.Objects is not a shape objects can
// decode to.
var ErrObjectShape = errors.New("objects can only decode to pairs or hash")

// SyntaxError is returned when a document is malformed.
type SyntaxError struct {
	Format string
	Err    error
}

func (e SyntaxError) Error() string {
	if e.Err == nil {
		return "invalid " + e.Format + " document"
	}
	return "invalid " + e.Format + " document: " + e.Err.Error()
}

func (e SyntaxError) Unwrap() error { return e.Err }

type decoder struct {
	objects assoc.Shape
	log     zerolog.Logger
}

func newDecoder(cfg Config) (*decoder, error) {
	switch cfg.Objects {
	case assoc.OrderedPairs, assoc.HashMapping:
	default:
		return nil, ErrObjectShape
	}
	return &decoder{cfg.Objects, logutil.Or(cfg.Logger)}, nil
}
