package assoc

import (
	"fmt"
)

// NotAssociativeError is returned when a value is used as a container but is
// not one of the supported shapes.
type NotAssociativeError struct {
	Kind string
}

func (e NotAssociativeError) Error() string {
	return "not associative: " + e.Kind
}

// InvalidKeyError is returned when a key cannot be used to write to a
// container, such as a negative index into a sequence.
type InvalidKeyError struct {
	Key    any
	Reason string
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %v: %s", e.Key, e.Reason)
}

// InvalidArgumentError is returned when alternating key-value arguments come in
// an odd number.
type InvalidArgumentError struct {
	What   string
	Actual int
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s must be an even number of values, but is %d",
		e.What, e.Actual)
}

const (
	reasonNotInteger  = "sequence index must be an integer"
	reasonNegative    = "sequence index must be non-negative"
	reasonTooLarge    = "sequence index is too large"
	reasonNoDissoc    = "cannot dissoc from a sequence"
	reasonNotHashable = "key is not hashable"
	reasonNotString   = "key must be a string"
)

func checkEven(what string, kvs []any) error {
	if len(kvs)%2 == 1 {
		return InvalidArgumentError{What: what, Actual: len(kvs)}
	}
	return nil
}
