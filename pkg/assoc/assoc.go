// Package assoc provides uniform associative access over three container
// shapes: ordered lists of key-value pairs, indexed sequences and hash
// mappings.
//
// Containers are ordinary Go values and are never wrapped:
//
//   - OrderedPairs: []Pair, or an untyped nil standing for the empty list
//   - IndexedSequence: []any, or a persistent vector.Vector
//   - HashMapping: map[any]any, map[string]any, or a persistent hashmap.Map
//
// Operations that produce a modified container return a new value of the same
// Go type and leave their input untouched.
package assoc

import (
	"fmt"

	"src.elv.sh/pkg/persistent/hashmap"
	"src.elv.sh/pkg/persistent/vector"
)

// Pair is one entry of an OrderedPairs container.
type Pair struct {
	Key   any
	Value any
}

// Shape identifies which of the three representations a container uses.
type Shape int

// Possible values for Shape. The zero value is OrderedPairs.
const (
	OrderedPairs Shape = iota
	IndexedSequence
	HashMapping
)

func (s Shape) String() string {
	switch s {
	case OrderedPairs:
		return "pairs"
	case IndexedSequence:
		return "sequence"
	case HashMapping:
		return "hash"
	default:
		return fmt.Sprintf("!!Shape(%d)", int(s))
	}
}

// ShapeOf classifies a value. It returns a NotAssociativeError if the value is
// not one of the supported container types.
func ShapeOf(v any) (Shape, error) {
	c, err := dispatch(v)
	if err != nil {
		return 0, err
	}
	return c.shape(), nil
}

// IsAssociative reports whether ShapeOf would succeed on the value.
func IsAssociative(v any) bool {
	_, err := dispatch(v)
	return err == nil
}

// container is the per-shape behavior behind every exported operation. Write
// methods return the same Go type as the receiver's underlying value.
type container interface {
	shape() Shape
	index(k any) (any, bool)
	assoc(k, v any) (any, error)
	dissoc(k any) (any, error)
	keys() []any
	values() []any
	len() int
}

// dispatch is the only place that looks at the concrete type of a container.
func dispatch(v any) (container, error) {
	switch v := v.(type) {
	case nil:
		return pairList(nil), nil
	case []Pair:
		return pairList(v), nil
	case []any:
		return slice(v), nil
	case vector.Vector:
		return persistentVector{v}, nil
	case map[any]any:
		return anyMap(v), nil
	case map[string]any:
		return stringMap(v), nil
	case hashmap.Map:
		return persistentMap{v}, nil
	default:
		return nil, NotAssociativeError{kind(v)}
	}
}

// kind names a value for error messages.
func kind(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		uintptr, float32, float64:
		return "number"
	default:
		return fmt.Sprintf("!!%T", v)
	}
}
