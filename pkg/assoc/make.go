package assoc

import (
	"src.elv.sh/pkg/persistent/hashmap"
)

// MakePairs creates an OrderedPairs container from alternating keys and values,
// in argument order. Duplicate keys are kept; the first one shadows the rest.
func MakePairs(kvs ...any) ([]Pair, error) {
	if err := checkEven("MakePairs arguments", kvs); err != nil {
		return nil, err
	}
	ps := make([]Pair, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		ps = append(ps, Pair{kvs[i], kvs[i+1]})
	}
	return ps, nil
}

// MakeHash creates a native map from alternating keys and values. Later values
// win for duplicate keys. Keys must be hashable by Go.
func MakeHash(kvs ...any) (map[any]any, error) {
	if err := checkEven("MakeHash arguments", kvs); err != nil {
		return nil, err
	}
	m := make(map[any]any, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		if !hashable(kvs[i]) {
			return nil, InvalidKeyError{kvs[i], reasonNotHashable}
		}
		m[kvs[i]] = kvs[i+1]
	}
	return m, nil
}

// MakeMap creates a persistent map from alternating keys and values, starting
// from EmptyMap. Unlike MakeHash, it accepts keys of any type.
func MakeMap(kvs ...any) (hashmap.Map, error) {
	if err := checkEven("MakeMap arguments", kvs); err != nil {
		return nil, err
	}
	m := EmptyMap
	for i := 0; i < len(kvs); i += 2 {
		m = m.Assoc(kvs[i], kvs[i+1])
	}
	return m, nil
}
