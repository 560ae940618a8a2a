package assoc

// UpdateFunc computes a new value from an old one. The old value is nil when
// the key is absent.
type UpdateFunc func(old any, args ...any) any

// ReduceFunc is called by Reduce with the accumulator and one key-value pair,
// and returns the new accumulator.
type ReduceFunc func(acc, k, v any) (any, error)

// sentinel is the type of absent. Values of this type never escape the
// package, so absent cannot be confused with anything stored in a container.
type sentinel struct{ _ byte }

var absent = &sentinel{}

// Get returns the value associated with k in the container c, or nil if there
// is none. Use HasKey to tell an absent key from a key associated with nil.
func Get(c, k any) (any, error) {
	return GetOr(c, k, nil)
}

// GetOr is like Get, but returns notFound when k is absent.
//
// For IndexedSequence containers, k is present when it is an integer of any Go
// integer type that is non-negative and smaller than the length.
func GetOr(c, k, notFound any) (any, error) {
	cc, err := dispatch(c)
	if err != nil {
		return nil, err
	}
	if v, ok := cc.index(k); ok {
		return v, nil
	}
	return notFound, nil
}

// HasKey reports whether the container c has the key k.
func HasKey(c, k any) (bool, error) {
	v, err := GetOr(c, k, absent)
	if err != nil {
		return false, err
	}
	return v != absent, nil
}

// AssocOne returns a copy of c in which k is associated with v:
//
//   - For OrderedPairs, an existing pair keeps its position and gets the new
//     value; otherwise a new pair is put in front of the others.
//
//   - For IndexedSequence, k must be a non-negative integer. When it is not
//     smaller than the length, the sequence is grown to length k+1 with nil
//     fillers.
//
//   - For HashMapping, the key is inserted or overwritten.
//
// The container c itself is never modified.
func AssocOne(c, k, v any) (any, error) {
	cc, err := dispatch(c)
	if err != nil {
		return nil, err
	}
	return cc.assoc(k, v)
}

// Assoc applies AssocOne for each of the alternating keys and values, from
// left to right.
func Assoc(c any, kvs ...any) (any, error) {
	if err := checkEven("key-value arguments", kvs); err != nil {
		return nil, err
	}
	if _, err := dispatch(c); err != nil {
		return nil, err
	}
	for i := 0; i < len(kvs); i += 2 {
		var err error
		c, err = AssocOne(c, kvs[i], kvs[i+1])
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Dissoc returns a copy of c without the key k. All pairs with a matching key
// are removed from an OrderedPairs container. IndexedSequence containers do not
// support Dissoc, since removing an element would renumber the following ones.
func Dissoc(c, k any) (any, error) {
	cc, err := dispatch(c)
	if err != nil {
		return nil, err
	}
	return cc.dissoc(k)
}

// Update associates k with fn(old, args...), where old is the current value of
// k or nil.
func Update(c, k any, fn UpdateFunc, args ...any) (any, error) {
	old, err := Get(c, k)
	if err != nil {
		return nil, err
	}
	return AssocOne(c, k, fn(old, args...))
}

// Keys returns the keys of a container. Keys of OrderedPairs come in order,
// duplicates included; keys of IndexedSequence are the ints from 0 up to the
// length; keys of HashMapping come in no particular order.
func Keys(c any) ([]any, error) {
	cc, err := dispatch(c)
	if err != nil {
		return nil, err
	}
	return cc.keys(), nil
}

// Values returns the values of a container, in the same order as Keys.
func Values(c any) ([]any, error) {
	cc, err := dispatch(c)
	if err != nil {
		return nil, err
	}
	return cc.values(), nil
}

// Count returns the number of entries in a container. For OrderedPairs this is
// the number of pairs, including those shadowed by earlier ones.
func Count(c any) (int, error) {
	cc, err := dispatch(c)
	if err != nil {
		return 0, err
	}
	return cc.len(), nil
}

// Reduce folds fn over the keys of c in the order of Keys, looking up each
// value with Get. For OrderedPairs with duplicate keys, fn sees every
// duplicate, each time with the value of the first pair. An error from fn
// stops the iteration and is returned.
func Reduce(c, init any, fn ReduceFunc) (any, error) {
	cc, err := dispatch(c)
	if err != nil {
		return nil, err
	}
	acc := init
	for _, k := range cc.keys() {
		v, _ := cc.index(k)
		acc, err = fn(acc, k, v)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
