package assoc

import (
	"math"

	"golang.org/x/exp/slices"
	"src.elv.sh/pkg/persistent/vector"
)

// slice implements IndexedSequence on a native []any.
type slice []any

func (s slice) shape() Shape { return IndexedSequence }

func (s slice) index(k any) (any, bool) {
	if i, ok := toIndex(k); ok && 0 <= i && i < len(s) {
		return s[i], true
	}
	return nil, false
}

func (s slice) assoc(k, v any) (any, error) {
	i, err := writeIndex(k)
	if err != nil {
		return nil, err
	}
	if i < len(s) {
		t := slices.Clone([]any(s))
		t[i] = v
		return t, nil
	}
	// Growing: the positions between the old end and i are left nil.
	t := make([]any, i+1)
	copy(t, s)
	t[i] = v
	return t, nil
}

func (s slice) dissoc(k any) (any, error) {
	return nil, InvalidKeyError{k, reasonNoDissoc}
}

func (s slice) keys() []any { return indexRange(len(s)) }

func (s slice) values() []any { return slices.Clone([]any(s)) }

func (s slice) len() int { return len(s) }

// persistentVector implements IndexedSequence on a vector.Vector.
type persistentVector struct{ v vector.Vector }

func (pv persistentVector) shape() Shape { return IndexedSequence }

func (pv persistentVector) index(k any) (any, bool) {
	if i, ok := toIndex(k); ok {
		return pv.v.Index(i)
	}
	return nil, false
}

func (pv persistentVector) assoc(k, v any) (any, error) {
	i, err := writeIndex(k)
	if err != nil {
		return nil, err
	}
	if i < pv.v.Len() {
		return pv.v.Assoc(i, v), nil
	}
	w := pv.v
	for w.Len() < i {
		w = w.Conj(nil)
	}
	return w.Conj(v), nil
}

func (pv persistentVector) dissoc(k any) (any, error) {
	return nil, InvalidKeyError{k, reasonNoDissoc}
}

func (pv persistentVector) keys() []any { return indexRange(pv.v.Len()) }

func (pv persistentVector) values() []any {
	vs := make([]any, 0, pv.v.Len())
	for it := pv.v.Iterator(); it.HasElem(); it.Next() {
		vs = append(vs, it.Elem())
	}
	return vs
}

func (pv persistentVector) len() int { return pv.v.Len() }

func indexRange(n int) []any {
	ks := make([]any, n)
	for i := range ks {
		ks[i] = i
	}
	return ks
}

// toIndex converts a key of any Go integer type to an int. The second return
// value is false for non-integer keys and for values that do not fit in an int.
func toIndex(k any) (int, bool) {
	switch k := k.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		if k < math.MinInt || k > math.MaxInt {
			return 0, false
		}
		return int(k), true
	case uint:
		return fromUint64(uint64(k))
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return fromUint64(uint64(k))
	case uint64:
		return fromUint64(k)
	case uintptr:
		return fromUint64(uint64(k))
	}
	return 0, false
}

func fromUint64(u uint64) (int, bool) {
	if u > math.MaxInt {
		return 0, false
	}
	return int(u), true
}

// maxIndex bounds the indices a sequence can be written at, which also bounds
// how far a write can grow it.
const maxIndex = math.MaxInt32

func writeIndex(k any) (int, error) {
	i, ok := toIndex(k)
	if !ok {
		return 0, InvalidKeyError{k, reasonNotInteger}
	}
	if i < 0 {
		return 0, InvalidKeyError{k, reasonNegative}
	}
	if i >= maxIndex {
		return 0, InvalidKeyError{k, reasonTooLarge}
	}
	return i, nil
}
