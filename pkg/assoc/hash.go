package assoc

import (
	"math"
	"reflect"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/maps"
	"src.elv.sh/pkg/persistent/hash"
	"src.elv.sh/pkg/persistent/hashmap"
)

// EmptyMap is an empty persistent hash map whose keys are compared with
// DeepEqual and hashed with Hash.
var EmptyMap = hashmap.New(DeepEqual, Hash)

// Hash returns a 32-bit hash of a value, consistent with DeepEqual. Containers
// hash to a function of their count only, since equal containers of different
// shapes must hash alike. Values of other types hash to 0, which is correct but
// slow when used as keys.
func Hash(v any) uint32 {
	switch v := v.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return hash.UIntPtr(uintptr(v))
	case int64:
		return hash.UInt64(uint64(v))
	case uint64:
		return hash.UInt64(v)
	case float64:
		return hash.UInt64(math.Float64bits(v))
	case string:
		return uint32(xxh3.HashString(v))
	}
	if c, err := dispatch(v); err == nil {
		return hash.DJB(uint32(c.len()))
	}
	return 0
}

// anyMap implements HashMapping on a native map[any]any.
type anyMap map[any]any

func (m anyMap) shape() Shape { return HashMapping }

func (m anyMap) index(k any) (any, bool) {
	if !hashable(k) {
		return nil, false
	}
	v, ok := m[k]
	return v, ok
}

func (m anyMap) assoc(k, v any) (any, error) {
	if !hashable(k) {
		return nil, InvalidKeyError{k, reasonNotHashable}
	}
	n := maps.Clone(map[any]any(m))
	if n == nil {
		n = make(map[any]any, 1)
	}
	n[k] = v
	return n, nil
}

func (m anyMap) dissoc(k any) (any, error) {
	n := maps.Clone(map[any]any(m))
	if hashable(k) {
		delete(n, k)
	}
	return n, nil
}

func (m anyMap) keys() []any {
	ks := make([]any, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}

func (m anyMap) values() []any {
	vs := make([]any, 0, len(m))
	for _, v := range m {
		vs = append(vs, v)
	}
	return vs
}

func (m anyMap) len() int { return len(m) }

// stringMap implements HashMapping on a native map[string]any, the shape
// encoding/json and most configuration libraries produce.
type stringMap map[string]any

func (m stringMap) shape() Shape { return HashMapping }

func (m stringMap) index(k any) (any, bool) {
	s, ok := k.(string)
	if !ok {
		return nil, false
	}
	v, ok := m[s]
	return v, ok
}

func (m stringMap) assoc(k, v any) (any, error) {
	s, ok := k.(string)
	if !ok {
		return nil, InvalidKeyError{k, reasonNotString}
	}
	n := maps.Clone(map[string]any(m))
	if n == nil {
		n = make(map[string]any, 1)
	}
	n[s] = v
	return n, nil
}

func (m stringMap) dissoc(k any) (any, error) {
	n := maps.Clone(map[string]any(m))
	if s, ok := k.(string); ok {
		delete(n, s)
	}
	return n, nil
}

func (m stringMap) keys() []any {
	ks := make([]any, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}

func (m stringMap) values() []any {
	vs := make([]any, 0, len(m))
	for _, v := range m {
		vs = append(vs, v)
	}
	return vs
}

func (m stringMap) len() int { return len(m) }

// persistentMap implements HashMapping on a hashmap.Map. Key comparison is
// whatever the map was created with; EmptyMap uses DeepEqual.
type persistentMap struct{ m hashmap.Map }

func (pm persistentMap) shape() Shape { return HashMapping }

func (pm persistentMap) index(k any) (any, bool) { return pm.m.Index(k) }

func (pm persistentMap) assoc(k, v any) (any, error) { return pm.m.Assoc(k, v), nil }

func (pm persistentMap) dissoc(k any) (any, error) { return pm.m.Dissoc(k), nil }

func (pm persistentMap) keys() []any {
	ks := make([]any, 0, pm.m.Len())
	for it := pm.m.Iterator(); it.HasElem(); it.Next() {
		k, _ := it.Elem()
		ks = append(ks, k)
	}
	return ks
}

func (pm persistentMap) values() []any {
	vs := make([]any, 0, pm.m.Len())
	for it := pm.m.Iterator(); it.HasElem(); it.Next() {
		_, v := it.Elem()
		vs = append(vs, v)
	}
	return vs
}

func (pm persistentMap) len() int { return pm.m.Len() }

// hashable reports whether k can be used as a key of a Go map without
// panicking. Unlike reflect.Type.Comparable, it looks into the dynamic values
// of interface fields.
func hashable(k any) bool {
	return hashableValue(reflect.ValueOf(k))
}

func hashableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		return v.IsNil() || hashableValue(v.Elem())
	case reflect.Array:
		if !v.Type().Comparable() {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if !hashableValue(v.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		if !v.Type().Comparable() {
			return false
		}
		for i := 0; i < v.NumField(); i++ {
			if !hashableValue(v.Field(i)) {
				return false
			}
		}
	}
	return true
}
