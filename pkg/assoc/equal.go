package assoc

import (
	"reflect"
)

// DeepEqual compares two values structurally. It is used for all key
// comparisons and for comparing values in Equal.
//
// Values of the builtin scalar types compare with ==. Two non-nil containers
// compare with Equal, so containers of different shapes may be equal. Other
// values compare with reflect.DeepEqual. Like reflect.DeepEqual, it
// terminates on containers that contain themselves, treating a pair of
// containers already being compared as equal.
func DeepEqual(x, y any) bool {
	return deepEqual(x, y, nil)
}

// visit identifies a pair of containers being compared.
type visit struct {
	x, y   uintptr
	xn, yn int
	xt, yt reflect.Type
}

func deepEqual(x, y any, visited map[visit]bool) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case bool, string, int, int8, int16, int32, int64, uint, uint8, uint16,
		uint32, uint64, uintptr, float32, float64, complex64, complex128:
		return x == y
	}
	if y == nil {
		return false
	}
	xc, err := dispatch(x)
	if err != nil {
		return reflect.DeepEqual(x, y)
	}
	yc, err := dispatch(y)
	if err != nil {
		return reflect.DeepEqual(x, y)
	}
	if v, ok := visitOf(x, y); ok {
		if visited[v] {
			return true
		}
		if visited == nil {
			visited = map[visit]bool{}
		}
		visited[v] = true
	}
	return equal(xc, yc, visited)
}

// visitOf returns the identity of a pair of containers that can refer to
// themselves. Persistent containers can't, and are not tracked.
func visitOf(x, y any) (visit, bool) {
	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	switch xv.Kind() {
	case reflect.Map, reflect.Slice:
	default:
		return visit{}, false
	}
	switch yv.Kind() {
	case reflect.Map, reflect.Slice:
	default:
		return visit{}, false
	}
	if xv.Pointer() == 0 || yv.Pointer() == 0 {
		return visit{}, false
	}
	return visit{xv.Pointer(), yv.Pointer(), xv.Len(), yv.Len(), xv.Type(), yv.Type()}, true
}

// Equal reports whether two containers have the same count, and every key of a
// is associated with DeepEqual values in a and b.
//
// The check only walks the keys of a; b's keys are only constrained through the
// count. When a has duplicate keys, Equal(a, b) can therefore be true while
// Equal(b, a) is false. Missing keys in b read as nil.
func Equal(a, b any) (bool, error) {
	ac, err := dispatch(a)
	if err != nil {
		return false, err
	}
	bc, err := dispatch(b)
	if err != nil {
		return false, err
	}
	return equal(ac, bc, nil), nil
}

func equal(a, b container, visited map[visit]bool) bool {
	if a.len() != b.len() {
		return false
	}
	for _, k := range a.keys() {
		v, _ := a.index(k)
		w, _ := b.index(k)
		if !deepEqual(v, w, visited) {
			return false
		}
	}
	return true
}
