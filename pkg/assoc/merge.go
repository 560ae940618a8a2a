package assoc

// MergeFunc combines the value already in the accumulated container with the
// value from the container being merged in.
type MergeFunc func(old, incoming any) any

// Merge folds the entries of each container into the first one with AssocOne.
// The result has the shape of the first container, and later values win on
// key collisions. The shapes of the other containers do not matter. With no
// arguments, Merge returns nil.
func Merge(cs ...any) (any, error) {
	return mergeWith(nil, cs)
}

// MergeWith is like Merge, but when a key is already present in the
// accumulated container, the stored value is fn(old, new).
func MergeWith(fn MergeFunc, cs ...any) (any, error) {
	return mergeWith(fn, cs)
}

func mergeWith(fn MergeFunc, cs []any) (any, error) {
	if len(cs) == 0 {
		return nil, nil
	}
	if _, err := dispatch(cs[0]); err != nil {
		return nil, err
	}
	acc := cs[0]
	for _, c := range cs[1:] {
		var err error
		acc, err = Reduce(c, acc, func(acc, k, v any) (any, error) {
			if fn != nil {
				ac, _ := dispatch(acc)
				if old, ok := ac.index(k); ok {
					v = fn(old, v)
				}
			}
			return AssocOne(acc, k, v)
		})
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
