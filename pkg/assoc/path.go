package assoc

// GetIn descends into nested containers following path, and returns the value
// found at the end, or nil if some level lacks the next key. An empty path
// returns c itself.
func GetIn(c any, path []any) (any, error) {
	return GetInOr(c, path, nil)
}

// GetInOr is like GetIn, but returns notFound when some level lacks the next
// key.
func GetInOr(c any, path []any, notFound any) (any, error) {
	for _, k := range path {
		cc, err := dispatch(c)
		if err != nil {
			return nil, err
		}
		v, ok := cc.index(k)
		if !ok {
			return notFound, nil
		}
		c = v
	}
	return c, nil
}

// AssocIn returns a copy of c with the value at path replaced by v. Levels that
// are missing along the path are created as OrderedPairs, whatever the shape
// of c. An empty path returns c unchanged and discards v.
func AssocIn(c any, path []any, v any) (any, error) {
	switch len(path) {
	case 0:
		return c, nil
	case 1:
		return AssocOne(c, path[0], v)
	}
	child, err := Get(c, path[0])
	if err != nil {
		return nil, err
	}
	child, err = AssocIn(child, path[1:], v)
	if err != nil {
		return nil, err
	}
	return AssocOne(c, path[0], child)
}

// UpdateIn is like AssocIn, but the new value is fn(old, args...), where old is
// the value GetIn(c, path) would return.
func UpdateIn(c any, path []any, fn UpdateFunc, args ...any) (any, error) {
	switch len(path) {
	case 0:
		return c, nil
	case 1:
		return Update(c, path[0], fn, args...)
	}
	child, err := Get(c, path[0])
	if err != nil {
		return nil, err
	}
	child, err = UpdateIn(child, path[1:], fn, args...)
	if err != nil {
		return nil, err
	}
	return AssocOne(c, path[0], child)
}
