package assoc

import (
	"golang.org/x/exp/slices"
)

// pairList implements OrderedPairs. Lookup finds the first matching pair, so
// earlier pairs shadow later pairs with the same key.
type pairList []Pair

func (p pairList) shape() Shape { return OrderedPairs }

func (p pairList) find(k any) int {
	return slices.IndexFunc(p, func(e Pair) bool { return DeepEqual(e.Key, k) })
}

func (p pairList) index(k any) (any, bool) {
	if i := p.find(k); i >= 0 {
		return p[i].Value, true
	}
	return nil, false
}

func (p pairList) assoc(k, v any) (any, error) {
	if i := p.find(k); i >= 0 {
		q := slices.Clone([]Pair(p))
		q[i].Value = v
		return q, nil
	}
	// New pairs go to the front. The spare capacity of p may be shared with
	// the caller, so always allocate.
	q := make([]Pair, 0, len(p)+1)
	q = append(q, Pair{k, v})
	return append(q, p...), nil
}

func (p pairList) dissoc(k any) (any, error) {
	return slices.DeleteFunc(slices.Clone([]Pair(p)),
		func(e Pair) bool { return DeepEqual(e.Key, k) }), nil
}

func (p pairList) keys() []any {
	ks := make([]any, len(p))
	for i, e := range p {
		ks[i] = e.Key
	}
	return ks
}

func (p pairList) values() []any {
	vs := make([]any, len(p))
	for i, e := range p {
		vs[i] = e.Value
	}
	return vs
}

func (p pairList) len() int { return len(p) }
