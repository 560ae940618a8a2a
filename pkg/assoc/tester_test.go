package assoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.elv.sh/pkg/persistent/hashmap"
	"src.elv.sh/pkg/persistent/vector"

	"github.com/elves/assoc/pkg/tt"
)

// tester is a helper for checking properties of one container.
type tester struct {
	t *testing.T
	c any
}

func testContainer(t *testing.T, c any) tester {
	return tester{t, c}
}

func (ct tester) Shape(want Shape) tester {
	ct.t.Helper()
	got, err := ShapeOf(ct.c)
	if err != nil || got != want {
		ct.t.Errorf("ShapeOf(c) -> (%v, %v), want (%v, nil)", got, err, want)
	}
	return ct
}

func (ct tester) Count(want int) tester {
	ct.t.Helper()
	got, err := Count(ct.c)
	if err != nil || got != want {
		ct.t.Errorf("Count(c) -> (%v, %v), want (%v, nil)", got, err, want)
	}
	return ct
}

func (ct tester) HasKey(keys ...any) tester {
	ct.t.Helper()
	for _, k := range keys {
		if has, err := HasKey(ct.c, k); !has || err != nil {
			ct.t.Errorf("HasKey(c, %v) -> (%v, %v), want (true, nil)", k, has, err)
		}
	}
	return ct
}

func (ct tester) HasNoKey(keys ...any) tester {
	ct.t.Helper()
	for _, k := range keys {
		if has, err := HasKey(ct.c, k); has || err != nil {
			ct.t.Errorf("HasKey(c, %v) -> (%v, %v), want (false, nil)", k, has, err)
		}
	}
	return ct
}

func (ct tester) Get(k, want any) tester {
	ct.t.Helper()
	got, err := Get(ct.c, k)
	if err != nil || !DeepEqual(got, want) {
		ct.t.Errorf("Get(c, %v) -> (%v, %v), want (%v, nil)", k, got, err, want)
	}
	return ct
}

// Keys checks the keys in order; only use it for ordered shapes.
func (ct tester) Keys(want ...any) tester {
	ct.t.Helper()
	got, err := Keys(ct.c)
	if err != nil {
		ct.t.Errorf("Keys(c) -> err %v, want nil", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		ct.t.Errorf("Keys(c) (-want +got):\n%s", diff)
	}
	return ct
}

func (ct tester) Equal(others ...any) tester {
	ct.t.Helper()
	for _, other := range others {
		if eq, err := Equal(ct.c, other); !eq || err != nil {
			ct.t.Errorf("Equal(c, %v) -> (%v, %v), want (true, nil)", other, eq, err)
		}
	}
	return ct
}

func (ct tester) NotEqual(others ...any) tester {
	ct.t.Helper()
	for _, other := range others {
		if eq, err := Equal(ct.c, other); eq || err != nil {
			ct.t.Errorf("Equal(c, %v) -> (%v, %v), want (false, nil)", other, eq, err)
		}
	}
	return ct
}

// eq returns a Matcher that compares with DeepEqual, for results such as
// persistent maps that reflect.DeepEqual cannot compare.
func eq(want any) tt.Matcher {
	return tt.MatcherFunc(func(got tt.RetValue) bool { return DeepEqual(want, got) })
}

func pairs(kvs ...any) []Pair {
	ps, err := MakePairs(kvs...)
	if err != nil {
		panic(err)
	}
	return ps
}

func hmap(kvs ...any) hashmap.Map {
	m, err := MakeMap(kvs...)
	if err != nil {
		panic(err)
	}
	return m
}

func vec(vs ...any) vector.Vector {
	v := vector.Empty
	for _, e := range vs {
		v = v.Conj(e)
	}
	return v
}

func vs(xs ...any) []any { return xs }
