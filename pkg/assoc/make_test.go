package assoc

import (
	"testing"

	"github.com/elves/assoc/pkg/tt"
)

func TestMakePairs(t *testing.T) {
	tt.Test(t, tt.Fn("MakePairs", MakePairs), tt.Table{
		tt.Args().Rets([]Pair{}, nil),
		tt.Args("a", 1, "b", 2).Rets([]Pair{{"a", 1}, {"b", 2}}, nil),
		tt.Args("a", 1, "a", 2).Rets([]Pair{{"a", 1}, {"a", 2}}, nil),
		tt.Args("a").Rets([]Pair(nil), InvalidArgumentError{"MakePairs arguments", 1}),
	})
}

func TestMakeHash(t *testing.T) {
	tt.Test(t, tt.Fn("MakeHash", MakeHash), tt.Table{
		tt.Args().Rets(map[any]any{}, nil),
		tt.Args("a", 1, 2, "b").Rets(map[any]any{"a": 1, 2: "b"}, nil),
		tt.Args("a", 1, "a", 2).Rets(map[any]any{"a": 2}, nil),
		tt.Args(point{1, 2}, "p").Rets(map[any]any{point{1, 2}: "p"}, nil),
		tt.Args(vs(1), 1).Rets(map[any]any(nil), InvalidKeyError{vs(1), reasonNotHashable}),
		tt.Args(struct{ L []int }{}, 1).
			Rets(map[any]any(nil), InvalidKeyError{struct{ L []int }{}, reasonNotHashable}),
		tt.Args(struct{ V any }{vs()}, 1).
			Rets(map[any]any(nil), InvalidKeyError{struct{ V any }{vs()}, reasonNotHashable}),
		tt.Args(1, 2, 3).Rets(map[any]any(nil), InvalidArgumentError{"MakeHash arguments", 3}),
	})
}

func TestMakeMap(t *testing.T) {
	tt.Test(t, tt.Fn("MakeMap", MakeMap), tt.Table{
		tt.Args().Rets(eq(EmptyMap), nil),
		tt.Args("a", 1, vs(1), 2).Rets(eq(pairs(vs(1), 2, "a", 1)), nil),
		tt.Args("a", 1, "a", 2).Rets(eq(map[any]any{"a": 2}), nil),
		tt.Args("a").Rets(tt.Any, InvalidArgumentError{"MakeMap arguments", 1}),
	})
}
