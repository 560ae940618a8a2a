// Package tt supports table-driven tests with little boilerplate.
//
// A test table lists calls of one function and the return values they should
// produce:
//
//	tt.Test(t, tt.Fn("Count", assoc.Count), tt.Table{
//		tt.Args([]any{1, 2}).Rets(2, nil),
//	})
//
// See the test cases for this package for more examples.
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table represents a test table.
type Table []*Case

// Case is one row of a Table, created by Args and completed by Rets.
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments. A nil argument is passed
// as the zero value of the corresponding parameter type.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets adds a requirement on the return values and returns the receiver. Each
// element is either a Matcher, or a value compared with reflect.DeepEqual.
// Rets may be called more than once; every requirement must hold.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the format for printing arguments in test failures, and returns
// the receiver.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// T is the part of testing.T used by Test.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test calls fn with the arguments of each case and checks the return values.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		for _, matchers := range test.retsMatchers {
			if len(matchers) != len(rets) {
				t.Errorf("%s(%s) returns %d values, test wants %d",
					fn.name, fn.sprintArgs(test.args), len(rets), len(matchers))
				continue
			}
			if !match(matchers, rets) {
				t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s",
					fn.name, fn.sprintArgs(test.args), diff(matchers, rets))
			}
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// MatcherFunc adapts a function to a Matcher.
type MatcherFunc func(RetValue) bool

// Match calls f.
func (f MatcherFunc) Match(v RetValue) bool { return f(v) }

// Any is a Matcher that matches any value.
var Any Matcher = MatcherFunc(func(RetValue) bool { return true })

func match(matchers, rets []any) bool {
	for i, m := range matchers {
		if !matchOne(m, rets[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, v any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(v)
	}
	return reflect.DeepEqual(m, v)
}

func diff(matchers, rets []any) string {
	for _, m := range matchers {
		if _, ok := m.(Matcher); ok {
			return fmt.Sprintf("-%s\n+%s\n", sprintList(matchers), sprintList(rets))
		}
	}
	return cmp.Diff(matchers, rets, cmp.Exporter(func(reflect.Type) bool { return true }))
}

func (fn *FnToTest) sprintArgs(args []any) string {
	if fn.argsFmt != "" {
		return fmt.Sprintf(fn.argsFmt, args...)
	}
	return sprintList(args)
}

func sprintList(vs []any) string {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = fmt.Sprint(v)
	}
	return strings.Join(strs, ", ")
}

func call(fn any, args []any) []any {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()
	argValues := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			argValues[i] = reflect.Zero(paramType(fnType, i))
		} else {
			argValues[i] = reflect.ValueOf(arg)
		}
	}
	retValues := fnValue.Call(argValues)
	rets := make([]any, len(retValues))
	for i, retValue := range retValues {
		rets[i] = retValue.Interface()
	}
	return rets
}

// paramType returns the type of the i-th argument of a call to a function of
// type t, taking variadic parameters into account.
func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
