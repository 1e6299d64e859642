package prop

import (
	"testing"

	"github.com/lucaskalb/theftcore/typeinfo"
)

// ForAll2 is ForAll's two-argument counterpart: each example draws one
// value from ta and one from tb, and the engine shrinks each position
// independently (left-to-right, per engine/shrink.go's BFS), exactly as it
// does for ForAll's single argument.
//
// Example usage:
//
//	ForAll2(t, prop.Default(), gen.Int(gen.Size{}), gen.Int(gen.Size{}))(func(t *testing.T, a, b int) {
//	    // Test property: a + b == b + a
//	    if a+b != b+a {
//	        t.Errorf("addition is not commutative for %d, %d", a, b)
//	    }
//	})
func ForAll2[A, B any](t *testing.T, cfg Config, ta typeinfo.TypeInfo[A], tb typeinfo.TypeInfo[B]) func(func(*testing.T, A, B)) {
	return func(body func(*testing.T, A, B)) {
		types := []typeinfo.Any{typeinfo.Of(ta), typeinfo.Of(tb)}
		invoke := func(st *testing.T, args []any) {
			body(st, args[0].(A), args[1].(B))
		}
		logAndRun(t, cfg, types, invoke)
	}
}

// ForAll3 is ForAll's three-argument counterpart.
func ForAll3[A, B, C any](t *testing.T, cfg Config, ta typeinfo.TypeInfo[A], tb typeinfo.TypeInfo[B], tc typeinfo.TypeInfo[C]) func(func(*testing.T, A, B, C)) {
	return func(body func(*testing.T, A, B, C)) {
		types := []typeinfo.Any{typeinfo.Of(ta), typeinfo.Of(tb), typeinfo.Of(tc)}
		invoke := func(st *testing.T, args []any) {
			body(st, args[0].(A), args[1].(B), args[2].(C))
		}
		logAndRun(t, cfg, types, invoke)
	}
}

// ForAll4 is ForAll's four-argument counterpart.
func ForAll4[A, B, C, D any](t *testing.T, cfg Config, ta typeinfo.TypeInfo[A], tb typeinfo.TypeInfo[B], tc typeinfo.TypeInfo[C], td typeinfo.TypeInfo[D]) func(func(*testing.T, A, B, C, D)) {
	return func(body func(*testing.T, A, B, C, D)) {
		types := []typeinfo.Any{typeinfo.Of(ta), typeinfo.Of(tb), typeinfo.Of(tc), typeinfo.Of(td)}
		invoke := func(st *testing.T, args []any) {
			body(st, args[0].(A), args[1].(B), args[2].(C), args[3].(D))
		}
		logAndRun(t, cfg, types, invoke)
	}
}
