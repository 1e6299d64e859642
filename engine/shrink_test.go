package engine

import (
	"testing"

	"github.com/lucaskalb/theftcore/bloom"
	"github.com/lucaskalb/theftcore/gen"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// containsSeven is the "no byte equals 7" property from the canonical
// sequence-shrinking scenario: it fails whenever some element of the slice
// is 7.
func containsSeven(args []any, env any) Outcome {
	v := args[0].([]int)
	for _, b := range v {
		if b == 7 {
			return Fail
		}
	}
	return Pass
}

func TestShrinkSliceIsolatesOffendingByteViaSequenceTactics(t *testing.T) {
	ti := typeinfo.Of(gen.Slice(gen.IntRange(0, 255), gen.Size{Min: 0, Max: 2000}))
	cfg := Config{Property: containsSeven, Types: []typeinfo.Any{ti}}

	initial := make([]int, 1024)
	initial[500] = 7

	filter := bloom.New(0, 100)
	defer filter.Destroy()

	final := shrink(cfg, []any{initial}, filter, true)

	got := final[0].([]int)
	if len(got) != 1 {
		t.Fatalf("expected the four canonical sequence tactics to isolate a single-element slice, got length %d: %v", len(got), got)
	}
	if got[0] != 7 {
		t.Fatalf("expected the isolated element to be the offending 7, got %d", got[0])
	}
}

func alwaysFails(args []any, env any) Outcome { return Fail }

func TestShrinkIntSettlesAtShrinkTarget(t *testing.T) {
	ti := typeinfo.Of(gen.IntRange(-1000000, 1000000))
	cfg := Config{Property: alwaysFails, Types: []typeinfo.Any{ti}}

	filter := bloom.New(0, 100)
	defer filter.Destroy()

	final := shrink(cfg, []any{654321}, filter, true)
	if final[0].(int) != 0 {
		t.Fatalf("expected shrink to settle at 0 when every value fails, got %d", final[0])
	}
}

func TestShrinkMultiPositionTupleShrinksEachIndependently(t *testing.T) {
	aTi := typeinfo.Of(gen.IntRange(-1000, 1000))
	bTi := typeinfo.Of(gen.IntRange(-1000, 1000))
	cfg := Config{Property: alwaysFails, Types: []typeinfo.Any{aTi, bTi}}

	filter := bloom.New(0, 100)
	defer filter.Destroy()

	final := shrink(cfg, []any{500, -500}, filter, true)
	if final[0].(int) != 0 || final[1].(int) != 0 {
		t.Fatalf("expected both positions to settle at 0, got %v", final)
	}
}

func TestShrinkTerminatesWhenNoPositionCanShrink(t *testing.T) {
	// A type-info with no Shrink op contributes no tactics at all; shrink
	// must return the input tuple unchanged rather than loop.
	noShrink := typeinfo.Of(typeinfo.TypeInfo[int]{})
	cfg := Config{Property: alwaysFails, Types: []typeinfo.Any{noShrink}}

	filter := bloom.New(0, 100)
	defer filter.Destroy()

	final := shrink(cfg, []any{42}, filter, false)
	if final[0].(int) != 42 {
		t.Fatalf("expected unchanged tuple when no position can shrink, got %v", final)
	}
}
