package gen

import (
	"testing"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

func TestUintRangeAllocWithinBounds(t *testing.T) {
	ti := UintRange(2, 9)
	s := stream.New(3)
	for i := 0; i < 100; i++ {
		v, ok := ti.Alloc(s, nil)
		if !ok || v < 2 || v > 9 {
			t.Fatalf("value %d out of bounds [2, 9]", v)
		}
	}
}

func TestUintShrinkTowardsMin(t *testing.T) {
	ti := UintRange(0, 1000)
	v, status := ti.Shrink(500, 0, nil)
	if status != typeinfo.ShrinkFound || v != 0 {
		t.Fatalf("expected tactic 0 to jump to min 0, got %d status %v", v, status)
	}
}

func TestUintShrinkAtMinDeadEnds(t *testing.T) {
	ti := UintRange(0, 1000)
	_, status := ti.Shrink(0, 0, nil)
	if status != typeinfo.ShrinkDeadEnd {
		t.Fatalf("expected DEAD_END at min, got %v", status)
	}
}

func TestUint64RangeDegenerate(t *testing.T) {
	ti := Uint64Range(7, 7)
	s := stream.New(4)
	v, ok := ti.Alloc(s, nil)
	if !ok || v != 7 {
		t.Fatalf("expected degenerate range to always produce 7, got %d", v)
	}
}
