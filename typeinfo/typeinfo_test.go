package typeinfo

import (
	"bytes"
	"io"
	"testing"

	"github.com/lucaskalb/theftcore/stream"
)

func intTypeInfo() TypeInfo[int] {
	return TypeInfo[int]{
		Alloc: func(s *stream.Stream, env any) (int, bool) {
			return int(s.Next64() % 100), true
		},
		Release: func(v int, env any) {},
		Hash: func(v int, env any) uint64 {
			return uint64(v)
		},
		Shrink: func(v int, tactic int, env any) (int, ShrinkStatus) {
			switch tactic {
			case 0:
				if v == 0 {
					return 0, ShrinkDeadEnd
				}
				return v / 2, ShrinkFound
			default:
				return 0, ShrinkNoMoreTactics
			}
		},
		Print: func(w io.Writer, v int, env any) {},
	}
}

func TestOfRoundTrips(t *testing.T) {
	boxedTI := Of(intTypeInfo())

	if !boxedTI.CanAlloc() {
		t.Fatal("CanAlloc() = false, want true")
	}
	s := stream.New(1)
	v, ok := boxedTI.Alloc(s, nil)
	if !ok {
		t.Fatal("Alloc() ok = false")
	}
	if _, isInt := v.(int); !isInt {
		t.Fatalf("Alloc() returned %T, want int", v)
	}

	if !boxedTI.CanHash() {
		t.Fatal("CanHash() = false, want true")
	}
	if h := boxedTI.Hash(v, nil); h != uint64(v.(int)) {
		t.Errorf("Hash() = %d, want %d", h, v.(int))
	}

	if !boxedTI.CanShrink() {
		t.Fatal("CanShrink() = false, want true")
	}
	nv, status := boxedTI.Shrink(10, 0, nil)
	if status != ShrinkFound || nv.(int) != 5 {
		t.Errorf("Shrink(10, 0) = (%v, %v), want (5, found)", nv, status)
	}

	_, status = boxedTI.Shrink(10, 1, nil)
	if status != ShrinkNoMoreTactics {
		t.Errorf("Shrink(10, 1) status = %v, want no-more-tactics", status)
	}
}

func TestAllocOnlyTypeInfoHasNoCapabilities(t *testing.T) {
	ti := Of(TypeInfo[int]{
		Alloc: func(s *stream.Stream, env any) (int, bool) { return 0, true },
	})

	if ti.CanRelease() || ti.CanHash() || ti.CanShrink() || ti.CanPrint() {
		t.Fatal("allocate-only TypeInfo reported an optional capability")
	}

	var buf bytes.Buffer
	ti.Print(&buf, 42, nil)
	if buf.String() != "42" {
		t.Errorf("fallback Print wrote %q, want %q", buf.String(), "42")
	}
}

func TestShrinkStatusString(t *testing.T) {
	tests := []struct {
		status ShrinkStatus
		want   string
	}{
		{ShrinkFound, "found"},
		{ShrinkDeadEnd, "dead-end"},
		{ShrinkNoMoreTactics, "no-more-tactics"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
