package gen

import (
	"fmt"
	"io"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Uint64 builds a TypeInfo[uint64] with an automatic [0, M] range; see
// autoRangeUnsigned for the sizing rule.
func Uint64(size Size) typeinfo.TypeInfo[uint64] {
	_, max := autoRangeUnsigned(size, Size{})
	return Uint64Range(0, uint64(max))
}

// Uint64Range builds a TypeInfo[uint64] generating uniformly over [min, max].
func Uint64Range(min, max uint64) typeinfo.TypeInfo[uint64] {
	if min > max {
		min, max = max, min
	}
	span := max - min
	return typeinfo.TypeInfo[uint64]{
		Alloc: func(s *stream.Stream, env any) (uint64, bool) {
			if span == 0 {
				return min, true
			}
			if span == ^uint64(0) {
				return s.Next64(), true
			}
			return min + s.Next64()%(span+1), true
		},
		Hash: func(v uint64, env any) uint64 {
			return v
		},
		Shrink: func(v uint64, tactic int, env any) (uint64, typeinfo.ShrinkStatus) {
			base := v
			if base < min {
				base = min
			}
			if base > max {
				base = max
			}
			return unsignedTactic(base, min, max, tactic)
		},
		Print: func(w io.Writer, v uint64, env any) {
			fmt.Fprintf(w, "%d", v)
		},
	}
}
