package gen

import (
	"fmt"
	"io"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Uint builds a TypeInfo[uint] with an automatic [0, M] range; see
// autoRangeUnsigned for the sizing rule.
func Uint(size Size) typeinfo.TypeInfo[uint] {
	_, max := autoRangeUnsigned(size, Size{})
	return UintRange(0, uint(max))
}

// UintRange builds a TypeInfo[uint] generating uniformly over [min, max].
func UintRange(min, max uint) typeinfo.TypeInfo[uint] {
	if min > max {
		min, max = max, min
	}
	span := uint64(max - min)
	return typeinfo.TypeInfo[uint]{
		Alloc: func(s *stream.Stream, env any) (uint, bool) {
			if span == 0 {
				return min, true
			}
			return min + uint(s.Next64()%(span+1)), true
		},
		Hash: func(v uint, env any) uint64 {
			return uint64(v)
		},
		Shrink: func(v uint, tactic int, env any) (uint, typeinfo.ShrinkStatus) {
			base := v
			if base < min {
				base = min
			}
			if base > max {
				base = max
			}
			return unsignedTactic(base, min, max, tactic)
		},
		Print: func(w io.Writer, v uint, env any) {
			fmt.Fprintf(w, "%d", v)
		},
	}
}
