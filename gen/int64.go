package gen

import (
	"fmt"
	"io"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Int64 builds a TypeInfo[int64] with an automatically derived range; see
// Int for the sizing rule.
func Int64(size Size) typeinfo.TypeInfo[int64] {
	min, max := autoRange(size, Size{})
	return Int64Range(int64(min), int64(max))
}

// Int64Range builds a TypeInfo[int64] generating uniformly over [min, max].
func Int64Range(min, max int64) typeinfo.TypeInfo[int64] {
	if min > max {
		min, max = max, min
	}
	span := uint64(max - min)
	return typeinfo.TypeInfo[int64]{
		Alloc: func(s *stream.Stream, env any) (int64, bool) {
			if span == 0 {
				return min, true
			}
			return min + int64(s.Next64()%(span+1)), true
		},
		Hash: func(v int64, env any) uint64 {
			return uint64(v)
		},
		Shrink: func(v int64, tactic int, env any) (int64, typeinfo.ShrinkStatus) {
			base := v
			if base < min {
				base = min
			}
			if base > max {
				base = max
			}
			return signedTactic(base, min, max, tactic)
		},
		Print: func(w io.Writer, v int64, env any) {
			fmt.Fprintf(w, "%d", v)
		},
	}
}
