package gen

import (
	"fmt"
	"io"
	"math"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Float builds a TypeInfo[float32] with an automatic [-M, M] range; see Int
// for the sizing rule.
func Float(size Size) typeinfo.TypeInfo[float32] {
	min, max := autoRange(size, Size{})
	return FloatRange(float32(min), float32(max))
}

// FloatRange builds a TypeInfo[float32] generating uniformly over
// [min, max]. Its shrink behavior delegates to float64Tactic at double
// precision and rounds back to float32, since the extra precision never
// changes which side of a float32 value the tactic lands on.
func FloatRange(min, max float32) typeinfo.TypeInfo[float32] {
	if min > max {
		min, max = max, min
	}
	span := float64(max - min)
	return typeinfo.TypeInfo[float32]{
		Alloc: func(s *stream.Stream, env any) (float32, bool) {
			return min + float32(s.Float64()*span), true
		},
		Hash: func(v float32, env any) uint64 {
			return uint64(math.Float32bits(v))
		},
		Shrink: func(v float32, tactic int, env any) (float32, typeinfo.ShrinkStatus) {
			base := clampFloat(float64(v), float64(min), float64(max))
			next, status := float64Tactic(base, float64(min), float64(max), tactic)
			return float32(next), status
		},
		Print: func(w io.Writer, v float32, env any) {
			fmt.Fprintf(w, "%g", v)
		},
	}
}
