package gen

import (
	"fmt"
	"io"
	"math"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Float64 builds a TypeInfo[float64] with an automatic [-M, M] range; see
// Int for the sizing rule (M defaults to 100).
func Float64(size Size) typeinfo.TypeInfo[float64] {
	min, max := autoRange(size, Size{})
	return Float64Range(float64(min), float64(max))
}

// Float64Range builds a TypeInfo[float64] generating uniformly over
// [min, max].
func Float64Range(min, max float64) typeinfo.TypeInfo[float64] {
	if min > max {
		min, max = max, min
	}
	span := max - min
	return typeinfo.TypeInfo[float64]{
		Alloc: func(s *stream.Stream, env any) (float64, bool) {
			return min + s.Float64()*span, true
		},
		Hash: func(v float64, env any) uint64 {
			return math.Float64bits(v)
		},
		Shrink: func(v float64, tactic int, env any) (float64, typeinfo.ShrinkStatus) {
			return float64Tactic(clampFloat(v, min, max), min, max, tactic)
		},
		Print: func(w io.Writer, v float64, env any) {
			fmt.Fprintf(w, "%g", v)
		},
	}
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// float64Tactic mirrors signedTactic's coarsest-to-finest shape, with the
// unit-step slot replaced by truncating to the nearest integer towards the
// target, since a fraction-free counterexample is a strictly simpler one to
// read. Like
// signedTactic, it never jumps to the far bound, since that moves away from
// target rather than towards it.
//
//	0: jump to target (0, or the bound closest to 0)
//	1: bisect halfway towards target
//	2: truncate towards target's side (drop the fractional part)
func float64Tactic(base, min, max float64, tactic int) (float64, typeinfo.ShrinkStatus) {
	target := 0.0
	if min > 0 {
		target = min
	} else if max < 0 {
		target = max
	}
	switch tactic {
	case 0:
		if base == target {
			return base, typeinfo.ShrinkDeadEnd
		}
		return target, typeinfo.ShrinkFound
	case 1:
		if base == target {
			return base, typeinfo.ShrinkDeadEnd
		}
		mid := base + (target-base)/2
		if mid == base {
			return base, typeinfo.ShrinkDeadEnd
		}
		return mid, typeinfo.ShrinkFound
	case 2:
		var trunc float64
		if base > target {
			trunc = math.Floor(base)
		} else {
			trunc = math.Ceil(base)
		}
		if trunc == base {
			return base, typeinfo.ShrinkDeadEnd
		}
		return trunc, typeinfo.ShrinkFound
	default:
		return 0, typeinfo.ShrinkNoMoreTactics
	}
}
