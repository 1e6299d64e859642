package gen

import (
	"fmt"
	"io"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// signedInt is the constraint shared by Int and Int64's shrink heuristic.
type signedInt interface {
	~int | ~int64
}

// Int builds a TypeInfo[int] with an automatic range based on size:
//   - if size.Max (or |size.Min|) > 0: range := [-M, M], M = max(|Min|, |Max|)
//   - otherwise, the default range [-100, 100].
func Int(size Size) typeinfo.TypeInfo[int] {
	min, max := autoRange(size, Size{})
	return IntRange(min, max)
}

// IntRange builds a TypeInfo[int] generating uniformly over [min, max]
// (inclusive), ignoring the auto-ranging Int uses.
func IntRange(min, max int) typeinfo.TypeInfo[int] {
	if min > max {
		min, max = max, min
	}
	return typeinfo.TypeInfo[int]{
		Alloc: func(s *stream.Stream, env any) (int, bool) {
			return min + s.Intn(max-min+1), true
		},
		Hash: func(v int, env any) uint64 {
			return uint64(uint32(v)) | uint64(1)<<63 // distinguish 0 sign bit from uint hashing
		},
		Shrink: func(v int, tactic int, env any) (int, typeinfo.ShrinkStatus) {
			return signedTactic(clampInt(v, min, max), min, max, tactic)
		},
		Print: func(w io.Writer, v int, env any) {
			fmt.Fprintf(w, "%d", v)
		},
	}
}

// signedTactic implements three fixed tactic slots, coarsest to finest:
//
//	0: jump straight to the shrink target (0, or the bound closest to 0)
//	1: bisect halfway towards the target
//	2: step one unit towards the target
//
// Tactic >= 3 is NO_MORE_TACTICS. Each slot is DEAD_END when it would not
// change base. Jumping to the far bound is deliberately not offered: it
// moves away from target, so it can never be a "strictly simpler" variant
// and would let a shrink step make the counterexample larger. Because the
// shrinker restarts at tactic 0 on every accepted step, slot 1 alone
// reproduces repeated bisection across outer-loop iterations without
// needing a precomputed series.
func signedTactic[T signedInt](base, min, max T, tactic int) (T, typeinfo.ShrinkStatus) {
	target := signedTarget(min, max)
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
		mid := midpointTowards(base, target)
		if mid == base {
			return base, typeinfo.ShrinkDeadEnd
		}
		return mid, typeinfo.ShrinkFound
	case 2:
		if base == target {
			return base, typeinfo.ShrinkDeadEnd
		}
		step := stepTowards(base, target)
		if step == base {
			return base, typeinfo.ShrinkDeadEnd
		}
		return step, typeinfo.ShrinkFound
	default:
		var zero T
		return zero, typeinfo.ShrinkNoMoreTactics
	}
}

// signedTarget is 0 if 0 is within [min, max]; otherwise the bound closest
// to 0.
func signedTarget[T signedInt](min, max T) T {
	if min <= 0 && 0 <= max {
		return 0
	}
	if min > 0 {
		return min
	}
	return max
}

// midpointTowards takes a bisection step from a towards b. The half step is
// truncated towards a but is never less than one unit, so progress is made
// even when |b-a| == 1.
func midpointTowards[T signedInt](a, b T) T {
	if a == b {
		return a
	}
	d := b - a
	step := d / 2
	if step == 0 {
		if d > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	return a + step
}

// stepTowards moves one unit from a towards b.
func stepTowards[T signedInt](a, b T) T {
	if a == b {
		return a
	}
	if b > a {
		return a + 1
	}
	return a - 1
}
