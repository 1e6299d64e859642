package gen

import "github.com/lucaskalb/theftcore/typeinfo"

// unsignedInt is the constraint shared by Uint and Uint64's shrink
// heuristic.
type unsignedInt interface {
	~uint | ~uint64
}

// unsignedTactic mirrors signedTactic, but the shrink target is always min
// (since unsigned values cannot go negative, min is the closest point to
// zero the range admits):
//
//	0: jump straight to min
//	1: bisect halfway towards min
//	2: step one unit towards min
//
// Tactic >= 3 is NO_MORE_TACTICS. Jumping to max is deliberately not
// offered, for the same reason signedTactic omits it: it moves away from
// target, not towards it. max is accepted as a parameter for interface
// symmetry with signedTactic's call sites but does not otherwise
// participate.
func unsignedTactic[T unsignedInt](base, min, max T, tactic int) (T, typeinfo.ShrinkStatus) {
	switch tactic {
	case 0:
		if base == min {
			return base, typeinfo.ShrinkDeadEnd
		}
		return min, typeinfo.ShrinkFound
	case 1:
		if base == min {
			return base, typeinfo.ShrinkDeadEnd
		}
		mid := min + (base-min)/2
		if mid == base {
			return base, typeinfo.ShrinkDeadEnd
		}
		return mid, typeinfo.ShrinkFound
	case 2:
		if base == min {
			return base, typeinfo.ShrinkDeadEnd
		}
		return base - 1, typeinfo.ShrinkFound
	default:
		var zero T
		return zero, typeinfo.ShrinkNoMoreTactics
	}
}
