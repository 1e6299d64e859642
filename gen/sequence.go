package gen

// sequenceKeepRange implements the four canonical sequence-shrinking
// tactics, shared by Slice and String: each returns the [start, end)
// sub-range of a length-n sequence to keep.
//
//	0: drop the first half   -> keep [n/2, n)
//	1: drop the last half    -> keep [0, n-n/2)
//	2: drop the first element -> keep [1, n)
//	3: drop the last element  -> keep [0, n-1)
//
// ok is false when the tactic would not shrink anything (n == 0, or a
// half-drop with n == 1): callers must report DEAD_END in that case.
// Tactic >= 4 is the caller's NO_MORE_TACTICS.
func sequenceKeepRange(n, tactic int) (start, end int, ok bool) {
	if n == 0 {
		return 0, 0, false
	}
	switch tactic {
	case 0:
		half := n / 2
		if half == 0 {
			return 0, n, false
		}
		return half, n, true
	case 1:
		half := n / 2
		if half == 0 {
			return 0, n, false
		}
		return 0, n - half, true
	case 2:
		if n == 1 {
			return 0, 0, true
		}
		return 1, n, true
	case 3:
		if n == 1 {
			return 0, 0, true
		}
		return 0, n - 1, true
	default:
		return 0, n, false
	}
}
