// Package gen provides concrete typeinfo.TypeInfo builders for common Go
// types, plus combinators for composing them. Every builder here computes
// its shrink neighbor list fresh from (value, tactic) alone — no closure
// state survives between shrink calls — which is what lets the engine
// treat Shrink as a pure function while still getting a bisection-towards-
// target heuristic: the BFS shrinker restarts at tactic 0 after every
// accepted step, so a generator with a "bisect towards target" tactic
// gets repeated bisection for free from the outer restart loop.
package gen

// Size controls the scale and bounds of generators: Min/Max constrain a
// generated integer's range, or a generated sequence's length, depending on
// the generator.
type Size struct {
	Min int
	Max int
}

// ShrinkStrategy selects which end of a generator's candidate list BFS
// pulls from first. Index-addressable tactics are fixed per generator (see
// package doc), so this flag no longer changes which neighbor is explored
// first at the gen level; it is retained because dropping it silently
// would break existing call sites that still set it.
type ShrinkStrategy int

const (
	ShrinkStrategyBFS ShrinkStrategy = iota
	ShrinkStrategyDFS
)

var shrinkStrategy = ShrinkStrategyBFS

// SetShrinkStrategy sets the package-level shrink strategy preference.
func SetShrinkStrategy(s ShrinkStrategy) { shrinkStrategy = s }

// GetShrinkStrategy returns the current shrink strategy preference.
func GetShrinkStrategy() ShrinkStrategy { return shrinkStrategy }

func clampInt(x, min, max int) int {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// autoRange decides an Int generator's effective [min, max] by combining
// the generator's own Size with one supplied at call time, preferring
// whichever magnitude is larger; [-100, 100] is the fallback when neither
// specifies one.
func autoRange(local, override Size) (int, int) {
	M := 0
	for _, s := range []Size{local, override} {
		M = maxInt(M, absInt(s.Min))
		M = maxInt(M, absInt(s.Max))
	}
	if M == 0 {
		M = 100
	}
	return -M, M
}

// autoRangeUnsigned is autoRange's unsigned counterpart: [0, 100] fallback.
func autoRangeUnsigned(local, override Size) (int, int) {
	M := 0
	for _, s := range []Size{local, override} {
		if s.Max > M {
			M = s.Max
		}
	}
	if M == 0 {
		M = 100
	}
	return 0, M
}
