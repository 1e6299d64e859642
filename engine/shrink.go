package engine

import (
	"github.com/lucaskalb/theftcore/bloom"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// shrink performs the breadth-first descent over (position, tactic) pairs:
// positions traversed left-to-right, tactics tried in ascending index
// order, committing immediately to the first candidate that still fails
// (no lookahead), and restarting from tactic 0 on every accepted step so
// coarse tactics that previously dead-ended get re-tried against the new
// current value. Bloom-filter consultation during shrinking shares history
// with the trial runner's. The caller sees only the final current tuple,
// never an intermediate.
func shrink(cfg Config, failing []any, filter *bloom.Filter, dedup bool) []any {
	current := failing
	for {
		progress := false
		for pos, ti := range cfg.Types {
			if !ti.CanShrink() {
				continue
			}
			tactic := 0
			for {
				candidate, status := ti.Shrink(current[pos], tactic, cfg.Env)
				if status == typeinfo.ShrinkNoMoreTactics {
					break
				}
				if status == typeinfo.ShrinkDeadEnd {
					tactic++
					continue
				}

				trial := replaceAt(current, pos, candidate)

				if dedup {
					h := tupleHash(cfg.Types, trial, cfg.Env)
					if filter.TestAndSet(h) {
						if ti.CanRelease() {
							ti.Release(candidate, cfg.Env)
						}
						tactic++
						continue
					}
				}

				if cfg.Property(trial, cfg.Env) == Fail {
					if ti.CanRelease() {
						ti.Release(current[pos], cfg.Env)
					}
					current = trial
					progress = true
					tactic = 0
					continue
				}

				if ti.CanRelease() {
					ti.Release(candidate, cfg.Env)
				}
				tactic++
			}
		}
		if !progress {
			break
		}
	}
	return current
}

// replaceAt returns a new tuple with position pos replaced by v, never
// mutating the tuple it is given.
func replaceAt(tuple []any, pos int, v any) []any {
	out := make([]any, len(tuple))
	copy(out, tuple)
	out[pos] = v
	return out
}
