package gen

import (
	"fmt"
	"io"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Mapped carries both a Map combinator's source value and its derived
// Value. The shrink contract only ever hands a builder its current value
// and a tactic index — there is no way back from a mapped B to the A that
// produced it unless something keeps A around, so Map exposes both instead
// of hiding the source. Callers read .Value; .Source exists so Shrink can
// keep working in A's own tactic space.
type Mapped[A, B any] struct {
	Source A
	Value  B
}

// Map builds a TypeInfo[Mapped[A, B]] from a TypeInfo[A] and a derivation
// function. Shrinking always operates in A's tactic space and re-derives B
// from each shrunk A.
func Map[A, B any](ta typeinfo.TypeInfo[A], f func(A) B) typeinfo.TypeInfo[Mapped[A, B]] {
	return typeinfo.TypeInfo[Mapped[A, B]]{
		Alloc: func(s *stream.Stream, env any) (Mapped[A, B], bool) {
			a, ok := ta.Alloc(s, env)
			if !ok {
				return Mapped[A, B]{}, false
			}
			return Mapped[A, B]{Source: a, Value: f(a)}, true
		},
		Release: func(v Mapped[A, B], env any) {
			if ta.CanRelease() {
				ta.Release(v.Source, env)
			}
		},
		Hash: func(v Mapped[A, B], env any) uint64 {
			if !ta.CanHash() {
				return 0
			}
			return ta.Hash(v.Source, env)
		},
		Shrink: func(v Mapped[A, B], tactic int, env any) (Mapped[A, B], typeinfo.ShrinkStatus) {
			if !ta.CanShrink() {
				return v, typeinfo.ShrinkNoMoreTactics
			}
			cand, status := ta.Shrink(v.Source, tactic, env)
			if status != typeinfo.ShrinkFound {
				return v, status
			}
			return Mapped[A, B]{Source: cand, Value: f(cand)}, typeinfo.ShrinkFound
		},
		Print: func(w io.Writer, v Mapped[A, B], env any) {
			if ta.CanPrint() {
				ta.Print(w, v.Source, env)
				return
			}
			fmt.Fprintf(w, "%v", v.Value)
		},
	}
}

// defaultFilterAttempts bounds how many times Filter retries allocation
// before declining a trial, the standard retry-then-skip policy for
// rejection sampling.
const defaultFilterAttempts = 100

// Filter builds a TypeInfo[T] that only allocates and shrinks to values
// satisfying pred. Allocation retries up to maxAttempts times (0 means
// defaultFilterAttempts) before declining the trial. A shrink candidate
// that fails pred is reported DEAD_END for that tactic, so the outer
// shrinker's own tactic++ retry does the rejection sampling for free —
// no internal loop or tactic-index compaction is needed.
func Filter[T any](ti typeinfo.TypeInfo[T], pred func(T) bool, maxAttempts int) typeinfo.TypeInfo[T] {
	if maxAttempts <= 0 {
		maxAttempts = defaultFilterAttempts
	}
	return typeinfo.TypeInfo[T]{
		Alloc: func(s *stream.Stream, env any) (T, bool) {
			for i := 0; i < maxAttempts; i++ {
				v, ok := ti.Alloc(s, env)
				if !ok {
					continue
				}
				if pred(v) {
					return v, true
				}
				if ti.CanRelease() {
					ti.Release(v, env)
				}
			}
			var zero T
			return zero, false
		},
		Release: func(v T, env any) {
			if ti.CanRelease() {
				ti.Release(v, env)
			}
		},
		Hash: func(v T, env any) uint64 {
			if !ti.CanHash() {
				return 0
			}
			return ti.Hash(v, env)
		},
		Shrink: func(v T, tactic int, env any) (T, typeinfo.ShrinkStatus) {
			if !ti.CanShrink() {
				return v, typeinfo.ShrinkNoMoreTactics
			}
			cand, status := ti.Shrink(v, tactic, env)
			if status != typeinfo.ShrinkFound {
				return v, status
			}
			if !pred(cand) {
				if ti.CanRelease() {
					ti.Release(cand, env)
				}
				return v, typeinfo.ShrinkDeadEnd
			}
			return cand, typeinfo.ShrinkFound
		},
		Print: func(w io.Writer, v T, env any) {
			if ti.CanPrint() {
				ti.Print(w, v, env)
			}
		},
	}
}

// Choice tags which variant of a OneOf/Weighted combinator produced Value.
type Choice[T any] struct {
	Index int
	Value T
}

// OneOf builds a TypeInfo[Choice[T]] picking uniformly among variants.
func OneOf[T any](variants ...typeinfo.TypeInfo[T]) typeinfo.TypeInfo[Choice[T]] {
	weights := make([]float64, len(variants))
	for i := range weights {
		weights[i] = 1
	}
	return Weighted(weights, variants...)
}

// Weighted builds a TypeInfo[Choice[T]] picking among variants with
// probability proportional to weights[i]. Weights are consulted directly
// to bias selection — a weight of 0 excludes a variant entirely.
//
// Shrinking delegates entirely to the chosen variant's own Shrink and never
// migrates to a different variant mid-shrink: without a random stream
// available to Shrink, there is no principled way to pick a replacement
// variant's initial value, so a shrink only ever simplifies within the
// variant a trial actually picked.
func Weighted[T any](weights []float64, variants ...typeinfo.TypeInfo[T]) typeinfo.TypeInfo[Choice[T]] {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return typeinfo.TypeInfo[Choice[T]]{
		Alloc: func(s *stream.Stream, env any) (Choice[T], bool) {
			idx := pickWeighted(s, weights, total)
			v, ok := variants[idx].Alloc(s, env)
			if !ok {
				return Choice[T]{}, false
			}
			return Choice[T]{Index: idx, Value: v}, true
		},
		Release: func(v Choice[T], env any) {
			if variants[v.Index].CanRelease() {
				variants[v.Index].Release(v.Value, env)
			}
		},
		Hash: func(v Choice[T], env any) uint64 {
			ti := variants[v.Index]
			if !ti.CanHash() {
				return uint64(v.Index)
			}
			return ti.Hash(v.Value, env)*31 + uint64(v.Index)
		},
		Shrink: func(v Choice[T], tactic int, env any) (Choice[T], typeinfo.ShrinkStatus) {
			ti := variants[v.Index]
			if !ti.CanShrink() {
				return v, typeinfo.ShrinkNoMoreTactics
			}
			cand, status := ti.Shrink(v.Value, tactic, env)
			if status != typeinfo.ShrinkFound {
				return v, status
			}
			return Choice[T]{Index: v.Index, Value: cand}, typeinfo.ShrinkFound
		},
		Print: func(w io.Writer, v Choice[T], env any) {
			ti := variants[v.Index]
			if ti.CanPrint() {
				ti.Print(w, v.Value, env)
				return
			}
			fmt.Fprintf(w, "variant %d", v.Index)
		},
	}
}

func pickWeighted(s *stream.Stream, weights []float64, total float64) int {
	if total <= 0 {
		return s.Intn(len(weights))
	}
	r := s.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}
