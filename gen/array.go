package gen

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// FixedSlice builds a TypeInfo[[]T] of exactly n elements from elem. Go
// generics cannot parameterize a function over an array's length (array
// size must be a constant, not a type parameter), so a fixed-length Go
// array type isn't expressible here; FixedSlice gives the same guarantee
// at the value level instead. Shrinking never changes the length: only
// the element-wise recursion the outer tuple shrinker performs by
// revisiting this position can simplify its contents.
func FixedSlice[T any](elem typeinfo.TypeInfo[T], n int) typeinfo.TypeInfo[[]T] {
	return typeinfo.TypeInfo[[]T]{
		Alloc: func(s *stream.Stream, env any) ([]T, bool) {
			out := make([]T, 0, n)
			for i := 0; i < n; i++ {
				v, ok := elem.Alloc(s, env)
				if !ok {
					for j := range out {
						if elem.CanRelease() {
							elem.Release(out[j], env)
						}
					}
					return nil, false
				}
				out = append(out, v)
			}
			return out, true
		},
		Release: func(v []T, env any) {
			if !elem.CanRelease() {
				return
			}
			for _, e := range v {
				elem.Release(e, env)
			}
		},
		Hash: func(v []T, env any) uint64 {
			if !elem.CanHash() {
				return uint64(len(v))
			}
			h := xxhash.New()
			var word [8]byte
			for i, e := range v {
				binary.LittleEndian.PutUint64(word[:], elem.Hash(e, env))
				h.Write(word[:])
				binary.LittleEndian.PutUint64(word[:], uint64(i))
				h.Write(word[:])
			}
			return h.Sum64()
		},
		Shrink: func(v []T, tactic int, env any) ([]T, typeinfo.ShrinkStatus) {
			if !elem.CanShrink() || len(v) == 0 {
				return v, typeinfo.ShrinkNoMoreTactics
			}
			pos := tactic / elementTacticFanout
			elemTactic := tactic % elementTacticFanout
			if pos >= len(v) {
				return v, typeinfo.ShrinkNoMoreTactics
			}
			cand, status := elem.Shrink(v[pos], elemTactic, env)
			if status != typeinfo.ShrinkFound {
				// A position's own tactics may exhaust before
				// elementTacticFanout does; that's a DEAD_END for this
				// tactic index, not NO_MORE_TACTICS for the whole slice —
				// later positions still have tactics to offer.
				return v, typeinfo.ShrinkDeadEnd
			}
			out := make([]T, len(v))
			copy(out, v)
			out[pos] = cand
			return out, typeinfo.ShrinkFound
		},
		Print: func(w io.Writer, v []T, env any) {
			fmt.Fprintf(w, "%v", v)
		},
	}
}

// elementTacticFanout bounds how many per-element tactic slots FixedSlice
// reserves before moving to the next position; eight covers every numeric
// builder's tactic count in this package with room to spare.
const elementTacticFanout = 8
