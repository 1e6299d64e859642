package gen

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Slice builds a TypeInfo[[]T] over elements produced by elem, with length
// drawn uniformly from [size.Min, size.Max] (default [0, 100] when size is
// the zero value). Shrinking uses the four canonical sequence tactics
// (sequenceKeepRange) to cut the slice down; it does not additionally shrink
// surviving elements in place, since the outer tuple-level shrinker already
// revisits every position from tactic 0 after each accepted step.
func Slice[T any](elem typeinfo.TypeInfo[T], size Size) typeinfo.TypeInfo[[]T] {
	minLen, maxLen := size.Min, size.Max
	if maxLen == 0 {
		minLen, maxLen = 0, 100
	}
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	span := maxLen - minLen

	return typeinfo.TypeInfo[[]T]{
		Alloc: func(s *stream.Stream, env any) ([]T, bool) {
			n := minLen
			if span > 0 {
				n = minLen + s.Intn(span+1)
			}
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
			if tactic >= 4 {
				return nil, typeinfo.ShrinkNoMoreTactics
			}
			start, end, ok := sequenceKeepRange(len(v), tactic)
			if !ok || end-start >= len(v) {
				return v, typeinfo.ShrinkDeadEnd
			}
			kept := end - start
			if kept < minLen {
				return v, typeinfo.ShrinkDeadEnd
			}
			out := make([]T, kept)
			copy(out, v[start:end])
			return out, typeinfo.ShrinkFound
		},
		Print: func(w io.Writer, v []T, env any) {
			fmt.Fprintf(w, "%v", v)
		},
	}
}
