package gen

import (
	"fmt"
	"io"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Bool builds a TypeInfo[bool]. Its only shrink tactic moves true towards
// false; false has no tactics.
func Bool() typeinfo.TypeInfo[bool] {
	return typeinfo.TypeInfo[bool]{
		Alloc: func(s *stream.Stream, env any) (bool, bool) {
			return s.Next64()&1 == 1, true
		},
		Hash: func(v bool, env any) uint64 {
			if v {
				return 1
			}
			return 0
		},
		Shrink: func(v bool, tactic int, env any) (bool, typeinfo.ShrinkStatus) {
			if tactic > 0 {
				return false, typeinfo.ShrinkNoMoreTactics
			}
			if !v {
				return false, typeinfo.ShrinkDeadEnd
			}
			return false, typeinfo.ShrinkFound
		},
		Print: func(w io.Writer, v bool, env any) {
			fmt.Fprintf(w, "%t", v)
		},
	}
}
