package gen

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// defaultAlphabet is the printable ASCII range used by String when no
// alphabet is supplied.
const defaultAlphabet = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// String builds a TypeInfo[string] of runes drawn from alphabet (or
// defaultAlphabet, if alphabet == ""), with length drawn uniformly from
// [size.Min, size.Max] (default [0, 100]). Shrinking applies the same four
// canonical sequence tactics Slice uses, operating on the rune sequence.
func String(size Size, alphabet string) typeinfo.TypeInfo[string] {
	if alphabet == "" {
		alphabet = defaultAlphabet
	}
	letters := []rune(alphabet)

	minLen, maxLen := size.Min, size.Max
	if maxLen == 0 {
		minLen, maxLen = 0, 100
	}
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	span := maxLen - minLen

	return typeinfo.TypeInfo[string]{
		Alloc: func(s *stream.Stream, env any) (string, bool) {
			n := minLen
			if span > 0 {
				n = minLen + s.Intn(span+1)
			}
			out := make([]rune, n)
			for i := range out {
				out[i] = letters[s.Intn(len(letters))]
			}
			return string(out), true
		},
		Hash: func(v string, env any) uint64 {
			return xxhash.Sum64String(v)
		},
		Shrink: func(v string, tactic int, env any) (string, typeinfo.ShrinkStatus) {
			runes := []rune(v)
			if tactic >= 4 {
				return "", typeinfo.ShrinkNoMoreTactics
			}
			start, end, ok := sequenceKeepRange(len(runes), tactic)
			if !ok || end-start >= len(runes) {
				return v, typeinfo.ShrinkDeadEnd
			}
			if end-start < minLen {
				return v, typeinfo.ShrinkDeadEnd
			}
			return string(runes[start:end]), typeinfo.ShrinkFound
		},
		Print: func(w io.Writer, v string, env any) {
			fmt.Fprintf(w, "%q", v)
		},
	}
}
