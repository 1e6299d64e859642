// Package domain collects generators for structured real-world identifiers,
// where "valid" means more than "the right type" — the value must satisfy a
// checksum or format invariant the property under test assumes holds.
package domain

import (
	"fmt"
	"io"

	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// CPF is a Brazilian taxpayer identifier: 9 base digits followed by 2
// check digits computed from them.
type CPF struct {
	Digits [11]int
}

// String renders the canonical ddd.ddd.ddd-dd form.
func (c CPF) String() string {
	d := c.Digits
	return fmt.Sprintf("%d%d%d.%d%d%d.%d%d%d-%d%d",
		d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8], d[9], d[10])
}

// CPFGen builds a TypeInfo[CPF] that only ever allocates and shrinks to
// checksum-valid CPFs: the check digits are recomputed after every change to
// the base digits, so no candidate with a mismatched checksum is ever
// offered to the property under test.
func CPFGen() typeinfo.TypeInfo[CPF] {
	return typeinfo.TypeInfo[CPF]{
		Alloc: func(s *stream.Stream, env any) (CPF, bool) {
			var base [9]int
			for i := range base {
				base[i] = s.Intn(10)
			}
			return CPF{Digits: withCheckDigits(base)}, true
		},
		Hash: func(v CPF, env any) uint64 {
			var h uint64
			for _, d := range v.Digits {
				h = h*10 + uint64(d)
			}
			return h
		},
		// Shrink offers two tactic families over the 9 base digits, each
		// indexed by position:
		//   tactics [0, 9):  zero out base digit i (DEAD_END if already 0)
		//   tactics [9, 18): decrement base digit i by one (DEAD_END if 0)
		// Either family yields a numerically smaller, still-checksum-valid
		// CPF; check digits are always recomputed from the new base.
		Shrink: func(v CPF, tactic int, env any) (CPF, typeinfo.ShrinkStatus) {
			base := baseDigits(v)
			switch {
			case tactic < 9:
				i := tactic
				if base[i] == 0 {
					return v, typeinfo.ShrinkDeadEnd
				}
				base[i] = 0
				return CPF{Digits: withCheckDigits(base)}, typeinfo.ShrinkFound
			case tactic < 18:
				i := tactic - 9
				if base[i] == 0 {
					return v, typeinfo.ShrinkDeadEnd
				}
				base[i]--
				return CPF{Digits: withCheckDigits(base)}, typeinfo.ShrinkFound
			default:
				return v, typeinfo.ShrinkNoMoreTactics
			}
		},
		Print: func(w io.Writer, v CPF, env any) {
			fmt.Fprint(w, v.String())
		},
	}
}

func baseDigits(c CPF) [9]int {
	var b [9]int
	copy(b[:], c.Digits[:9])
	return b
}

// withCheckDigits computes the two standard CPF check digits for a 9-digit
// base and returns the full 11-digit sequence.
func withCheckDigits(base [9]int) [11]int {
	var out [11]int
	copy(out[:9], base[:])
	out[9] = cpfCheckDigit(out[:9], 10)
	out[10] = cpfCheckDigit(out[:10], 11)
	return out
}

// cpfCheckDigit implements the standard weighted-sum-mod-11 CPF check digit
// algorithm: weights count down from firstWeight, and a remainder under 2
// maps to digit 0.
func cpfCheckDigit(digits []int, firstWeight int) int {
	sum := 0
	weight := firstWeight
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rem := (sum * 10) % 11
	if rem >= 10 {
		return 0
	}
	return rem
}
