// Package bloom implements the auto-sized, bit-addressed duplicate-
// suppression filter the trial runner and shrinker consult before
// re-testing an argument tuple they've already seen.
//
// Consultation is strictly an optimization: a false positive costs one
// skipped trial, counted as a duplicate. No correctness property depends
// on the filter's sizing or hash quality.
package bloom

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

const (
	minK = 13
	maxK = 33
)

// Filter is a bit-addressed set over 64-bit hashes, tested and set via two
// independent probes derived from a single hash's high and low halves.
type Filter struct {
	bits *bitset.BitSet
	mask uint64
}

// New creates an empty filter. bitCountHint, when nonzero, is the bit-width
// exponent k (2^k bits), clamped to [minK, maxK]. A zero hint auto-sizes k
// so that 2^k >= 16*trials, which keeps the expected false-positive rate
// well below 1% at the nominal trial count.
func New(bitCountHint uint, trials int) *Filter {
	k := bitCountHint
	if k == 0 {
		k = autoK(trials)
	}
	if k < minK {
		k = minK
	}
	if k > maxK {
		k = maxK
	}
	size := uint64(1) << k
	return &Filter{
		bits: bitset.New(uint(size)),
		mask: size - 1,
	}
}

func autoK(trials int) uint {
	if trials < 1 {
		trials = 1
	}
	need := uint64(16) * uint64(trials)
	k := uint(bits.Len64(need - 1))
	if uint64(1)<<k < need {
		k++
	}
	return k
}

// TestAndSet reports whether hash was already present, then marks it
// present. The two probes are the high and low 32 bits of hash, masked into
// the filter's bit range; a tuple is reported as present only once both
// probes were already set, so a single accidental collision on one probe
// alone is not enough to report a false "seen before".
func (f *Filter) TestAndSet(hash uint64) bool {
	hi := uint(hash>>32) & uint(f.mask)
	lo := uint(hash) & uint(f.mask)

	present := f.bits.Test(hi) && f.bits.Test(lo)
	f.bits.Set(hi)
	f.bits.Set(lo)
	return present
}

// Len returns the number of addressable bits in the filter.
func (f *Filter) Len() int {
	if f.bits == nil {
		return 0
	}
	return int(f.mask) + 1
}

// Destroy releases the filter's backing storage.
func (f *Filter) Destroy() {
	f.bits = nil
}
