package primetable

import (
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

const (
	wordBits  = 32
	wordShift = 5
	wordMask  = wordBits - 1
)

// MaxN is the largest bound a table can be built for. It keeps every
// candidate addressable by the 32-bit roaring export and caps the word
// array at 512 MiB.
const MaxN uint64 = math.MaxUint32

// Querier is the read-only view of a table that renderers and the
// interactive loop depend on.
type Querier interface {
	IsPrime(k uint64) bool
	Contains(k uint64) bool
	N() uint64
}

var _ Querier = (*PrimeTable)(nil)

// PrimeTable is a bit-packed primality table over [0, n].
type PrimeTable struct {
	n    uint64
	bits []uint32
}

// New builds the table for the inclusive range [0, n].
// Bounds above MaxN are clamped to MaxN.
func New(n uint64) *PrimeTable {
	if n > MaxN {
		n = MaxN
	}

	words := make([]uint32, n>>wordShift+1)
	for i := range words {
		words[i] = math.MaxUint32
	}

	t := &PrimeTable{n: n, bits: words}
	t.turnOff(0)
	if n >= 1 {
		t.turnOff(1)
	}
	t.sieve()
	t.clearPadding()
	return t
}

func (t *PrimeTable) sieve() {
	limit := uint64(math.Sqrt(float64(t.n))) + 1
	if limit > t.n {
		limit = t.n
	}

	for p := uint64(2); p <= limit; p++ {
		if !t.IsPrime(p) {
			continue
		}
		for i := 2 * p; i <= t.n; i += p {
			t.turnOff(i)
		}
	}
}

// clearPadding zeroes the bits above n in the last word.
func (t *PrimeTable) clearPadding() {
	used := (t.n & wordMask) + 1
	if used < wordBits {
		t.bits[len(t.bits)-1] &= uint32(1)<<used - 1
	}
}

func (t *PrimeTable) turnOff(k uint64) {
	t.bits[k>>wordShift] &^= 1 << (k & wordMask)
}

func (t *PrimeTable) turnOn(k uint64) {
	t.bits[k>>wordShift] |= 1 << (k & wordMask)
}

// IsPrime reports whether k is prime. The caller must ensure k <= N();
// an index past the last word panics.
func (t *PrimeTable) IsPrime(k uint64) bool {
	return (t.bits[k>>wordShift]>>(k&wordMask))&1 != 0
}

// N returns the inclusive upper bound of the table.
func (t *PrimeTable) N() uint64 {
	return t.n
}

// Contains reports whether k lies inside [0, N()].
func (t *PrimeTable) Contains(k uint64) bool {
	return k <= t.n
}

// Count returns the number of primes in [0, N()].
func (t *PrimeTable) Count() uint64 {
	var total uint64
	for _, w := range t.bits {
		total += uint64(bits.OnesCount32(w))
	}
	return total
}

// Next returns the smallest prime p with k <= p <= N().
// The second result is false when no such prime exists.
func (t *PrimeTable) Next(k uint64) (uint64, bool) {
	if k > t.n {
		return 0, false
	}

	idx := k >> wordShift
	w := t.bits[idx] &^ (uint32(1)<<(k&wordMask) - 1)
	for {
		if w != 0 {
			p := idx<<wordShift + uint64(bits.TrailingZeros32(w))
			return p, p <= t.n
		}
		idx++
		if idx >= uint64(len(t.bits)) {
			return 0, false
		}
		w = t.bits[idx]
	}
}

// Bitmap returns the primes in [lo, hi] as a roaring bitmap.
// hi is clamped to N(); an empty bitmap is returned when lo > hi.
func (t *PrimeTable) Bitmap(lo, hi uint64) *roaring.Bitmap {
	rb := roaring.New()
	if hi > t.n {
		hi = t.n
	}
	if lo > hi {
		return rb
	}

	for p, ok := t.Next(lo); ok && p <= hi; p, ok = t.Next(p + 1) {
		rb.Add(uint32(p))
	}
	rb.RunOptimize()
	return rb
}

// SizeBytes returns the memory held by the word array.
func (t *PrimeTable) SizeBytes() int {
	return len(t.bits) * (wordBits / 8)
}

// Words returns the number of 32-bit words backing the table.
func (t *PrimeTable) Words() int {
	return len(t.bits)
}
