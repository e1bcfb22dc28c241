package core

import (
	"math/bits"
	"math/rand"
	"strings"
)

const (
	wordShift = 6
	wordMask  = 63
)

// Genome is a fixed-length bit-vector encoding of a knapsack solution: bit i
// set means item i is packed. The length is fixed at construction and never
// changes; variation operators return new genomes rather than editing in
// place.
type Genome struct {
	length int
	words  []uint64
}

// NewGenome returns an all-zero genome of the given length.
func NewGenome(length int) Genome {
	return Genome{
		length: length,
		words:  make([]uint64, (length+wordMask)>>wordShift),
	}
}

// RandomGenome returns a genome of the given length with each bit set
// independently with probability 1/2.
func RandomGenome(length int, rng *rand.Rand) Genome {
	g := NewGenome(length)
	for i := range g.words {
		g.words[i] = rng.Uint64()
	}
	g.maskTail()
	return g
}

// maskTail zeroes the unused high bits of the last word so population-wide
// word operations never see stray bits.
func (g Genome) maskTail() {
	if rem := uint(g.length) & wordMask; rem != 0 && len(g.words) > 0 {
		g.words[len(g.words)-1] &= (1 << rem) - 1
	}
}

// Len returns the number of bits in the genome.
func (g Genome) Len() int {
	return g.length
}

// Has reports whether bit pos is set.
func (g Genome) Has(pos int) bool {
	return g.words[pos>>wordShift]&(1<<(uint(pos)&wordMask)) != 0
}

// Set sets bit pos to one.
func (g Genome) Set(pos int) {
	g.words[pos>>wordShift] |= 1 << (uint(pos) & wordMask)
}

// Clear sets bit pos to zero.
func (g Genome) Clear(pos int) {
	g.words[pos>>wordShift] &^= 1 << (uint(pos) & wordMask)
}

// Flip inverts bit pos.
func (g Genome) Flip(pos int) {
	g.words[pos>>wordShift] ^= 1 << (uint(pos) & wordMask)
}

// Ones returns the number of set bits.
func (g Genome) Ones() int {
	count := 0
	for _, w := range g.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// Clone returns a genome with the same bits backed by independent storage.
func (g Genome) Clone() Genome {
	out := Genome{length: g.length, words: make([]uint64, len(g.words))}
	copy(out.words, g.words)
	return out
}

// Equal reports whether two genomes have the same length and bits.
func (g Genome) Equal(other Genome) bool {
	if g.length != other.length {
		return false
	}
	for i, w := range g.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}

// HammingDistance returns the number of bit positions at which g and other
// differ. Lengths must match.
func (g Genome) HammingDistance(other Genome) int {
	dist := 0
	for i, w := range g.words {
		dist += bits.OnesCount64(w ^ other.words[i])
	}
	return dist
}

// String renders the genome with bit 0 leftmost.
func (g Genome) String() string {
	var b strings.Builder
	b.Grow(g.length)
	for i := 0; i < g.length; i++ {
		if g.Has(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
