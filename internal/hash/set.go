package hash

import (
	"encoding/binary"

	bloom "github.com/bits-and-blooms/bloom/v3"
)

// FalsePositive is the false positive rate of the bloomfilter behind a Set.
// Over n insertions the chance of reporting at least one spurious repeat
// stays under n * FalsePositive.
const FalsePositive = 1e-9

// Set checks that a stream of index vectors holds no repeats while keeping
// nothing but the bits of a bloomfilter: memory does not grow with the
// length of the vectors, and no vector or fingerprint is retained.
//
// A true repeat is always reported. A vector seen for the first time is
// misreported as a repeat with probability at most FalsePositive.
type Set struct {
	h  Hasher
	bf *bloom.BloomFilter
	// n is the number of insertions, repeats the number answered "maybe seen"
	n, repeats int
}

// NewSet returns a Set sized for about n insertions
func NewSet(h Hasher, n uint) *Set {
	if n == 0 {
		n = 1
	}
	return &Set{h: h, bf: bloom.NewWithEstimates(n, FalsePositive)}
}

// Insert adds v to the set and returns false if the filter
// may have seen it before.
func (s *Set) Insert(v []int) bool {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], s.h.Sum64(v))

	s.n++
	if s.bf.TestAndAdd(key[:]) {
		s.repeats++
		return false
	}
	return true
}

// Len returns the number of insertions
func (s *Set) Len() int {
	return s.n
}

// Repeats returns the number of insertions reported as possible repeats
func (s *Set) Repeats() int {
	return s.repeats
}

// Distinct returns the number of insertions known to be new
func (s *Set) Distinct() int {
	return s.n - s.repeats
}
