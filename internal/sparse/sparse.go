// Package sparse provides a sparse set over pattern indices for candidate
// aggregation.
//
// Resolving the candidate set for a query unions many small index sets
// reported by the automaton scan. A sparse set gives O(1) insertion and
// membership over the fixed universe [0, patternCount) while keeping a
// dense list of the inserted indices in first-insertion order, which makes
// aggregation deterministic for a given automaton and input.
package sparse

// Set is a set of pattern indices with O(1) insert and membership.
// It maintains a sparse array (value -> position in dense) and a dense
// array (the inserted values, in insertion order).
//
// The universe size is fixed at construction; inserting an index outside
// [0, capacity) panics, since pattern indices are assigned by the matcher
// and can never be out of range.
type Set struct {
	sparse []uint32 // maps value -> index in dense
	dense  []uint32 // inserted values, in insertion order
	size   uint32
}

// NewSet creates a set over the universe [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set. Inserting a present value is a no-op.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return int(s.size)
}

// IsEmpty reports whether the set contains no elements.
func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// Values returns the inserted values in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}
