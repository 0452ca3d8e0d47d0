package combinatorics

import (
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Sequence is an ordered run of indices compared by content, not identity.
// Assignments and permutations are both Sequences.
type Sequence []int

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence { return slices.Clone(s) }

// Equal reports element-wise equality.
func (s Sequence) Equal(other Sequence) bool { return slices.Equal(s, other) }

// Key returns a canonical string form ("3,0,1") usable as a map key.
// Equal sequences produce equal keys and vice versa.
func (s Sequence) Key() string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	var i int
	for i = range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s[i]))
	}

	return b.String()
}

// String renders the sequence like a Go slice: "[3 0 1]".
func (s Sequence) String() string {
	return "[" + strings.ReplaceAll(s.Key(), ",", " ") + "]"
}

// Set is a set of Sequences with structural equality.
// The zero value is not usable; call NewSet. A Set is not safe for concurrent use.
// Members handed out by All and Sorted are shared with the set; do not modify them.
type Set struct {
	items map[string]Sequence
}

// NewSet returns an empty set pre-populated with the given sequences.
func NewSet(seqs ...Sequence) *Set {
	s := &Set{items: make(map[string]Sequence, len(seqs))}
	for _, seq := range seqs {
		s.Add(seq)
	}

	return s
}

// Add stores a copy of seq and reports whether it was not already present.
func (s *Set) Add(seq Sequence) bool {
	k := seq.Key()
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = seq.Clone()

	return true
}

// Has reports membership.
func (s *Set) Has(seq Sequence) bool {
	_, ok := s.items[seq.Key()]
	return ok
}

// Len returns the number of distinct sequences.
func (s *Set) Len() int { return len(s.items) }

// All iterates the members in unspecified order.
func (s *Set) All() iter.Seq[Sequence] { return maps.Values(s.items) }

// Sorted returns the members in lexicographic order (shorter prefix first).
func (s *Set) Sorted() []Sequence {
	out := slices.Collect(maps.Values(s.items))
	slices.SortFunc(out, func(a, b Sequence) int { return slices.Compare(a, b) })

	return out
}

// Equal reports whether both sets hold exactly the same sequences.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for k := range s.items {
		if _, ok := other.items[k]; !ok {
			return false
		}
	}

	return true
}

// Difference returns the members of s that are not in other.
func (s *Set) Difference(other *Set) *Set {
	out := NewSet()
	for k, seq := range s.items {
		if _, ok := other.items[k]; !ok {
			out.items[k] = seq
		}
	}

	return out
}
