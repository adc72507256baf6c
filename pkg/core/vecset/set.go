// Package vecset implements an ordered multiset of vectors sharing a
// dimension, with linear-scan membership and iterators whose positions are
// kept consistent across removals. Grounded on
// original_source/src/ISetImpl.cpp.
package vecset

import (
	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

// membershipTolerance is the fixed precision ISetImpl::put/contains uses
// for pairwise equality under the Linf norm.
const membershipTolerance = 1e-8

// Set holds owned clones of vectors of a single dimension, plus the
// iterators it has vended.
type Set struct {
	dim       int
	items     []*vec.Vector
	iterators []*Iterator
}

// New creates an empty set whose items must all have dimension dim.
func New(dim int) (*Set, error) {
	if dim == 0 {
		return nil, coreerr.New(coreerr.WrongArg, "set dimension must be non-zero")
	}
	return &Set{dim: dim}, nil
}

// Put stores a clone of v.
func (s *Set) Put(v *vec.Vector) error {
	if v == nil {
		return coreerr.New(coreerr.WrongArg, "item is nil")
	}
	if v.Dim() != s.dim {
		return coreerr.New(coreerr.DimensionsMismatch, "item has different dimension")
	}
	clone, err := v.Clone()
	if err != nil {
		return err
	}
	s.items = append(s.items, clone)
	return nil
}

// Get returns a clone of the item at index i.
func (s *Set) Get(i int) (*vec.Vector, error) {
	if i < 0 || i >= len(s.items) {
		return nil, coreerr.New(coreerr.OutOfRange, "index out of range")
	}
	return s.items[i].Clone()
}

// Remove deletes the item at index i. Live iterators positioned after i
// shift down by one; an iterator positioned exactly at i is invalidated.
func (s *Set) Remove(i int) error {
	if i < 0 || i >= len(s.items) {
		return coreerr.New(coreerr.OutOfRange, "index out of range")
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	for _, it := range s.iterators {
		switch {
		case it.pos > i:
			it.pos--
		case it.pos == i:
			it.valid = false
		}
	}
	return nil
}

// Contains reports whether any stored item equals v under Linf with the
// fixed membership tolerance.
func (s *Set) Contains(v *vec.Vector) (bool, error) {
	if v == nil {
		return false, coreerr.New(coreerr.WrongArg, "item is nil")
	}
	if v.Dim() != s.dim {
		return false, coreerr.New(coreerr.DimensionsMismatch, "item has different dimension")
	}
	for _, item := range s.items {
		eq, err := item.Eq(v, vec.LInf, membershipTolerance)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

// Size returns the number of stored items.
func (s *Set) Size() int { return len(s.items) }

// Clear empties the set and invalidates every live iterator.
func (s *Set) Clear() error {
	s.items = nil
	for _, it := range s.iterators {
		it.valid = false
	}
	s.iterators = nil
	return nil
}

// Iterator is a position into a Set's backing sequence, owned by the Set
// that vended it.
type Iterator struct {
	set   *Set
	pos   int
	valid bool
}

// Begin vends an iterator positioned at the first item.
func (s *Set) Begin() *Iterator {
	it := &Iterator{set: s, pos: 0, valid: true}
	s.iterators = append(s.iterators, it)
	return it
}

// End vends an iterator positioned at the last item.
func (s *Set) End() *Iterator {
	it := &Iterator{set: s, pos: len(s.items) - 1, valid: true}
	s.iterators = append(s.iterators, it)
	return it
}

func (s *Set) findIterator(it *Iterator) int {
	for i, cand := range s.iterators {
		if cand == it {
			return i
		}
	}
	return -1
}

// GetByIterator returns a clone of the item the iterator currently refers
// to.
func (s *Set) GetByIterator(it *Iterator) (*vec.Vector, error) {
	if s.findIterator(it) < 0 {
		return nil, coreerr.New(coreerr.WrongArg, "unknown iterator")
	}
	if !it.valid || it.pos < 0 || it.pos >= len(s.items) {
		return nil, coreerr.New(coreerr.OutOfRange, "iterator position out of range")
	}
	return s.items[it.pos].Clone()
}

// DeleteIterator releases an iterator the set owns.
func (s *Set) DeleteIterator(it *Iterator) error {
	idx := s.findIterator(it)
	if idx < 0 {
		return coreerr.New(coreerr.WrongArg, "unknown iterator")
	}
	s.iterators = append(s.iterators[:idx:idx], s.iterators[idx+1:]...)
	return nil
}

// Next advances the iterator by one position.
func (it *Iterator) Next() error {
	if !it.valid {
		return coreerr.New(coreerr.OutOfRange, "iterator invalidated")
	}
	if it.pos >= len(it.set.items)-1 {
		return coreerr.New(coreerr.OutOfRange, "already at end")
	}
	it.pos++
	return nil
}

// Prev retreats the iterator by one position.
func (it *Iterator) Prev() error {
	if !it.valid {
		return coreerr.New(coreerr.OutOfRange, "iterator invalidated")
	}
	if it.pos <= 0 {
		return coreerr.New(coreerr.OutOfRange, "already at begin")
	}
	it.pos--
	return nil
}

// IsBegin reports whether the iterator is at the first position.
func (it *Iterator) IsBegin() bool { return it.valid && it.pos == 0 }

// IsEnd reports whether the iterator is at the last position.
func (it *Iterator) IsEnd() bool {
	return it.valid && it.pos == len(it.set.items)-1
}
