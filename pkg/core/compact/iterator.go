package compact

import (
	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

// Iterator walks a Compact's grid points in row-major order, or along a
// caller-supplied step vector.
type Iterator struct {
	compact *Compact
	pos     uint64
	step    *vec.Vector // nil selects default (unit row-major) stepping
}

func (k *Compact) newIterator(pos uint64, step *vec.Vector) (*Iterator, error) {
	var stepClone *vec.Vector
	if step != nil {
		if err := k.checkStepCorrectness(step); err != nil {
			return nil, err
		}
		clone, err := step.Clone()
		if err != nil {
			return nil, err
		}
		stepClone = clone
	}
	it := &Iterator{compact: k, pos: pos, step: stepClone}
	k.iterators = append(k.iterators, it)
	return it, nil
}

// Begin vends an iterator at the first grid point. step == nil means
// default row-major stepping; a non-nil step switches to user-stepped
// traversal and must clear checkStepCorrectness.
func (k *Compact) Begin(step *vec.Vector) (*Iterator, error) {
	return k.newIterator(0, step)
}

// End vends an iterator at the last grid point.
func (k *Compact) End(step *vec.Vector) (*Iterator, error) {
	last := uint64(0)
	if k.pointsAmount > 0 {
		last = k.pointsAmount - 1
	}
	return k.newIterator(last, step)
}

func (k *Compact) findIterator(it *Iterator) int {
	for i, cand := range k.iterators {
		if cand == it {
			return i
		}
	}
	return -1
}

// GetByIterator returns the point the iterator currently refers to.
func (k *Compact) GetByIterator(it *Iterator) (*vec.Vector, error) {
	if k.findIterator(it) < 0 {
		return nil, coreerr.New(coreerr.WrongArg, "unknown iterator")
	}
	return k.GetPointByIndex(it.pos)
}

// DeleteIterator releases an iterator the compact owns.
func (k *Compact) DeleteIterator(it *Iterator) error {
	idx := k.findIterator(it)
	if idx < 0 {
		return coreerr.New(coreerr.WrongArg, "unknown iterator")
	}
	k.iterators = append(k.iterators[:idx:idx], k.iterators[idx+1:]...)
	return nil
}

// Point returns the point the iterator currently refers to.
func (it *Iterator) Point() (*vec.Vector, error) {
	return it.compact.GetPointByIndex(it.pos)
}

// Next advances the iterator by one grid step: by raw index under default
// stepping, or by snapping the current point plus the step vector to its
// nearest grid neighbor under user stepping. Returns ErrOutOfRange when the
// iterator cannot advance further (including when a user step snaps back
// to the same point).
func (it *Iterator) Next() error {
	if it.step == nil {
		if it.pos >= it.compact.pointsAmount-1 {
			return coreerr.New(coreerr.OutOfRange, "already at end")
		}
		it.pos++
		return nil
	}

	cur, err := it.compact.GetPointByIndex(it.pos)
	if err != nil {
		return err
	}
	if err := cur.Add(it.step); err != nil {
		return err
	}
	nn, err := it.compact.GetNearestNeighbor(cur)
	if err != nil {
		return err
	}
	newPos, err := it.compact.GetIndexByPoint(nn)
	if err != nil {
		return err
	}
	if newPos == it.pos {
		return coreerr.New(coreerr.OutOfRange, "step did not advance the iterator")
	}
	it.pos = newPos
	return nil
}

// Prev retreats the iterator symmetrically to Next.
func (it *Iterator) Prev() error {
	if it.step == nil {
		if it.pos == 0 {
			return coreerr.New(coreerr.OutOfRange, "already at begin")
		}
		it.pos--
		return nil
	}

	cur, err := it.compact.GetPointByIndex(it.pos)
	if err != nil {
		return err
	}
	back, err := vec.MultiplyByScalar(it.step, -1)
	if err != nil {
		return err
	}
	if err := cur.Add(back); err != nil {
		return err
	}
	nn, err := it.compact.GetNearestNeighbor(cur)
	if err != nil {
		return err
	}
	newPos, err := it.compact.GetIndexByPoint(nn)
	if err != nil {
		return err
	}
	if newPos == it.pos {
		return coreerr.New(coreerr.OutOfRange, "step did not retreat the iterator")
	}
	it.pos = newPos
	return nil
}

// IsBegin reports whether the iterator is at index 0.
func (it *Iterator) IsBegin() bool { return it.pos == 0 }

// IsEnd reports whether the iterator is at the last index.
func (it *Iterator) IsEnd() bool {
	return it.pos == it.compact.pointsAmount-1
}
