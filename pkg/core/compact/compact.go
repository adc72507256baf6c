// Package compact implements the sampled compact: an axis-aligned box with
// per-axis discretization, nearest-neighbor projection, point↔index
// bijection, and stepping iterators. Grounded on
// original_source/src/Compact.cpp, with one deliberate behavior change from
// the original (see DESIGN.md OQ-1): an axis whose begin equals its end
// always gets exactly one sample, regardless of whether sampling is
// default or user-supplied, so that a degenerate box has pointsAmount == 1
// as spec.md's testable-properties scenario 3 requires.
package compact

import (
	"math"

	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

// MaxPoints is the grid cap (2^32 - 1) from spec.md §3.
const MaxPoints = uint64(1)<<32 - 1

// precisionDivider is ICompact::PRECISION_DIVIDER: grid-point equality
// tolerance is step/precisionDivider per axis.
const precisionDivider = 1000.0

// Compact is an axis-aligned box with a uniform grid sampling.
type Compact struct {
	dim          int
	begin        *vec.Vector
	end          *vec.Vector
	step         []float64
	counters     []uint64
	pointsAmount uint64
	iterators    []*Iterator
}

// Create builds a Compact from corner vectors and an optional per-axis
// sample count. counts == nil selects the default sampling (every
// non-degenerate axis gets floor(MaxPoints^(1/n)) samples); otherwise
// counts[i] is the requested sample count for axis i (rounded by the
// caller already, since Go has no implicit float→uint truncation surprises
// to hide).
func Create(begin, end *vec.Vector, counts []uint64) (*Compact, error) {
	if begin == nil || end == nil {
		return nil, coreerr.New(coreerr.WrongArg, "begin/end must not be nil")
	}
	dim := begin.Dim()
	if dim != end.Dim() {
		return nil, coreerr.New(coreerr.DimensionsMismatch, "begin/end dimension mismatch")
	}
	if dim == 0 {
		return nil, coreerr.New(coreerr.WrongArg, "dimension must be positive")
	}

	bCoords := make([]float64, dim)
	eCoords := make([]float64, dim)
	for i := 0; i < dim; i++ {
		b, err := begin.GetCoord(i)
		if err != nil {
			return nil, err
		}
		e, err := end.GetCoord(i)
		if err != nil {
			return nil, err
		}
		if b > e {
			return nil, coreerr.New(coreerr.WrongArg, "begin[i] must be <= end[i]")
		}
		bCoords[i], eCoords[i] = b, e
	}

	if counts != nil && len(counts) != dim {
		return nil, coreerr.New(coreerr.DimensionsMismatch, "step dimension mismatch")
	}

	counters := make([]uint64, dim)
	defaultCounter := uint64(math.Floor(math.Pow(float64(MaxPoints), 1.0/float64(dim))))
	if defaultCounter < 1 {
		defaultCounter = 1
	}

	pointsAmount := uint64(1)
	for i := 0; i < dim; i++ {
		switch {
		case bCoords[i] == eCoords[i]:
			counters[i] = 1 // degenerate axis: exactly one sample, see OQ-1
		case counts != nil:
			if counts[i] < 1 {
				return nil, coreerr.New(coreerr.WrongArg, "sample count must be >= 1")
			}
			counters[i] = counts[i]
		default:
			counters[i] = defaultCounter
		}
		if pointsAmount > MaxPoints/counters[i] {
			return nil, coreerr.New(coreerr.WrongArg, "point grid exceeds MaxPoints")
		}
		pointsAmount *= counters[i]
	}
	if pointsAmount > MaxPoints {
		return nil, coreerr.New(coreerr.WrongArg, "point grid exceeds MaxPoints")
	}

	step := make([]float64, dim)
	for i := 0; i < dim; i++ {
		step[i] = (eCoords[i] - bCoords[i]) / float64(counters[i])
	}

	beginClone, err := begin.Clone()
	if err != nil {
		return nil, err
	}
	endClone, err := end.Clone()
	if err != nil {
		return nil, err
	}

	return &Compact{
		dim:          dim,
		begin:        beginClone,
		end:          endClone,
		step:         step,
		counters:     counters,
		pointsAmount: pointsAmount,
	}, nil
}

// Dim reports the compact's dimension.
func (k *Compact) Dim() int { return k.dim }

// PointsAmount reports the total number of grid points.
func (k *Compact) PointsAmount() uint64 { return k.pointsAmount }

// AxisSampleCount reports how many samples axis i has.
func (k *Compact) AxisSampleCount(i int) (uint64, error) {
	if i < 0 || i >= k.dim {
		return 0, coreerr.New(coreerr.OutOfRange, "axis index out of range")
	}
	return k.counters[i], nil
}

// AxisCoord returns begin[i] + j*step[i], the coordinate of sample j along
// axis i, without touching any other axis.
func (k *Compact) AxisCoord(i int, j uint64) (float64, error) {
	if i < 0 || i >= k.dim {
		return 0, coreerr.New(coreerr.OutOfRange, "axis index out of range")
	}
	if j >= k.counters[i] {
		return 0, coreerr.New(coreerr.OutOfRange, "sample index out of range")
	}
	b, _ := k.begin.GetCoord(i)
	return b + float64(j)*k.step[i], nil
}

// Clone returns a new Compact with the same corners and an equivalent
// counter vector.
func (k *Compact) Clone() (*Compact, error) {
	counts := make([]uint64, k.dim)
	copy(counts, k.counters)
	return Create(k.begin, k.end, counts)
}

// IsContains reports whether vec lies within [begin, end] componentwise.
func (k *Compact) IsContains(v *vec.Vector) (bool, error) {
	if v == nil {
		return false, coreerr.New(coreerr.WrongArg, "vec is nil")
	}
	if v.Dim() != k.dim {
		return false, coreerr.New(coreerr.DimensionsMismatch, "vec dimension mismatch")
	}
	for i := 0; i < k.dim; i++ {
		x, err := v.GetCoord(i)
		if err != nil {
			return false, err
		}
		b, _ := k.begin.GetCoord(i)
		e, _ := k.end.GetCoord(i)
		if x < b || x > e {
			return false, nil
		}
	}
	return true, nil
}

// GetNearestNeighbor projects v onto the grid: clamping out-of-range
// coordinates to the corresponding corner, and snapping in-range
// coordinates to the nearest sample.
func (k *Compact) GetNearestNeighbor(v *vec.Vector) (*vec.Vector, error) {
	if v == nil {
		return nil, coreerr.New(coreerr.WrongArg, "vec is nil")
	}
	if v.Dim() != k.dim {
		return nil, coreerr.New(coreerr.DimensionsMismatch, "vec dimension mismatch")
	}
	out := make([]float64, k.dim)
	for i := 0; i < k.dim; i++ {
		x, err := v.GetCoord(i)
		if err != nil {
			return nil, err
		}
		b, _ := k.begin.GetCoord(i)
		e, _ := k.end.GetCoord(i)
		switch {
		case x <= b:
			out[i] = b
		case x >= e:
			out[i] = e
		case k.step[i] == 0:
			out[i] = b
		default:
			out[i] = b + math.Round((x-b)/k.step[i])*k.step[i]
		}
	}
	return vec.Create(k.dim, out)
}

func (k *Compact) vectorPrecisionEquals(a, b *vec.Vector) bool {
	for i := 0; i < k.dim; i++ {
		ca, err1 := a.GetCoord(i)
		cb, err2 := b.GetCoord(i)
		if err1 != nil || err2 != nil {
			return false
		}
		tol := k.step[i] / precisionDivider
		if tol == 0 {
			tol = 1e-9
		}
		if math.Abs(ca-cb) > tol {
			return false
		}
	}
	return true
}

// GetPointByIndex maps a row-major grid index back to its point.
func (k *Compact) GetPointByIndex(index uint64) (*vec.Vector, error) {
	if index >= k.pointsAmount {
		return nil, coreerr.New(coreerr.OutOfRange, "index out of range")
	}
	coords := make([]float64, k.dim)
	rem := index
	for i := k.dim - 1; i >= 0; i-- {
		c := k.counters[i]
		cur := rem % c
		rem /= c
		b, _ := k.begin.GetCoord(i)
		coords[i] = b + float64(cur)*k.step[i]
	}
	return vec.Create(k.dim, coords)
}

// GetIndexByPoint maps a grid point (within step/1000 per axis) back to its
// row-major index.
func (k *Compact) GetIndexByPoint(v *vec.Vector) (uint64, error) {
	if v == nil {
		return 0, coreerr.New(coreerr.WrongArg, "vec is nil")
	}
	if v.Dim() != k.dim {
		return 0, coreerr.New(coreerr.DimensionsMismatch, "vec dimension mismatch")
	}
	nn, err := k.GetNearestNeighbor(v)
	if err != nil {
		return 0, err
	}
	if !k.vectorPrecisionEquals(v, nn) {
		return 0, coreerr.New(coreerr.WrongArg, "point is not on the grid")
	}

	idxs := make([]uint64, k.dim)
	for i := 0; i < k.dim; i++ {
		if k.step[i] == 0 {
			idxs[i] = 0
			continue
		}
		x, _ := nn.GetCoord(i)
		b, _ := k.begin.GetCoord(i)
		idxs[i] = uint64(math.Round((x - b) / k.step[i]))
	}

	var index uint64
	for i := 0; i < k.dim; i++ {
		index = index*k.counters[i] + idxs[i]
	}
	return index, nil
}

// IsSubSet is deliberately unimplemented; see spec.md §9.
func (k *Compact) IsSubSet(other *Compact) error {
	return coreerr.ErrNotImplemented
}

func (k *Compact) checkStepCorrectness(step *vec.Vector) error {
	if step == nil {
		return coreerr.New(coreerr.WrongArg, "step is nil")
	}
	if step.Dim() != k.dim {
		return coreerr.New(coreerr.DimensionsMismatch, "step dimension mismatch")
	}
	for i := 0; i < k.dim; i++ {
		s, err := step.GetCoord(i)
		if err != nil {
			return err
		}
		if math.Abs(s) > k.step[i]/2 {
			return nil
		}
	}
	return coreerr.New(coreerr.WrongArg, "step too small to advance the iterator")
}
