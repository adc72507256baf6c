package compact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

func v(t *testing.T, coords ...float64) *vec.Vector {
	t.Helper()
	out, err := vec.Create(len(coords), coords)
	require.NoError(t, err)
	return out
}

func TestCreateRejectsBeginAfterEnd(t *testing.T) {
	_, err := Create(v(t, 1, 1), v(t, 0, 1), nil)
	assert.True(t, errors.Is(err, coreerr.ErrWrongArg))
}

func TestDegenerateAxisForcesSinglePoint(t *testing.T) {
	k, err := Create(v(t, 0, 5), v(t, 0, 5), nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), k.PointsAmount())
}

func TestExplicitCountsYieldExpectedGridSize(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 1, 1), []uint64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, uint64(12), k.PointsAmount())
}

func TestExplicitCountsOverriddenOnDegenerateAxis(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 0, 2), []uint64{7, 5})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), k.PointsAmount())
}

func TestIsContains(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 1, 1), []uint64{4, 4})
	require.NoError(t, err)
	ok, err := k.IsContains(v(t, 0.5, 0.5))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = k.IsContains(v(t, 1.5, 0.5))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNearestNeighborClampsOutOfRange(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 1, 1), []uint64{2, 2})
	require.NoError(t, err)
	nn, err := k.GetNearestNeighbor(v(t, -5, 5))
	require.NoError(t, err)
	x, _ := nn.GetCoord(0)
	y, _ := nn.GetCoord(1)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1.0, y)
}

func TestNearestNeighborSnapsToGrid(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 4, 4), []uint64{4, 4})
	require.NoError(t, err)
	nn, err := k.GetNearestNeighbor(v(t, 1.6, 2.4))
	require.NoError(t, err)
	x, _ := nn.GetCoord(0)
	y, _ := nn.GetCoord(1)
	assert.InDelta(t, 2.0, x, 1e-9)
	assert.InDelta(t, 2.0, y, 1e-9)
}

func TestIndexPointRoundTrip(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 3, 2), []uint64{3, 2})
	require.NoError(t, err)
	for i := uint64(0); i < k.PointsAmount(); i++ {
		p, err := k.GetPointByIndex(i)
		require.NoError(t, err)
		back, err := k.GetIndexByPoint(p)
		require.NoError(t, err)
		assert.Equal(t, i, back)
	}
}

func TestGetPointByIndexOutOfRange(t *testing.T) {
	k, err := Create(v(t, 0), v(t, 1), []uint64{2})
	require.NoError(t, err)
	_, err = k.GetPointByIndex(100)
	assert.True(t, errors.Is(err, coreerr.ErrOutOfRange))
}

func TestGetIndexByPointRejectsOffGridPoint(t *testing.T) {
	k, err := Create(v(t, 0), v(t, 1), []uint64{2})
	require.NoError(t, err)
	_, err = k.GetIndexByPoint(v(t, 0.2))
	assert.True(t, errors.Is(err, coreerr.ErrWrongArg))
}

func TestIsSubSetNotImplemented(t *testing.T) {
	k, err := Create(v(t, 0), v(t, 1), []uint64{2})
	require.NoError(t, err)
	other, err := Create(v(t, 0), v(t, 1), []uint64{2})
	require.NoError(t, err)
	assert.True(t, errors.Is(k.IsSubSet(other), coreerr.ErrNotImplemented))
}

func TestDefaultIteratorWalksAllPoints(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 1, 1), []uint64{2, 2})
	require.NoError(t, err)
	it, err := k.Begin(nil)
	require.NoError(t, err)
	count := 1
	for !it.IsEnd() {
		require.NoError(t, it.Next())
		count++
	}
	assert.Equal(t, 4, count)
	assert.True(t, errors.Is(it.Next(), coreerr.ErrOutOfRange))
}

func TestUserSteppedIteratorRejectsTooSmallStep(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 10, 10), []uint64{10, 10})
	require.NoError(t, err)
	_, err = k.Begin(v(t, 0.01, 0.01))
	assert.True(t, errors.Is(err, coreerr.ErrWrongArg))
}

func TestUserSteppedIteratorAdvances(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 10, 10), []uint64{10, 10})
	require.NoError(t, err)
	it, err := k.Begin(v(t, 3, 0))
	require.NoError(t, err)
	p0, err := it.Point()
	require.NoError(t, err)
	x0, _ := p0.GetCoord(0)
	assert.Equal(t, 0.0, x0)

	require.NoError(t, it.Next())
	p1, err := it.Point()
	require.NoError(t, err)
	x1, _ := p1.GetCoord(0)
	assert.InDelta(t, 3.0, x1, 1e-9)
}

func TestCloneProducesEquivalentGrid(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 1, 1), []uint64{3, 3})
	require.NoError(t, err)
	clone, err := k.Clone()
	require.NoError(t, err)
	assert.Equal(t, k.PointsAmount(), clone.PointsAmount())
}

func TestAxisCoordMatchesPointByIndex(t *testing.T) {
	k, err := Create(v(t, 0, 0), v(t, 3, 1), []uint64{4, 2})
	require.NoError(t, err)
	count, err := k.AxisSampleCount(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)
	x, err := k.AxisCoord(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, x, 1e-9)
	p, err := k.GetPointByIndex(2 * 2) // axis-0 sample 2, axis-1 sample 0
	require.NoError(t, err)
	px, _ := p.GetCoord(0)
	assert.InDelta(t, x, px, 1e-9)
}

func TestGetByIteratorUnknownIsWrongArg(t *testing.T) {
	k, err := Create(v(t, 0), v(t, 1), []uint64{2})
	require.NoError(t, err)
	other, err := Create(v(t, 0), v(t, 1), []uint64{2})
	require.NoError(t, err)
	foreign, err := other.Begin(nil)
	require.NoError(t, err)
	_, err = k.GetByIterator(foreign)
	assert.True(t, errors.Is(err, coreerr.ErrWrongArg))
}
