package problem

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

func TestGoalFunctionValue(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	f, err := q.GoalFunction(v(t, 3, 4), v(t, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 9.0+16.0+1.0-4.0+1.0-2.0, f)
}

func TestGoalFunctionRejectsDimMismatch(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	_, err = q.GoalFunction(v(t, 1, 2, 3), v(t, 1, 1))
	assert.True(t, errors.Is(err, coreerr.ErrVariablesNumberMismatch))
}

func TestGoalFunctionByArgsUsesCachedParams(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	require.NoError(t, q.SetParams(v(t, 0, 0)))
	f, err := q.GoalFunctionByArgs(v(t, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, f)
}

func TestGoalFunctionByArgsRequiresParams(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	_, err = q.GoalFunctionByArgs(v(t, 1, 1))
	assert.True(t, errors.Is(err, coreerr.ErrWrongProblem))
}

func TestDerivativeOrderZeroIsGoalFunction(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	got, err := q.Derivative(0, 0, ByArgs, v(t, 3, 4), v(t, 0, 0))
	require.NoError(t, err)
	want, err := q.GoalFunction(v(t, 3, 4), v(t, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDerivativeOrderOneGradientByArgs(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	d0, err := q.Derivative(1, 0, ByArgs, v(t, 3, 4), v(t, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 6.0, d0)
	d1, err := q.Derivative(1, 1, ByArgs, v(t, 3, 4), v(t, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 8.0, d1)
}

func TestDerivativeOrderOneGradientByParams(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	d0, err := q.Derivative(1, 0, ByParams, v(t, 0, 0), v(t, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 6.0, d0) // 2*5-4
	d1, err := q.Derivative(1, 1, ByParams, v(t, 0, 0), v(t, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 10.0, d1) // 2*6-2
}

func TestDerivativeOrderTwoIsConstant(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	d, err := q.Derivative(2, 0, ByArgs, v(t, 99, -5), v(t, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
}

func TestDerivativeOrderThreeOrMoreIsZero(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	d, err := q.Derivative(3, 0, ByArgs, v(t, 1, 1), v(t, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDerivativeIndexOutOfRange(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	_, err = q.Derivative(1, 5, ByArgs, v(t, 1, 1), v(t, 0, 0))
	assert.True(t, errors.Is(err, coreerr.ErrOutOfRange))
}

func TestSetArgsRejectsWrongDim(t *testing.T) {
	q, err := NewQuadratic()
	require.NoError(t, err)
	err = q.SetArgs(v(t, 1, 2, 3))
	assert.True(t, errors.Is(err, coreerr.ErrVariablesNumberMismatch))
}
