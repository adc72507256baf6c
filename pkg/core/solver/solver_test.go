package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/problem"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

func mustVec(t *testing.T, coords ...float64) *vec.Vector {
	t.Helper()
	v, err := vec.Create(len(coords), coords)
	require.NoError(t, err)
	return v
}

func TestSolveByArgsConvergesToOrigin(t *testing.T) {
	q, err := problem.NewQuadratic()
	require.NoError(t, err)
	s := New()
	require.NoError(t, s.SetProblem(q))
	require.NoError(t, s.SetParamsString(
		"args:2 params:2 eps:0.0001 pararg:Args a0:3 a1:4 p0:0 p1:0 b0:-10 b1:-10 e0:10 e1:10"))

	require.NoError(t, s.Solve())

	got := mustVec(t, 0, 0)
	require.NoError(t, s.GetSolution(got))
	x0, _ := got.GetCoord(0)
	x1, _ := got.GetCoord(1)
	assert.InDelta(t, 0.0, x0, 0.2)
	assert.InDelta(t, 0.0, x1, 0.2)
}

func TestSolveByParamsConvergesToExpectedMinimizer(t *testing.T) {
	q, err := problem.NewQuadratic()
	require.NoError(t, err)
	s := New()
	require.NoError(t, s.SetProblem(q))
	require.NoError(t, s.SetParamsVector([]float64{2, 2, 0.0001, 0, 0, 0, 0, 0, -10, -10, 10, 10}))

	require.NoError(t, s.Solve())

	got := mustVec(t, 0, 0)
	require.NoError(t, s.GetSolution(got))
	p0, _ := got.GetCoord(0)
	p1, _ := got.GetCoord(1)
	assert.InDelta(t, 2.0, p0, 0.2)
	assert.InDelta(t, 1.0, p1, 0.2)
}

func TestSolveWithoutConfigurationFails(t *testing.T) {
	q, err := problem.NewQuadratic()
	require.NoError(t, err)
	s := New()
	require.NoError(t, s.SetProblem(q))
	err = s.Solve()
	assert.True(t, errors.Is(err, coreerr.ErrWrongArg))
}

func TestSetProblemRejectsDimensionMismatchAfterConfig(t *testing.T) {
	s := New()
	require.NoError(t, s.SetParamsString(
		"args:3 params:2 eps:0.01 pararg:Args a0:0 a1:0 a2:0 p0:0 p1:0 b0:-1 b1:-1 b2:-1 e0:1 e1:1 e2:1"))
	q, err := problem.NewQuadratic()
	require.NoError(t, err)
	assert.True(t, errors.Is(s.SetProblem(q), coreerr.ErrDimensionsMismatch))
}

func TestGetSolutionBeforeSolveFails(t *testing.T) {
	s := New()
	_, err := vec.Create(2, []float64{0, 0})
	require.NoError(t, err)
	out := mustVec(t, 0, 0)
	err = s.GetSolution(out)
	assert.True(t, errors.Is(err, coreerr.ErrWrongProblem))
}

func TestBadConfigLeavesPriorConfigurationIntact(t *testing.T) {
	q, err := problem.NewQuadratic()
	require.NoError(t, err)
	s := New()
	require.NoError(t, s.SetProblem(q))
	require.NoError(t, s.SetParamsString(
		"args:2 params:2 eps:0.0001 pararg:Args a0:3 a1:4 p0:0 p1:0 b0:-10 b1:-10 e0:10 e1:10"))
	prevCfg := s.cfg

	err = s.SetParamsString("args:2 params:2 eps:0.0001 pararg:bogus a0:3 a1:4 p0:0 p1:0 b0:-10 b1:-10 e0:10 e1:10")
	assert.True(t, errors.Is(err, coreerr.ErrWrongArg))
	assert.Same(t, prevCfg, s.cfg)
}
