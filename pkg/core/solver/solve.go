package solver

import (
	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/problem"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

func (s *Solver) goalOf(x *vec.Vector) (float64, error) {
	if s.cfg.Mode == problem.ByArgs {
		return s.prob.GoalFunctionByArgs(x)
	}
	return s.prob.GoalFunctionByParams(x)
}

func (s *Solver) gradOf(x *vec.Vector, idx int) (float64, error) {
	if s.cfg.Mode == problem.ByArgs {
		return s.prob.DerivativeByArgs(1, idx, x)
	}
	return s.prob.DerivativeByParams(1, idx, x)
}

// Solve runs the projected-gradient descent described in spec.md §4.5.
// The passive family is bound into the problem once, before the first
// outer iteration (spec.md §9 defect (b)); curr is cloned from the seed
// before iterating, never aliasing the seed itself. On any failure from
// the problem, compact, or vector layer, Solve returns that error and
// leaves curr/prev at the last value they reached.
func (s *Solver) Solve() error {
	if s.prob == nil {
		return coreerr.New(coreerr.WrongProblem, "no problem attached")
	}
	if s.cfg == nil || s.k == nil {
		return coreerr.New(coreerr.WrongArg, "solver not configured")
	}

	var seed *vec.Vector
	if s.cfg.Mode == problem.ByArgs {
		seed = s.cfg.SeedArgs
		if err := s.prob.SetParams(s.cfg.SeedParams); err != nil {
			return err
		}
	} else {
		seed = s.cfg.SeedParams
		if err := s.prob.SetArgs(s.cfg.SeedArgs); err != nil {
			return err
		}
	}

	curr, err := seed.Clone()
	if err != nil {
		return err
	}
	s.curr, s.prev = curr, nil

	d := s.activeDim()
	var prev *vec.Vector

	for outer := 0; outer < maxOuterIterations; outer++ {
		gradCoords := make([]float64, d)
		for i := 0; i < d; i++ {
			g, err := s.gradOf(curr, i)
			if err != nil {
				return err
			}
			gradCoords[i] = g
		}
		grad, err := vec.Create(d, gradCoords)
		if err != nil {
			return err
		}

		fCurr, err := s.goalOf(curr)
		if err != nil {
			return err
		}

		var candidate *vec.Vector
		alpha := 1.0
		for {
			step, err := vec.MultiplyByScalar(grad, alpha)
			if err != nil {
				return err
			}
			trial, err := vec.Subtract(curr, step)
			if err != nil {
				return err
			}
			candidate, err = s.k.GetNearestNeighbor(trial)
			if err != nil {
				return err
			}

			fCand, err := s.goalOf(candidate)
			if err != nil {
				return err
			}
			if fCand < fCurr {
				break
			}

			alpha *= backoffLambda
			if alpha < minAlpha {
				// min-α guard (spec.md §4.5 required addition): accept the
				// last projected candidate rather than loop forever.
				break
			}
		}

		prev = curr
		curr = candidate
		s.curr, s.prev = curr, prev

		eq, err := curr.Eq(prev, vec.LInf, s.cfg.Eps)
		if err != nil {
			return err
		}
		if eq {
			return nil
		}
	}

	return coreerr.New(coreerr.AnyOther, "solve exceeded the max outer iteration cap without converging")
}
