// Package solver implements the projected-gradient minimizer described in
// spec.md §4.5, grounded on original_source/src/Solver1.cpp with the three
// source defects from spec.md §9 corrected and the two required additions
// (max-outer-iterations cap, min-α backoff guard) applied.
package solver

import (
	"github.com/itohio/gridsolve/pkg/core/compact"
	"github.com/itohio/gridsolve/pkg/core/config"
	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/problem"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

// maxOuterIterations bounds the outer descent loop; exceeding it is a
// distinct diagnostic rather than an infinite solve. minAlpha bounds the
// inner backoff loop; see DESIGN.md OQ-3 for the accept-last-candidate
// resolution this implementation takes.
const (
	maxOuterIterations = 10000
	minAlpha           = 1e-12
	backoffLambda      = 0.8
)

// Solver is the projected-gradient minimizer (C8 in spec.md's component
// table).
type Solver struct {
	prob problem.Problem
	k    *compact.Compact
	cfg  *config.Config

	curr, prev *vec.Vector
}

// New returns an unconfigured solver.
func New() *Solver {
	return &Solver{}
}

// SetProblem attaches the problem the solver optimizes. If a configuration
// was already committed, the problem's family dimensions must match it.
func (s *Solver) SetProblem(p problem.Problem) error {
	if p == nil {
		return coreerr.New(coreerr.WrongArg, "problem is nil")
	}
	if s.cfg != nil {
		if p.ArgsDim() != s.cfg.DimArgs || p.ParamsDim() != s.cfg.DimParams {
			return coreerr.New(coreerr.DimensionsMismatch, "problem dimensions do not match configuration")
		}
	}
	s.prob = p
	return nil
}

func (s *Solver) activeDim() int {
	if s.cfg.Mode == problem.ByArgs {
		return s.cfg.DimArgs
	}
	return s.cfg.DimParams
}

// SetParamsVector applies the flat numeric configuration form. On any
// failure the solver's prior configuration is left untouched.
func (s *Solver) SetParamsVector(values []float64) error {
	cfg, err := config.ParseVector(values)
	if err != nil {
		return err
	}
	return s.commitConfig(cfg)
}

// SetParamsString applies the textual key:value configuration form. On any
// failure the solver's prior configuration is left untouched.
func (s *Solver) SetParamsString(text string) error {
	cfg, err := config.ParseString(text)
	if err != nil {
		return err
	}
	return s.commitConfig(cfg)
}

func (s *Solver) commitConfig(cfg *config.Config) error {
	if s.prob != nil {
		if cfg.DimArgs != s.prob.ArgsDim() || cfg.DimParams != s.prob.ParamsDim() {
			return coreerr.New(coreerr.DimensionsMismatch, "configuration dimensions do not match problem")
		}
	}

	d := s.activeDimOf(cfg)
	begin, err := slicePrefix(cfg.Begin, d)
	if err != nil {
		return err
	}
	end, err := slicePrefix(cfg.End, d)
	if err != nil {
		return err
	}
	k, err := compact.Create(begin, end, nil)
	if err != nil {
		return err
	}

	// Nothing is assigned to the receiver until every step above succeeded:
	// configuration commits atomically (spec.md §7).
	s.cfg = cfg
	s.k = k
	s.curr = nil
	s.prev = nil
	return nil
}

func (s *Solver) activeDimOf(cfg *config.Config) int {
	if cfg.Mode == problem.ByArgs {
		return cfg.DimArgs
	}
	return cfg.DimParams
}

func slicePrefix(v *vec.Vector, n int) (*vec.Vector, error) {
	coords := make([]float64, n)
	for i := 0; i < n; i++ {
		c, err := v.GetCoord(i)
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}
	return vec.Create(n, coords)
}

// GetSolution copies the last accepted iterate into outV.
func (s *Solver) GetSolution(outV *vec.Vector) error {
	if s.curr == nil {
		return coreerr.New(coreerr.WrongProblem, "solve has not produced an iterate yet")
	}
	dim, data := s.curr.CoordsPtr()
	return outV.SetAllCoords(dim, data)
}

// GetQml returns the (opaque, host-interpreted) parameter-form asset URL.
func (s *Solver) GetQml() string {
	return "qrc:/gridsolve/solver_params.qml"
}

// ActiveFamily reports which family the current configuration solves over.
func (s *Solver) ActiveFamily() problem.Family { return s.cfg.Mode }

// SolutionDim reports the dimension of the active family's solution
// vector, for callers that need to allocate one before GetSolution.
func (s *Solver) SolutionDim() int { return s.activeDim() }

// Compact exposes the configured grid, for callers (such as the plotting
// package) that want to sample around the solution.
func (s *Solver) Compact() *compact.Compact { return s.k }
