package problem

import (
	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

// Quadratic is the reference problem from spec.md §4.4:
//
//	f(a; p) = a0² + a1² + p0² − 4p0 + p1² − 2p1
//
// with a unique minimizer (0, 0) in args-space and (2, 1) in params-space.
// Grounded on original_source/src/Problem1.cpp.
type Quadratic struct {
	*Base
}

// NewQuadratic builds the reference problem, fixed at dimArgs = dimParams = 2.
func NewQuadratic() (*Quadratic, error) {
	base, err := NewBase(2, 2)
	if err != nil {
		return nil, err
	}
	return &Quadratic{Base: base}, nil
}

func (q *Quadratic) GoalFunction(args, params *vec.Vector) (float64, error) {
	if err := checkVec(args, q.dimArgs); err != nil {
		return 0, err
	}
	if err := checkVec(params, q.dimParams); err != nil {
		return 0, err
	}
	a0, _ := args.GetCoord(0)
	a1, _ := args.GetCoord(1)
	p0, _ := params.GetCoord(0)
	p1, _ := params.GetCoord(1)
	return a0*a0 + a1*a1 + p0*p0 - 4*p0 + p1*p1 - 2*p1, nil
}

func (q *Quadratic) GoalFunctionByArgs(args *vec.Vector) (float64, error) {
	if q.params == nil {
		return 0, coreerr.New(coreerr.WrongProblem, "params not set")
	}
	return q.GoalFunction(args, q.params)
}

func (q *Quadratic) GoalFunctionByParams(params *vec.Vector) (float64, error) {
	if q.args == nil {
		return 0, coreerr.New(coreerr.WrongProblem, "args not set")
	}
	return q.GoalFunction(q.args, params)
}

func (q *Quadratic) Derivative(order, idx int, family Family, args, params *vec.Vector) (float64, error) {
	if order == 0 {
		return q.GoalFunction(args, params)
	}

	var dim int
	switch family {
	case ByArgs:
		if err := checkVec(args, q.dimArgs); err != nil {
			return 0, err
		}
		dim = q.dimArgs
	case ByParams:
		if err := checkVec(params, q.dimParams); err != nil {
			return 0, err
		}
		dim = q.dimParams
	default:
		return 0, coreerr.New(coreerr.WrongArg, "unknown family")
	}
	if idx < 0 || idx >= dim {
		return 0, coreerr.New(coreerr.OutOfRange, "idx out of range for family")
	}

	switch order {
	case 1:
		if family == ByArgs {
			a, _ := args.GetCoord(idx)
			return 2 * a, nil
		}
		p, _ := params.GetCoord(idx)
		if idx == 0 {
			return 2*p - 4, nil
		}
		return 2*p - 2, nil
	case 2:
		return 2, nil
	default:
		return 0, nil
	}
}

func (q *Quadratic) DerivativeByArgs(order, idx int, args *vec.Vector) (float64, error) {
	if q.params == nil {
		return 0, coreerr.New(coreerr.WrongProblem, "params not set")
	}
	return q.Derivative(order, idx, ByArgs, args, q.params)
}

func (q *Quadratic) DerivativeByParams(order, idx int, params *vec.Vector) (float64, error) {
	if q.args == nil {
		return 0, coreerr.New(coreerr.WrongProblem, "args not set")
	}
	return q.Derivative(order, idx, ByParams, q.args, params)
}
