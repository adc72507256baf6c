// Package problem defines the goal-function contract a plug-in implements,
// and the reference quadratic problem used in the spec's testable
// properties. Grounded on original_source/src/Problem1.cpp.
package problem

import (
	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

// Family selects which of a problem's two disjoint vector families a
// derivative or goal-function call is taken against.
type Family int

const (
	ByArgs Family = iota
	ByParams
)

// Problem is the goal-function contract a plug-in exposes to a solver.
type Problem interface {
	ArgsDim() int
	ParamsDim() int

	SetArgs(args *vec.Vector) error
	SetParams(params *vec.Vector) error

	GoalFunction(args, params *vec.Vector) (float64, error)
	GoalFunctionByArgs(args *vec.Vector) (float64, error)
	GoalFunctionByParams(params *vec.Vector) (float64, error)

	// Derivative returns the order-th derivative of the goal function with
	// respect to coordinate idx of the chosen family, holding the other
	// family at the supplied value. order 0 returns the function value,
	// order 1 the first partial, order 2 the second partial, order >= 3
	// returns 0.
	Derivative(order, idx int, family Family, args, params *vec.Vector) (float64, error)
	DerivativeByArgs(order, idx int, args *vec.Vector) (float64, error)
	DerivativeByParams(order, idx int, params *vec.Vector) (float64, error)
}

// Base holds the cached args/params a problem implementation stores after
// SetArgs/SetParams, so GoalFunctionByArgs/ByParams can supply the other
// family from cache, matching Problem1's _args/_params fields.
type Base struct {
	dimArgs, dimParams int
	args, params       *vec.Vector
}

// NewBase allocates a Base with the given family dimensions.
func NewBase(dimArgs, dimParams int) (*Base, error) {
	if dimArgs <= 0 || dimParams <= 0 {
		return nil, coreerr.New(coreerr.WrongArg, "dimensions must be positive")
	}
	return &Base{dimArgs: dimArgs, dimParams: dimParams}, nil
}

func (b *Base) ArgsDim() int   { return b.dimArgs }
func (b *Base) ParamsDim() int { return b.dimParams }

// SetArgs clones and stores args.
func (b *Base) SetArgs(args *vec.Vector) error {
	if args == nil {
		return coreerr.New(coreerr.WrongArg, "args is nil")
	}
	if args.Dim() != b.dimArgs {
		return coreerr.New(coreerr.VariablesNumberMismatch, "args has wrong dim")
	}
	clone, err := args.Clone()
	if err != nil {
		return err
	}
	b.args = clone
	return nil
}

// SetParams clones and stores params.
func (b *Base) SetParams(params *vec.Vector) error {
	if params == nil {
		return coreerr.New(coreerr.WrongArg, "params is nil")
	}
	if params.Dim() != b.dimParams {
		return coreerr.New(coreerr.VariablesNumberMismatch, "params has wrong dim")
	}
	clone, err := params.Clone()
	if err != nil {
		return err
	}
	b.params = clone
	return nil
}

// CachedArgs returns the last value SetArgs stored, or nil.
func (b *Base) CachedArgs() *vec.Vector { return b.args }

// CachedParams returns the last value SetParams stored, or nil.
func (b *Base) CachedParams() *vec.Vector { return b.params }

// checkVec validates a family vector against its expected dimension.
func checkVec(v *vec.Vector, dim int) error {
	if v == nil {
		return coreerr.New(coreerr.WrongArg, "vector is nil")
	}
	if v.Dim() != dim {
		return coreerr.New(coreerr.VariablesNumberMismatch, "vector has wrong dim")
	}
	return nil
}
