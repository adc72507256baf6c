// Command gradient is a reference Solver plug-in, built with
// `go build -buildmode=plugin` and loaded by broker.Load. It exports an
// unconfigured projected-gradient solver; the host must SetProblem and
// SetParams* before calling Solve.
package main

import (
	"github.com/itohio/gridsolve/pkg/core/broker"
	"github.com/itohio/gridsolve/pkg/core/solver"
)

// GetBrocker is the exported factory symbol spec.md §6 requires every
// shared module to provide.
func GetBrocker() broker.Brocker {
	s := solver.New()
	b, err := broker.NewStatic(broker.KindSolver, s)
	if err != nil {
		return nil
	}
	return b
}

func main() {}
