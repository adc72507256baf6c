// Command quadratic is a reference Problem plug-in, built with
// `go build -buildmode=plugin` and loaded by broker.Load. It exports the
// reference quadratic problem from spec.md §4.4.
package main

import (
	"github.com/itohio/gridsolve/pkg/core/broker"
	"github.com/itohio/gridsolve/pkg/core/problem"
)

// GetBrocker is the exported factory symbol spec.md §6 requires every
// shared module to provide.
func GetBrocker() broker.Brocker {
	q, err := problem.NewQuadratic()
	if err != nil {
		return nil
	}
	b, err := broker.NewStatic(broker.KindProblem, q)
	if err != nil {
		return nil
	}
	return b
}

func main() {}
