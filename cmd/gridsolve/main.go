// Command gridsolve is the host shell for the grid-constrained
// projected-gradient minimizer: it loads a problem (built in, or a
// dynamically-loaded plug-in named by a yaml manifest), configures a
// solver from a textual configuration string, runs it to completion, and
// optionally renders a 1-D slice of the goal function around the
// solution. Grounded on itohio-EasyRobot's cmd/manipulator/main.go for
// flag layout and signal-aware shutdown.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/itohio/gridsolve/pkg/core/broker"
	"github.com/itohio/gridsolve/pkg/core/logger"
	"github.com/itohio/gridsolve/pkg/core/problem"
	"github.com/itohio/gridsolve/pkg/core/solver"
	"github.com/itohio/gridsolve/pkg/core/vec"
	"github.com/itohio/gridsolve/pkg/plotting"
)

// Manifest names the shared objects a host may load in place of the
// built-in reference problem/solver.
type Manifest struct {
	Problem string `yaml:"problem"`
	Solver  string `yaml:"solver"`
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func main() {
	configFlag := flag.String("config", "", "solver configuration, textual key:value form")
	manifestFlag := flag.String("manifest", "", "path to a yaml plug-in manifest (problem/solver shared objects)")
	logFlag := flag.String("log", "", "path to the diagnostic log file (empty disables file logging)")
	plotFlag := flag.String("plot", "", "path to write an HTML slice-plot of the goal function (empty disables)")
	plotAxis := flag.Int("plot-axis", 0, "axis index to vary when rendering the slice plot")
	flag.Parse()

	if *logFlag != "" {
		if err := logger.Init(*logFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.WatchSignals()
		defer logger.Close()
	}

	if *configFlag == "" {
		fmt.Fprintln(os.Stderr, "gridsolve: -config is required")
		flag.PrintDefaults()
		os.Exit(2)
	}

	p, s, err := buildComponents(*manifestFlag)
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to build problem/solver")
		os.Exit(1)
	}

	if err := s.SetProblem(p); err != nil {
		logger.Log.Error().Err(err).Msg("setProblem failed")
		os.Exit(1)
	}
	if err := s.SetParamsString(*configFlag); err != nil {
		logger.Log.Error().Err(err).Msg("setParams failed")
		os.Exit(1)
	}
	if err := s.Solve(); err != nil {
		logger.Log.Error().Err(err).Msg("solve failed")
		os.Exit(1)
	}

	out, err := vec.New(s.SolutionDim())
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to allocate solution vector")
		os.Exit(1)
	}
	if err := s.GetSolution(out); err != nil {
		logger.Log.Error().Err(err).Msg("getSolution failed")
		os.Exit(1)
	}

	_, coords := out.CoordsPtr()
	fmt.Println("solution:", coords)

	if *plotFlag != "" {
		if err := renderPlot(p, s, out, *plotFlag, *plotAxis); err != nil {
			logger.Log.Error().Err(err).Msg("plot rendering failed")
			os.Exit(1)
		}
	}
}

// buildComponents resolves the problem and solver either from a yaml
// manifest naming shared objects, or from the in-process reference
// quadratic problem and projected-gradient solver.
func buildComponents(manifestPath string) (problem.Problem, *solver.Solver, error) {
	if manifestPath == "" {
		q, err := problem.NewQuadratic()
		if err != nil {
			return nil, nil, err
		}
		return q, solver.New(), nil
	}

	m, err := loadManifest(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	var p problem.Problem
	if m.Problem != "" {
		b, err := broker.Load(m.Problem)
		if err != nil {
			return nil, nil, err
		}
		impl, ok := b.GetInterfaceImpl(broker.KindProblem).(problem.Problem)
		if !ok {
			return nil, nil, fmt.Errorf("gridsolve: %s does not expose a Problem", m.Problem)
		}
		p = impl
	} else {
		p, err = problem.NewQuadratic()
		if err != nil {
			return nil, nil, err
		}
	}

	s := solver.New()
	if m.Solver != "" {
		b, err := broker.Load(m.Solver)
		if err != nil {
			return nil, nil, err
		}
		impl, ok := b.GetInterfaceImpl(broker.KindSolver).(*solver.Solver)
		if !ok {
			return nil, nil, fmt.Errorf("gridsolve: %s does not expose a Solver", m.Solver)
		}
		s = impl
	}

	return p, s, nil
}

func renderPlot(p problem.Problem, s *solver.Solver, solution *vec.Vector, path string, axis int) error {
	samples, err := plotting.SliceAlongAxis(p, s.ActiveFamily(), solution, s.Compact(), axis)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return plotting.RenderLine("gridsolve solution neighborhood", samples, f)
}
