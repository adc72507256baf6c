// Package plotting renders a 1-D slice of a problem's goal function (one
// axis varying, the rest held at the solver's solution) to a static HTML
// chart, for the host CLI's "show me the landscape around the solution"
// convenience. Grounded on go-echarts usage in
// JonasLazardGIT-SPRUCE/cmd/analysis/main.go (charts.NewLine,
// SetGlobalOptions, SetXAxis/AddSeries, page.Render).
package plotting

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/itohio/gridsolve/pkg/core/compact"
	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/problem"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

// Sample is one point of a 1-D slice through the goal function.
type Sample struct {
	X float64
	F float64
}

// SliceAlongAxis walks axis idx of k from begin to end at the grid's own
// resolution, evaluating the goal function in the given family with every
// other coordinate held at base.
func SliceAlongAxis(p problem.Problem, family problem.Family, base *vec.Vector, k *compact.Compact, idx int) ([]Sample, error) {
	if base == nil {
		return nil, coreerr.New(coreerr.WrongArg, "base is nil")
	}
	if idx < 0 || idx >= base.Dim() {
		return nil, coreerr.New(coreerr.OutOfRange, "idx out of range")
	}

	count, err := k.AxisSampleCount(idx)
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, count)
	for j := uint64(0); j < count; j++ {
		x, err := k.AxisCoord(idx, j)
		if err != nil {
			return nil, err
		}
		trial, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if err := trial.SetCoord(idx, x); err != nil {
			return nil, err
		}

		var f float64
		if family == problem.ByArgs {
			f, err = p.GoalFunctionByArgs(trial)
		} else {
			f, err = p.GoalFunctionByParams(trial)
		}
		if err != nil {
			return nil, err
		}
		samples = append(samples, Sample{X: x, F: f})
	}
	return samples, nil
}

// RenderLine writes a standalone HTML line chart of samples to w.
func RenderLine(title string, samples []Sample, w io.Writer) error {
	if len(samples) == 0 {
		return coreerr.New(coreerr.WrongArg, "no samples to render")
	}

	xLabels := make([]string, len(samples))
	values := make([]opts.LineData, len(samples))
	for i, s := range samples {
		xLabels[i] = formatFloat(s.X)
		values[i] = opts.LineData{Value: s.F}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xLabels).AddSeries("goal function", values)

	return line.Render(w)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 4, 64)
}
