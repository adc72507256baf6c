// Package config parses solver configuration in its two external forms
// (textual key:value tokens and a flat numeric vector), per spec.md §6.
// Grounded on original_source/src/Solver1.cpp's setParams parsing and the
// itohio-EasyRobot plugin option-marshaling convention of validating a
// whole configuration before committing any of it.
package config

import (
	"strconv"
	"strings"

	"github.com/itohio/gridsolve/pkg/core/coreerr"
	"github.com/itohio/gridsolve/pkg/core/problem"
	"github.com/itohio/gridsolve/pkg/core/vec"
)

// Config is a fully parsed, fully validated solver configuration. Begin and
// End have dimension max(DimArgs, DimParams); a solver slices them down to
// the active family's dimension when building its compact (see DESIGN.md
// OQ-2).
type Config struct {
	DimArgs, DimParams int
	Eps                float64
	Mode               problem.Family
	SeedArgs           *vec.Vector
	SeedParams         *vec.Vector
	Begin, End         *vec.Vector
}

func activeDim(dimArgs, dimParams int) int {
	if dimArgs > dimParams {
		return dimArgs
	}
	return dimParams
}

// requiredTokens implements spec.md §6's formula:
// 4 + dimArgs + dimParams + 2*max(dimArgs, dimParams).
func requiredTokens(dimArgs, dimParams int) int {
	return 4 + dimArgs + dimParams + 2*activeDim(dimArgs, dimParams)
}

// ParseString parses the whitespace-separated key:value textual form.
// Any parse or arithmetic-domain failure rejects the whole configuration;
// no partially-built Config is ever returned.
func ParseString(s string) (*Config, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, coreerr.New(coreerr.WrongArg, "configuration has fewer than 4 tokens")
	}

	dimArgs, err := parseKeyedUint(fields[0], "args")
	if err != nil {
		return nil, err
	}
	dimParams, err := parseKeyedUint(fields[1], "params")
	if err != nil {
		return nil, err
	}
	eps, err := parseKeyedPositiveFloat(fields[2], "eps")
	if err != nil {
		return nil, err
	}
	mode, err := parseKeyedMode(fields[3], "pararg")
	if err != nil {
		return nil, err
	}

	d := activeDim(dimArgs, dimParams)
	total := requiredTokens(dimArgs, dimParams)
	if len(fields) != total {
		return nil, coreerr.New(coreerr.WrongArg, "configuration has wrong token count")
	}

	pos := 4
	seedArgsCoords, pos, err := parseValues(fields, pos, dimArgs)
	if err != nil {
		return nil, err
	}
	seedParamsCoords, pos, err := parseValues(fields, pos, dimParams)
	if err != nil {
		return nil, err
	}
	beginCoords, pos, err := parseValues(fields, pos, d)
	if err != nil {
		return nil, err
	}
	endCoords, _, err := parseValues(fields, pos, d)
	if err != nil {
		return nil, err
	}

	return build(dimArgs, dimParams, eps, mode, seedArgsCoords, seedParamsCoords, beginCoords, endCoords)
}

func parseKeyedUint(token, wantKey string) (int, error) {
	key, val, ok := strings.Cut(token, ":")
	if !ok || !strings.EqualFold(key, wantKey) {
		return 0, coreerr.New(coreerr.WrongArg, "expected key "+wantKey)
	}
	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, coreerr.New(coreerr.WrongArg, "expected unsigned integer for "+wantKey)
	}
	return int(n), nil
}

func parseKeyedPositiveFloat(token, wantKey string) (float64, error) {
	key, val, ok := strings.Cut(token, ":")
	if !ok || !strings.EqualFold(key, wantKey) {
		return 0, coreerr.New(coreerr.WrongArg, "expected key "+wantKey)
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f <= 0 {
		return 0, coreerr.New(coreerr.WrongArg, "expected positive real for "+wantKey)
	}
	return f, nil
}

func parseKeyedMode(token, wantKey string) (problem.Family, error) {
	key, val, ok := strings.Cut(token, ":")
	if !ok || !strings.EqualFold(key, wantKey) {
		return 0, coreerr.New(coreerr.WrongArg, "expected key "+wantKey)
	}
	switch {
	case strings.EqualFold(val, "args"):
		return problem.ByArgs, nil
	case strings.EqualFold(val, "params"):
		return problem.ByParams, nil
	default:
		return 0, coreerr.New(coreerr.WrongArg, "pararg must be args or params")
	}
}

func parseValues(fields []string, pos, n int) ([]float64, int, error) {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		_, val, ok := strings.Cut(fields[pos+i], ":")
		if !ok {
			return nil, pos, coreerr.New(coreerr.WrongArg, "expected key:value token")
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, pos, coreerr.New(coreerr.WrongArg, "expected real value")
		}
		out[i] = f
	}
	return out, pos + n, nil
}

// ParseVector parses the flat numeric form:
// [dimArgs, dimParams, eps, flag, args…, params…, begin…, end…], flag 1 =
// args, 0 = params.
func ParseVector(values []float64) (*Config, error) {
	if len(values) < 4 {
		return nil, coreerr.New(coreerr.WrongArg, "vector has fewer than 4 elements")
	}
	if values[0] < 1 || values[0] != float64(int(values[0])) {
		return nil, coreerr.New(coreerr.WrongArg, "dimArgs must be a positive integer")
	}
	if values[1] < 1 || values[1] != float64(int(values[1])) {
		return nil, coreerr.New(coreerr.WrongArg, "dimParams must be a positive integer")
	}
	dimArgs, dimParams := int(values[0]), int(values[1])
	eps := values[2]
	if eps <= 0 {
		return nil, coreerr.New(coreerr.WrongArg, "eps must be positive")
	}
	var mode problem.Family
	switch values[3] {
	case 0:
		mode = problem.ByParams
	case 1:
		mode = problem.ByArgs
	default:
		return nil, coreerr.New(coreerr.WrongArg, "flag must be 0 or 1")
	}

	d := activeDim(dimArgs, dimParams)
	total := requiredTokens(dimArgs, dimParams)
	if len(values) != total {
		return nil, coreerr.New(coreerr.WrongArg, "vector has wrong element count")
	}

	pos := 4
	seedArgsCoords := values[pos : pos+dimArgs]
	pos += dimArgs
	seedParamsCoords := values[pos : pos+dimParams]
	pos += dimParams
	beginCoords := values[pos : pos+d]
	pos += d
	endCoords := values[pos : pos+d]

	return build(dimArgs, dimParams, eps, mode, seedArgsCoords, seedParamsCoords, beginCoords, endCoords)
}

func build(dimArgs, dimParams int, eps float64, mode problem.Family, seedArgsCoords, seedParamsCoords, beginCoords, endCoords []float64) (*Config, error) {
	seedArgs, err := vec.Create(dimArgs, seedArgsCoords)
	if err != nil {
		return nil, err
	}
	seedParams, err := vec.Create(dimParams, seedParamsCoords)
	if err != nil {
		return nil, err
	}
	d := activeDim(dimArgs, dimParams)
	begin, err := vec.Create(d, beginCoords)
	if err != nil {
		return nil, err
	}
	end, err := vec.Create(d, endCoords)
	if err != nil {
		return nil, err
	}
	return &Config{
		DimArgs:    dimArgs,
		DimParams:  dimParams,
		Eps:        eps,
		Mode:       mode,
		SeedArgs:   seedArgs,
		SeedParams: seedParams,
		Begin:      begin,
		End:        end,
	}, nil
}
