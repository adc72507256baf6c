package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/gridsolve/pkg/core/coreerr"
)

func TestInitTruncatesAndWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solver.log")

	require.NoError(t, Init(path))
	defer Close()

	Log.Info().Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestReportReturnsMatchingCode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(filepath.Join(dir, "solver.log")))
	defer Close()

	err := Report(coreerr.WrongArg, "bad input")
	assert.True(t, errors.Is(err, coreerr.ErrWrongArg))
}

func TestCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(filepath.Join(dir, "solver.log")))
	require.NoError(t, Close())
	require.NoError(t, Close())
}
