package coreerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := Wrap(OutOfRange, "get(5)", errors.New("boom"))
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.False(t, errors.Is(err, ErrWrongArg))
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(WriteToLog, "append", cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestErrorMessageIncludesCode(t *testing.T) {
	err := New(DimensionsMismatch, "add")
	assert.Contains(t, err.Error(), "DimensionsMismatch")
	assert.Contains(t, err.Error(), "add")
}

func TestCodeStringUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", Code(999).String())
}
