package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomo/internal/apperr"
)

var errSample = &apperr.Error{
	Message: "%s duration must be between %v and %v",
}

func TestFmtMatchesSentinel(t *testing.T) {
	err := errSample.Fmt("work", 1, 2)

	assert.Equal(t, "work duration must be between 1 and 2", err.Error())
	assert.ErrorIs(t, err, errSample)
}

func TestWrap(t *testing.T) {
	sentinel := &apperr.Error{Message: "reading status file failed"}

	err := sentinel.Wrap(io.EOF)

	assert.Equal(t, "reading status file failed: EOF", err.Error())
	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, sentinel)
	assert.False(t, errors.Is(err, &apperr.Error{Message: "other"}))
}
