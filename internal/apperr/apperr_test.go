package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{Message: "timer %d not found"}

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt(3)

	assert.Equal(t, "timer 3 not found", err.Error())
	assert.True(t, errors.Is(err, errTemplate))
	assert.Equal(t, "timer %d not found", errTemplate.Message)
}

func TestWrap(t *testing.T) {
	err := errTemplate.Fmt(7).Wrap(io.EOF)

	assert.Equal(t, "timer 7 not found: EOF", err.Error())
	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, errors.Is(err, errTemplate))
}

func TestIsDistinguishesTemplates(t *testing.T) {
	other := &Error{Message: "something else"}

	assert.False(t, errors.Is(errTemplate.Fmt(1), other))
}
