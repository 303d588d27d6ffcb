package trendwatch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/trendwatch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := trendwatch.Errorf(trendwatch.ENOTFOUND, "report %q not found", "test")

	assert.Equal(t, trendwatch.ENOTFOUND, trendwatch.ErrorCode(err))
	assert.Equal(t, "report \"test\" not found", trendwatch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, trendwatch.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := trendwatch.Errorf(trendwatch.EINVALID, "bad input")
	wrapped := fmt.Errorf("handling request: %w", inner)

	assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(wrapped))
	assert.Equal(t, "bad input", trendwatch.ErrorMessage(wrapped))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("plain error")

	assert.Equal(t, trendwatch.EINTERNAL, trendwatch.ErrorCode(err))
	assert.Equal(t, "Internal error.", trendwatch.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, trendwatch.ErrorMessage(nil))
}
