package errorwrapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	base := errors.New("connection refused")
	wrapped := WrapError(base, "failed to launch browser")

	assert.Equal(t, "failed to launch browser: connection refused", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
}

func TestWrapError_NilError(t *testing.T) {
	wrapped := WrapError(nil, "context")
	assert.Equal(t, "context: <nil>", wrapped.Error())
}

func TestErrSessionUnavailable_MatchableThroughWrap(t *testing.T) {
	base := errors.New("browser launch failed")
	err := NewError("%w: %w", ErrSessionUnavailable, base)

	assert.ErrorIs(t, err, ErrSessionUnavailable)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "session unavailable: browser launch failed", err.Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("base_delay_secs", -1, "must be non-negative")
	assert.Contains(t, err.Error(), "base_delay_secs")
	assert.Contains(t, err.Error(), "must be non-negative")
}

func TestNetworkError_Unwrap(t *testing.T) {
	base := errors.New("dial timeout")
	err := NewNetworkError("https://example.com", "webhook post failed", base)

	assert.Contains(t, err.Error(), "https://example.com")
	assert.ErrorIs(t, err, base)
}
