package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrTerminal,
		ErrMetrics,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "terminal error",
			code:       ErrTerminal,
			message:    "Standard output is not a terminal",
			suggestion: "Run sysmon from an interactive terminal session",
		},
		{
			name:       "metrics error",
			code:       ErrMetrics,
			message:    "Cannot sample CPU utilization",
			suggestion: "Check that /proc is mounted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(cause, "Cannot enumerate disk partitions")

	assert.Equal(t, ErrMetrics, err.Code)
	assert.Equal(t, "Cannot enumerate disk partitions", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("inappropriate ioctl for device")
	err := WrapWithCode(cause, ErrTerminal,
		"Cannot start the dashboard",
		"Run sysmon from an interactive terminal session")

	assert.Equal(t, ErrTerminal, err.Code)
	assert.Equal(t, "Cannot start the dashboard", err.Message)
	assert.Equal(t, "Run sysmon from an interactive terminal session", err.Suggestion)
	assert.Equal(t, cause, err.Cause)
}

func TestError_Format(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := &Error{Code: ErrMetrics, Message: "Something failed"}
		out := err.Error()

		assert.True(t, strings.HasPrefix(out, "✗ Something failed"))
		assert.NotContains(t, out, "\n\n  \n")
	})

	t.Run("with cause and suggestion", func(t *testing.T) {
		err := WrapWithCode(errors.New("root cause"), ErrTerminal,
			"Something failed", "Try this fix")
		out := err.Error()

		assert.Contains(t, out, "✗ Something failed")
		assert.Contains(t, out, "root cause")
		assert.Contains(t, out, "Try this fix")

		// Message comes before cause, cause before suggestion
		mi := strings.Index(out, "Something failed")
		ci := strings.Index(out, "root cause")
		si := strings.Index(out, "Try this fix")
		assert.Less(t, mi, ci)
		assert.Less(t, ci, si)
	})
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(cause, "wrapped")

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		expect bool
	}{
		{"matching code", New(ErrTerminal, "msg", ""), ErrTerminal, true},
		{"non-matching code", New(ErrTerminal, "msg", ""), ErrMetrics, false},
		{"nil error", nil, ErrTerminal, false},
		{"plain error", errors.New("plain"), ErrMetrics, false},
		{"wrapped structured error", Wrap(New(ErrTerminal, "inner", ""), "outer"), ErrMetrics, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsCode(tt.err, tt.code))
		})
	}
}
