package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demoCommand(&buf, 3, 0))
	out := buf.String()

	// Static labels printed once
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("CPU: ")))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Memory: ")))

	// Values rewritten in place each iteration
	assert.Contains(t, out, "0%")
	assert.Contains(t, out, "10%")
	assert.Contains(t, out, "20%")
	assert.Contains(t, out, "2GB")
}

func TestDemoCommand_ZeroIterations(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demoCommand(&buf, 0, 0))

	assert.Contains(t, buf.String(), "CPU: ")
	assert.NotContains(t, buf.String(), "%")
}
