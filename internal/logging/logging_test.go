package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewWithWriter_DebugDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false)

	logger.Debug("running command", zap.String("command", "docker"))
	assert.Equal(t, 0, buf.Len())

	logger.Info("ready")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "ready")
}

func TestNewWithWriter_DebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, true)

	logger.Debug("running command", zap.String("command", "docker"))
	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "running command")
	assert.Contains(t, out, `"command": "docker"`)
}
