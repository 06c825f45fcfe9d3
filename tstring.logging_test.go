package tstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func loginTemplate() Template {
	return MustNew(
		"User ", NewInterpolation("alice", "user"),
		" logged in from ", NewInterpolation("10.0.0.1", "ip"),
	)
}

func TestTemplateMessage_Message(t *testing.T) {
	msg := NewTemplateMessage(loginTemplate())

	rendered, err := msg.Message()
	require.NoError(t, err)
	assert.Equal(t, "User alice logged in from 10.0.0.1", rendered)
}

func TestTemplateMessage_Values(t *testing.T) {
	msg := NewTemplateMessage(loginTemplate())

	values := msg.Values()
	assert.Equal(t, map[string]any{
		"user": "alice",
		"ip":   "10.0.0.1",
	}, values)
}

func TestTemplateMessage_Fields(t *testing.T) {
	msg := NewTemplateMessage(loginTemplate())

	fields := msg.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "user", fields[0].Key)
	assert.Equal(t, "ip", fields[1].Key)
}

func TestTemplateMessage_MarshalLogObject(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	logger.Info("login", zap.Object("event", NewTemplateMessage(loginTemplate())))

	entries := logs.All()
	require.Len(t, entries, 1)

	event, ok := entries[0].ContextMap()["event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "User alice logged in from 10.0.0.1", event[LogFieldMessage])

	values, ok := event[LogFieldValues].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", values["user"])
	assert.Equal(t, "10.0.0.1", values["ip"])
}

func TestTemplateMessage_StringFallsBackOnError(t *testing.T) {
	// A bad format spec makes Message fail; String must still return
	// something usable.
	tmpl := MustNew(NewInterpolation("x", "x").WithFormatSpec("zz"))
	msg := NewTemplateMessage(tmpl)

	_, err := msg.Message()
	require.Error(t, err)
	assert.Contains(t, msg.String(), "Interpolation")
}

func TestTemplateMessage_TemplateAccessor(t *testing.T) {
	tmpl := loginTemplate()
	msg := NewTemplateMessage(tmpl)
	assert.Equal(t, tmpl.String(), msg.Template().String())
}
