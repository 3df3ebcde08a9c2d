package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureEntry redirects l into a buffer, runs emit, and returns the first
// JSON log entry written.
func captureEntry(t *testing.T, l *Logger, emit func(l *Logger)) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)

	emit(l)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestNewLogger(t *testing.T) {
	l := NewLogger("sync-job")
	require.NotNil(t, l)

	entry := captureEntry(t, l, func(l *Logger) { l.Info().Msg("hello") })

	assert.Equal(t, "sync-job", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_ZerologGlobals(t *testing.T) {
	NewLogger("globals")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	parent := NewLogger("parent-role")
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	// the child keeps the parent's fields
	entry := captureEntry(t, child, func(l *Logger) { l.Info().Msg("child") })
	assert.Equal(t, "parent-role", entry["role"])
}

func TestFromContext_Background(t *testing.T) {
	// no logger attached: zerolog hands back its default, never nil
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("user_id", "42").Logger()

	l := FromContext(zl.WithContext(context.Background()))
	require.NotNil(t, l)

	l.Info().Msg("attached")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "42", entry["user_id"])
}
