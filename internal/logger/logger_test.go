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

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()

	// Must not panic and must not write anywhere
	log.Info().Str("key", "value").Msg("dropped")
	log.Error().Msg("also dropped")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "test").Logger()}

	child := parent.GetChildLogger()
	child.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

func TestFromContext_ReturnsLogger(t *testing.T) {
	var buf bytes.Buffer
	inner := zerolog.New(&buf)
	ctx := inner.WithContext(context.Background())

	log := FromContext(ctx)
	require.NotNil(t, log)

	log.Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")
}
