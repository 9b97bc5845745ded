package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := output
	output = buf
	t.Cleanup(func() { output = prev })
	return buf
}

func TestLoggerFromContextCarriesRequestId(t *testing.T) {
	buf := captureOutput(t)
	SetupLogging("INFO")

	ctx := CreateContextWithLoggerForRequestId(context.Background(), "abcd1234")
	LoggerFromContext(ctx).Info("encoded %d fields", 13)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "abcd1234", entry["RequestId"])
	require.Equal(t, "encoded 13 fields", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "abcd1234", ctx.Value(RequestIdKey))
}

func TestLoggerFromContextFallback(t *testing.T) {
	require.NotNil(t, LoggerFromContext(context.Background()))
	require.NotNil(t, LoggerFromContext(nil)) //nolint:staticcheck
}

func TestSeverityFiltering(t *testing.T) {
	buf := captureOutput(t)
	SetupLogging("WARN")
	defer SetupLogging("INFO")

	NewLogger().Info("hidden")
	require.Empty(t, buf.String())

	NewLogger().Warn("shown %s", "warning")
	require.Contains(t, buf.String(), "shown warning")
}
