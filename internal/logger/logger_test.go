package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bethropolis/project2txt/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	_ utils.Logger = (*Logger)(nil)
	_ utils.Logger = (*ZapLogger)(nil)
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"Warn":    LevelWarn,
		"error":   LevelError,
		"off":     LevelNone,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	}
	for input, expected := range tests {
		assert.Equal(t, expected, ParseLevel(input), input)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn, false)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN] shown 3")
	assert.Contains(t, out, "ERROR] shown 4")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestZapLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewZap(&buf, LevelInfo, zap.String("app", "project2txt"))

	l.Debug("dropped")
	l.Info("exported %d files", 3)
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "exported 3 files", entry["msg"])
	assert.Equal(t, "project2txt", entry["app"])
}
