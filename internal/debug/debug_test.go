package debug

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-gui/internal/config"
)

func TestL_BeforeInitIsNop(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	l := L()
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zap.ErrorLevel), "uninitialized logger should be a no-op")
}

func TestInit_JSONConsole(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Init(config.LogConfig{Level: "debug", Format: "json", Name: "gui"}, zapcore.AddSync(&buf))
	Named("layout").Info("solved", zap.Int("nodes", 3))
	Log("value %d", 7)
	require.NoError(t, Close())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "gui.layout", entry["logger"])
	assert.Equal(t, "solved", entry["msg"])
	assert.EqualValues(t, 3, entry["nodes"])

	require.NoError(t, json.Unmarshal(lines[1], &entry))
	assert.Equal(t, "value 7", entry["msg"])
}

func TestInit_LevelFilters(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Init(config.LogConfig{Level: "warn", Format: "console"}, zapcore.AddSync(&buf))
	L().Info("hidden")
	L().Warn("shown")
	require.NoError(t, Close())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitFromEnv_WritesDebugFile(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(EnvDebugFile, path)

	InitFromEnv()
	Log("hello %s", "file")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
