package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikbrunner/rl/internal/logger"
	"gotest.tools/v3/assert"
)

func TestNewFile_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rl.log")

	log, err := logger.NewFile(path, "debug")
	assert.NilError(t, err)

	log.Info("saved bookmark", logger.String("url", "https://go.dev"))
	log.Debug("loaded bookmarks", logger.Int("count", 3))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	assert.NilError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, len(lines), 2)
	assert.Assert(t, strings.Contains(lines[0], `"url":"https://go.dev"`))
	assert.Assert(t, strings.Contains(lines[1], `"count":3`))
}

func TestNewFile_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rl.log")

	log, err := logger.NewFile(path, "warn")
	assert.NilError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(string(data), "hidden"))
	assert.Assert(t, strings.Contains(string(data), "shown"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := logger.Nop()
	log.Error("ignored", logger.Int("n", 1))
	assert.NilError(t, log.Sync())
}

func TestNew_WritesJSONToWriter(t *testing.T) {
	var buf bytes.Buffer

	log, err := logger.New(&buf, "info", false)
	assert.NilError(t, err)

	log.Debug("hidden")
	log.Info("removed bookmark", logger.String("id", "b1"))
	_ = log.Sync()

	out := buf.String()
	assert.Assert(t, !strings.Contains(out, "hidden"))
	assert.Assert(t, strings.Contains(out, `"msg":"removed bookmark"`))
	assert.Assert(t, strings.Contains(out, `"id":"b1"`))
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer

	log, err := logger.New(&buf, "debug", true)
	assert.NilError(t, err)

	log.Debug("opened environment", logger.String("backend", "json"))
	_ = log.Sync()

	out := buf.String()
	assert.Assert(t, strings.Contains(out, "DEBUG"))
	assert.Assert(t, strings.Contains(out, "opened environment"))
	assert.Assert(t, !strings.HasPrefix(out, "{"))
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := logger.New(&bytes.Buffer{}, "loud", false)
	assert.ErrorContains(t, err, "loud")
}
