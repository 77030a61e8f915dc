package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikbrunner/rl/internal/storage"
	"gotest.tools/v3/assert"
)

func TestLoadConfig_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rl", "config.json")

	cfg, err := storage.LoadConfig(path)

	assert.NilError(t, err)
	assert.DeepEqual(t, *cfg, storage.DefaultConfig())
	_, err = os.Stat(path)
	assert.NilError(t, err, "config file should be written on first load")
}

func TestLoadConfig_AppliesDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{"readLaterFolder":"","backend":"sqlite"}`), 0644))

	cfg, err := storage.LoadConfig(path)

	assert.NilError(t, err)
	assert.Equal(t, cfg.ReadLaterFolder, "Read Later")
	assert.Equal(t, cfg.Backend, storage.BackendSQLite)
	assert.Equal(t, cfg.FetchTitles, true)
	assert.Equal(t, cfg.OperationTimeout(), 10*time.Second)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad json", content: `{`, wantErr: "parse config"},
		{name: "bad backend", content: `{"backend":"redis"}`, wantErr: "unknown storage backend"},
		{name: "bad timeout", content: `{"timeout":"soon"}`, wantErr: "invalid timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			assert.NilError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := storage.LoadConfig(path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_OperationTimeout(t *testing.T) {
	assert.Equal(t, storage.Config{Timeout: "3s"}.OperationTimeout(), 3*time.Second)
	assert.Equal(t, storage.Config{Timeout: ""}.OperationTimeout(), 10*time.Second)
	assert.Equal(t, storage.Config{Timeout: "-1s"}.OperationTimeout(), 10*time.Second)
}

func TestConfigPath_Env(t *testing.T) {
	t.Setenv(storage.ConfigEnv, "/tmp/custom.json")

	path, err := storage.ConfigPath()
	assert.NilError(t, err)
	assert.Equal(t, path, "/tmp/custom.json")
}

func TestDir_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(storage.DirEnv, dir)

	path, err := storage.DefaultLogPath()
	assert.NilError(t, err)
	assert.Equal(t, path, filepath.Join(dir, "rl.log"))
}
