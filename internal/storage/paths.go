package storage

import (
	"os"
	"path/filepath"
)

// DirEnv overrides the directory holding config, data and logs.
const DirEnv = "RL_HOME"

// Dir returns the rl directory: $RL_HOME or ~/.config/rl.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "rl"), nil
}

// DefaultDataPath returns the JSON data path: ~/.config/rl/bookmarks.json
func DefaultDataPath() (string, error) {
	return inDir("bookmarks.json")
}

// DefaultSQLitePath returns the SQLite database path: ~/.config/rl/bookmarks.db
func DefaultSQLitePath() (string, error) {
	return inDir("bookmarks.db")
}

// DefaultConfigFilePath returns the config path: ~/.config/rl/config.json
func DefaultConfigFilePath() (string, error) {
	return inDir("config.json")
}

// DefaultLogPath returns the log path: ~/.config/rl/rl.log
func DefaultLogPath() (string, error) {
	return inDir("rl.log")
}

func inDir(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
