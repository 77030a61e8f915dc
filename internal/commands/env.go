package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fatih/color"

	"github.com/nikbrunner/rl/internal/logger"
	"github.com/nikbrunner/rl/internal/readlater"
	"github.com/nikbrunner/rl/internal/storage"
	"github.com/nikbrunner/rl/internal/tab"
)

const titleFetchTimeout = 5 * time.Second

// env is everything a command needs, opened from the config.
type env struct {
	cfg     *storage.Config
	host    *storage.Host
	service *readlater.Service
	titles  *tab.TitleFetcher // nil when title fetching is disabled
	log     logger.Logger
}

// openEnv loads the config, opens the logger and the configured backend.
// stderr receives logs when --log-level is set, it is nil for the interactive
// list which owns the terminal. tabs may be nil for commands that never save
// the current tab.
func openEnv(gopts *globalOptions, stderr io.Writer, tabs func(*tab.TitleFetcher) readlater.TabQuery) (*env, error) {
	path := gopts.ConfigPath
	if path == "" {
		var err error
		if path, err = storage.ConfigPath(); err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
	}

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	log, err := openLogger(gopts, stderr, cfg)
	if err != nil {
		return nil, err
	}

	backend, err := storage.OpenStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	host := storage.NewHost(backend)

	var titles *tab.TitleFetcher
	if cfg.FetchTitles {
		titles = tab.NewTitleFetcher(&http.Client{Timeout: titleFetchTimeout}, log)
	}

	var query readlater.TabQuery
	if tabs != nil {
		query = tabs(titles)
	}

	log.Debug("opened environment", logger.String("config", path), logger.String("backend", fmt.Sprintf("%T", backend)))

	return &env{
		cfg:  cfg,
		host: host,
		service: readlater.NewService(readlater.ServiceParams{
			Store:      host,
			Tabs:       query,
			FolderName: cfg.ReadLaterFolder,
			Logger:     log,
		}),
		titles: titles,
		log:    log,
	}, nil
}

func openLogger(gopts *globalOptions, stderr io.Writer, cfg *storage.Config) (logger.Logger, error) {
	if gopts.LogLevel != "" && stderr != nil {
		log, err := logger.New(stderr, gopts.LogLevel, !color.NoColor)
		if err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		return log, nil
	}

	if logPath, err := storage.DefaultLogPath(); err == nil {
		if l, err := logger.NewFile(logPath, cfg.LogLevel); err == nil {
			return l, nil
		}
	}
	return logger.Nop(), nil
}

// opContext returns a context bounded by the configured operation timeout.
func (e *env) opContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, e.cfg.OperationTimeout())
}

func (e *env) Close() error {
	_ = e.log.Sync()
	return e.host.Close()
}
