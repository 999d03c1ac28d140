// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/domain/build"
	"github.com/bnema/tilemux/internal/domain/repository"
	"github.com/bnema/tilemux/internal/infrastructure/config"
	"github.com/bnema/tilemux/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tilemux/internal/infrastructure/telemetry"
	"github.com/bnema/tilemux/internal/logging"
)

const telemetryShutdownTimeout = 3 * time.Second

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Sessions is the ledger of terminal sessions. The database behind it is
	// only opened on first use.
	Sessions  repository.SessionLedger
	Telemetry *telemetry.Telemetry

	db        *sqlite.LazyDB
	logCloser io.Closer

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and creates every CLI dependency.
func NewApp(buildInfo build.Info) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logCfg, err := cfg.LoggerConfig()
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	if buildInfo.Version != "" {
		telemetry.Version = buildInfo.Version
	}
	tel, err := telemetry.Init(ctx, telemetry.Config{
		Endpoint: cfg.Telemetry.Endpoint,
		Headers:  cfg.Telemetry.Headers,
	})
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Str("version", buildInfo.Version).
		Msg("cli initialized")

	return &App{
		Config:    cfg,
		Manager:   mgr,
		Theme:     styles.NewTheme(),
		BuildInfo: buildInfo,
		Sessions:  sqlite.NewLazySessionLedger(db),
		Telemetry: tel,
		db:        db,
		logCloser: logCloser,
		ctx:       ctx,
	}, nil
}

// Close flushes telemetry and releases the database and log file.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
	defer cancel()
	a.Telemetry.Shutdown(ctx)

	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
