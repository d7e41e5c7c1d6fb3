// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/cli/styles"
	"github.com/koder-native/kterm/internal/domain/build"
	"github.com/koder-native/kterm/internal/domain/repository"
	"github.com/koder-native/kterm/internal/infrastructure/config"
	"github.com/koder-native/kterm/internal/infrastructure/filesystem"
	"github.com/koder-native/kterm/internal/infrastructure/persistence/sessionfile"
	"github.com/koder-native/kterm/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	SessionRepo repository.SessionStateRepository
	FileSystem  port.FileSystem

	// Use cases
	InspectSessionUC *usecase.InspectSessionUseCase

	// Context with logger
	ctx     context.Context
	logFile *logging.LogRotator
}

// NewApp creates a new CLI application with all dependencies. An empty
// configFile uses the XDG location.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.Init(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	// The terminal belongs to the TUI, so logs go to a file.
	logger := zerolog.Nop()
	var logFile *logging.LogRotator
	if logDir, dirErr := config.GetLogDir(); dirErr == nil {
		logFile, err = logging.NewLogRotator(logging.RotatorConfig{
			Dir:        logDir,
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		})
		if err == nil {
			logger = logging.New(logging.Config{
				Level:      logging.ParseLevel(cfg.Logging.Level),
				Format:     cfg.Logging.Format,
				TimeFormat: "15:04:05",
				Output:     logFile,
			})
		}
	}
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.GetConfigFile()).Str("session", cfg.Session.Path).Msg("cli started")

	repo := sessionfile.NewRepository(cfg.Session.Path)
	fs := filesystem.New()

	return &App{
		Config:           cfg,
		ConfigMgr:        mgr,
		Theme:            styles.NewTheme(),
		SessionRepo:      repo,
		FileSystem:       fs,
		InspectSessionUC: usecase.NewInspectSessionUseCase(repo, fs),
		ctx:              ctx,
		logFile:          logFile,
	}, nil
}

// NewID returns a fresh identifier for panes, splits and tabs.
func NewID() string {
	return uuid.NewString()
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
