package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/config"
	dbutil "github.com/llehouerou/mcsounds/internal/db"
	"github.com/llehouerou/mcsounds/internal/errmsg"
	"github.com/llehouerou/mcsounds/internal/logging"
	"github.com/llehouerou/mcsounds/internal/state"
)

// loadConfig reads the config files and applies flag overrides.
func (g *globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if g.database != "" {
		cfg.Database = g.database
	}
	return cfg, nil
}

// consoleLogger is used by the commands that do not own the terminal.
func consoleLogger(cfg *config.Config) zerolog.Logger {
	return logging.Console(cfg.GetLogLevel()).With().Str("component", "cli").Logger()
}

// fileLogger is used while the TUI owns the terminal. When the log file
// cannot be opened logging is disabled.
func fileLogger(cfg *config.Config) (zerolog.Logger, io.Closer) {
	path, err := cfg.GetLogFile()
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil)
	}
	logger, closer, err := logging.File(cfg.GetLogLevel(), path)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil)
	}
	return logger, closer
}

// openState opens the state database, or a private in-memory one when
// ephemeral is set.
func (g *globals) openState(cfg *config.Config, logger zerolog.Logger) (*state.Manager, error) {
	path := cfg.Database
	if g.ephemeral {
		path = dbutil.MemoryPath
	}
	st, err := state.Open(path, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpStateOpen, err)
	}
	return st, nil
}

// loadCatalog reads the configured manifest. A missing or broken manifest
// yields an empty catalog: the app still runs, it just has nothing to play.
func loadCatalog(cfg *config.Config, logger zerolog.Logger) *catalog.Catalog {
	path := cfg.ManifestPath()
	cat, err := catalog.LoadManifest(path)
	if err != nil {
		logger.Warn().Err(err).Str("manifest", path).Msg(errmsg.Format(errmsg.OpCatalogLoad, err))
		return catalog.Empty()
	}
	logger.Debug().Int("sounds", cat.Len()).Str("manifest", path).Msg("catalog loaded")
	return cat
}
