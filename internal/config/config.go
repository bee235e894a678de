package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

const (
	appName = "mcsounds"

	DefaultSequentialGap = 500 * time.Millisecond
	DefaultLogLevel      = "info"
	ManifestFileName     = "manifest.json"
)

type Config struct {
	SoundsDir string `koanf:"sounds_dir"` // directory holding <category>/<sound> files
	Manifest  string `koanf:"manifest"`   // defaults to <sounds_dir>/manifest.json
	Database  string `koanf:"database"`   // defaults to the XDG data dir

	LogLevel string `koanf:"log_level"` // trace, debug, info, warn, error
	LogFile  string `koanf:"log_file"`  // TUI log destination

	SequentialGap string `koanf:"sequential_gap"` // pause between sounds in sequential play, e.g. "500ms"
	Notifications bool   `koanf:"notifications"`  // desktop "now playing" notifications
	MPRIS         *bool  `koanf:"mpris"`          // media key integration (default: true)
	WatchManifest bool   `koanf:"watch_manifest"` // reload the catalog when the manifest changes
	ExportDir     string `koanf:"export_dir"`     // where saved sound copies go (default: XDG download dir)
}

// Load reads the config files in priority order. A non-empty explicit path
// is loaded last and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	if explicit != "" {
		if err := k.Load(file.Provider(expandPath(explicit)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.SoundsDir = expandPath(cfg.SoundsDir)
	cfg.Manifest = expandPath(cfg.Manifest)
	cfg.Database = expandPath(cfg.Database)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.ExportDir = expandPath(cfg.ExportDir)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/mcsounds/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ManifestPath returns the manifest location: the configured one, or
// manifest.json inside the sounds directory.
func (c *Config) ManifestPath() string {
	if c.Manifest != "" {
		return c.Manifest
	}
	if c.SoundsDir != "" {
		return filepath.Join(c.SoundsDir, ManifestFileName)
	}
	return ManifestFileName
}

// GetSequentialGap returns the gap between sequential sounds. Invalid or
// negative values fall back to the default; "0s" disables the gap.
func (c *Config) GetSequentialGap() time.Duration {
	if c.SequentialGap == "" {
		return DefaultSequentialGap
	}
	d, err := time.ParseDuration(c.SequentialGap)
	if err != nil || d < 0 {
		return DefaultSequentialGap
	}
	return d
}

// GetLogLevel returns the configured log level, defaulting to info.
func (c *Config) GetLogLevel() zerolog.Level {
	if c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// GetLogFile returns the log file used while the TUI owns the terminal.
func (c *Config) GetLogFile() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, "mcsounds.log"))
}

// MPRISEnabled reports whether media key integration is on (default: true).
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}
