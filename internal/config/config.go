// Package config loads rpeek settings from an optional TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	envConfigPath = "RPEEK_CONFIG"
	envFFmpeg     = "RPEEK_FFMPEG"
	envLogFile    = "RPEEK_LOG"
	configDirName = "rpeek"
	configFile    = "config.toml"
)

var userConfigDirFn = os.UserConfigDir

// Config holds every tunable rpeek reads at startup.
type Config struct {
	MaxWidth        int    `toml:"max_width"`
	MaxHeight       int    `toml:"max_height"`
	FrameIntervalMS int    `toml:"frame_interval_ms"`
	FFmpeg          string `toml:"ffmpeg"`
	MaxTextBytes    int64  `toml:"max_text_bytes"`
	HideHidden      bool   `toml:"hide_hidden"`
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxWidth:        700,
		MaxHeight:       500,
		FrameIntervalMS: 30,
		FFmpeg:          "ffmpeg",
		MaxTextBytes:    4 << 20,
		LogLevel:        "info",
	}
}

// Clamp pulls out-of-range values back to usable ones.
func Clamp(cfg *Config) {
	def := DefaultConfig()
	if cfg.MaxWidth < 1 {
		cfg.MaxWidth = def.MaxWidth
	}
	if cfg.MaxHeight < 1 {
		cfg.MaxHeight = def.MaxHeight
	}
	if cfg.FrameIntervalMS < 1 {
		cfg.FrameIntervalMS = def.FrameIntervalMS
	}
	if cfg.FrameIntervalMS > 1000 {
		cfg.FrameIntervalMS = 1000
	}
	if cfg.MaxTextBytes <= 0 {
		cfg.MaxTextBytes = def.MaxTextBytes
	}
	if strings.TrimSpace(cfg.FFmpeg) == "" {
		cfg.FFmpeg = def.FFmpeg
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// FrameInterval is the pause between delivered video frames.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// Path returns the config file location, honoring RPEEK_CONFIG and XDG_CONFIG_HOME.
func Path(getenv func(string) string) (string, error) {
	if p := strings.TrimSpace(getenv(envConfigPath)); p != "" {
		return p, nil
	}
	base := strings.TrimSpace(getenv("XDG_CONFIG_HOME"))
	if base == "" {
		dir, err := userConfigDirFn()
		if err != nil {
			return "", err
		}
		base = dir
	}
	return filepath.Join(base, configDirName, configFile), nil
}

// Load reads the config file (if any) on top of the defaults and applies
// environment overrides. A missing file, or no config directory at all, is
// not an error.
func Load(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	path, err := Path(getenv)
	if err != nil {
		// No config directory (e.g. HOME unset): run on defaults.
		applyEnv(&cfg, getenv)
		Clamp(&cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	applyEnv(&cfg, getenv)
	Clamp(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(envFFmpeg)); v != "" {
		cfg.FFmpeg = v
	}
	if v := strings.TrimSpace(getenv(envLogFile)); v != "" {
		cfg.LogFile = v
	}
}
