// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Sources   SourcesConfig   `yaml:"sources" mapstructure:"sources"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	UI        UIConfig        `yaml:"ui" mapstructure:"ui"`
	Changelog ChangelogConfig `yaml:"changelog" mapstructure:"changelog"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// SourcesConfig lists the candidate CSV locations, tried in order, and the
// per-host request rate applied to them.
type SourcesConfig struct {
	URLs        []string `yaml:"urls" mapstructure:"urls"`
	TimeoutSecs int      `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string   `yaml:"user_agent" mapstructure:"user_agent"`
	RateLimit   float64  `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst   int      `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// ServerConfig configures the read-only JSON API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// UIConfig holds the initial state of the board view toggles.
type UIConfig struct {
	ShowScoreHighlights bool `yaml:"show_score_highlights" mapstructure:"show_score_highlights"`
	ShowUpdateDots      bool `yaml:"show_update_dots" mapstructure:"show_update_dots"`
}

// ChangelogConfig bounds how far back a summary change counts as recent.
type ChangelogConfig struct {
	WindowDays int `yaml:"window_days" mapstructure:"window_days"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CHESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sources.urls", []string{
		"https://climatechess.org/data/climate-chess.csv",
		"https://raw.githubusercontent.com/climate-chess/data/main/climate-chess.csv",
	})
	v.SetDefault("sources.timeout_secs", 30)
	v.SetDefault("sources.user_agent", "chessboard/1.0")
	v.SetDefault("sources.rate_limit", 5)
	v.SetDefault("sources.rate_burst", 5)
	v.SetDefault("server.port", 8080)
	v.SetDefault("ui.show_score_highlights", true)
	v.SetDefault("ui.show_update_dots", true)
	v.SetDefault("changelog.window_days", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
