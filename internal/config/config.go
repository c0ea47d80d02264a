// Package config resolves client configuration from the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config carries everything the client needs to start. Values come from
// the environment; see the env tags for variable names.
type Config struct {
	// BaseURL is the fixed prefix of every service endpoint.
	BaseURL string `env:"LEAGUE_BASE_URL" envDefault:"http://localhost:8080/api"`

	// TokenFile is the durable slot holding the session token. Empty
	// resolves to a file under the user config directory.
	TokenFile string `env:"LEAGUE_TOKEN_FILE"`

	LogLevel string `env:"LEAGUE_LOG_LEVEL" envDefault:"info"`
	AppName  string `env:"LEAGUE_APP_NAME" envDefault:"San League"`
}

// New parses the environment and fills in derived defaults.
func New() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "config.New parse environment")
	}
	if cfg.TokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, errors.Wrap(err, "config.New resolve user config dir")
		}
		cfg.TokenFile = filepath.Join(dir, "san-league", "token")
	}
	return cfg, nil
}

// ZerologLevel maps LogLevel onto a zerolog level, defaulting to info on
// anything unrecognised.
func (c Config) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
