package tabula

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// WorldConfig holds the configuration for a World instance. Values can be set
// via environment variables with the listed defaults.
type WorldConfig struct {
	// Minimum level for world log events.
	LogLevel string `env:"TABULA_LOG_LEVEL" envDefault:"info"`

	// Render log events with zerolog's console writer instead of JSON.
	LogPretty bool `env:"TABULA_LOG_PRETTY" envDefault:"false"`

	// Pre-allocation hint for the entity registry.
	InitialCapacity int `env:"TABULA_INITIAL_CAPACITY" envDefault:"256"`
}

// loadWorldConfig loads the world configuration from environment variables.
func loadWorldConfig() (WorldConfig, error) {
	cfg := WorldConfig{}

	if err := env.Parse(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to parse world config")
	}

	if err := cfg.validate(); err != nil {
		return cfg, eris.Wrap(err, "failed to validate config")
	}

	return cfg, nil
}

// validate performs validation on the loaded configuration.
func (cfg *WorldConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	if cfg.InitialCapacity < 0 {
		return eris.New("initial capacity cannot be negative")
	}
	return nil
}

// logger builds the world logger described by the configuration.
func (cfg *WorldConfig) logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var logger zerolog.Logger
	if cfg.LogPretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
