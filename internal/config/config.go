package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var ErrInvalidMaxMoves = errors.New("max-moves is out of range")

// Config holds the autoplayer settings. cleanenv only applies env-default to zero values, so
// boolean switches default to false.
type Config struct {
	LogLevel   string `yaml:"log-level" env:"CONNECTFOUR_LOG_LEVEL" env-default:"info"`
	Seed       int64  `yaml:"seed" env:"CONNECTFOUR_SEED" env-default:"0"`
	MaxMoves   int    `yaml:"max-moves" env:"CONNECTFOUR_MAX_MOVES" env-default:"42"`
	Quiet      bool   `yaml:"quiet" env:"CONNECTFOUR_QUIET"`
	Color      bool   `yaml:"color" env:"CONNECTFOUR_COLOR"`
	Moves      []int  `yaml:"moves" env:"CONNECTFOUR_MOVES" env-separator:","`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path and applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.MaxMoves < 1 || that.MaxMoves > entity.Capacity {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidMaxMoves, that.MaxMoves, entity.Capacity)
	}

	return nil
}

// HasScript reports whether a fixed sequence of columns was configured.
func (that *Config) HasScript() bool {
	return len(that.Moves) > 0
}
