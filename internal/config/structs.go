package config

import (
	"github.com/passgen/passgen/internal/logger"
)

// Metrics settings.
type Metrics struct {
	// Textfile is the path of the Prometheus text file written after each run.
	// Empty disables it.
	Textfile string `json:"textfile" mapstructure:"textfile" toml:"textfile"`
}

// Config overall data structure.
type Config struct {
	// AttackRate is the assumed number of guesses per second.
	AttackRate uint64 `json:"attack_rate" mapstructure:"attack_rate" toml:"attack_rate" validate:"gt=0"`

	// Precision is the number of units in the crack time phrase.
	Precision int `json:"precision" mapstructure:"precision" toml:"precision" validate:"min=1,max=6"`

	Format string `json:"format" mapstructure:"format" toml:"format" validate:"oneof=text json"`

	// Count is the number of passwords per run.
	Count int `json:"count" mapstructure:"count" toml:"count" validate:"min=1"`

	Log     logger.Log `json:"log"     mapstructure:"log"     toml:"log"`
	Metrics Metrics    `json:"metrics" mapstructure:"metrics" toml:"metrics"`
}
