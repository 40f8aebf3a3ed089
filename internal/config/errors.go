package config

import (
	"errors"
)

var (
	// ErrInvalidConfig is returned if a setting is out of its allowed range.
	ErrInvalidConfig = errors.New("invalid config")
)
