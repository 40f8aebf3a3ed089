// Package config reads the settings from defaults, an optional config file,
// PASSGEN_* environment variables and command line flags, in increasing priority.
package config

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/passgen/passgen/internal/strength"
)

const (
	// AppName names the application in logs and metrics.
	AppName = "passgen"

	// EnvPrefix is the prefix of all environment overrides.
	EnvPrefix = "PASSGEN"

	// Keys bound to command line flags.
	KeyAttackRate      = "attack_rate"
	KeyPrecision       = "precision"
	KeyFormat          = "format"
	KeyCount           = "count"
	KeyLogLevel        = "log.level"
	KeyMetricsTextfile = "metrics.textfile"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SetDefaults registers the default of every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAttackRate, strength.DefaultAttackRate)
	v.SetDefault(KeyPrecision, strength.DefaultPrecision)
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyCount, 1)

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault("log.reportCaller", false)
	v.SetDefault("log.appName", AppName)
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useConsoleWriter", true)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./log")
	v.SetDefault("log.file.error", "error.log")
	v.SetDefault("log.file.errorMaxSize", 10)
	v.SetDefault("log.file.errorMaxBackups", 3)
	v.SetDefault("log.file.errorMaxAge", 28)
	v.SetDefault("log.file.info", "info.log")
	v.SetDefault("log.file.infoMaxSize", 10)
	v.SetDefault("log.file.infoMaxBackups", 3)
	v.SetDefault("log.file.infoMaxAge", 28)

	v.SetDefault(KeyMetricsTextfile, "")
}

// ReadConfig loads the configuration into v and decodes it.
// Without path, passgen.{toml,yaml,json} is searched in the working directory
// and in $HOME/.config/passgen; a missing file is not an error then.
func ReadConfig(v *viper.Viper, path string) (Config, error) {
	var c Config

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(AppName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/passgen")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("config file loaded")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return c, Validate(&c)
}

// Validate checks every setting against its allowed range.
func Validate(c *Config) error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}
