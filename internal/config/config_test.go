package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen/internal/logger"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := ReadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, uint64(1_000_000_000), cfg.AttackRate)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, "warn", cfg.Log.LogLevel)
	assert.Equal(t, AppName, cfg.Log.AppName)
	assert.True(t, cfg.Log.Console.Enabled)
	assert.False(t, cfg.Log.File.Enabled)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestReadConfig_File(t *testing.T) {
	path := writeConfig(t, "passgen.toml", `
attack_rate = 1000
precision = 3
format = "json"

[log]
level = "debug"

[log.file]
enabled = true
path = "/tmp/passgen"

[metrics]
textfile = "/var/lib/node_exporter/passgen.prom"
`)

	cfg, err := ReadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), cfg.AttackRate)
	assert.Equal(t, 3, cfg.Precision)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.Log.LogLevel)
	assert.True(t, cfg.Log.File.Enabled)
	assert.Equal(t, "/tmp/passgen", cfg.Log.File.Path)
	assert.Equal(t, "info.log", cfg.Log.File.InfoLog)
	assert.Equal(t, "/var/lib/node_exporter/passgen.prom", cfg.Metrics.Textfile)
}

func TestReadConfigWithEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PASSGEN_ATTACK_RATE", "42")
	t.Setenv("PASSGEN_LOG_LEVEL", "error")

	cfg, err := ReadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.AttackRate)
	assert.Equal(t, "error", cfg.Log.LogLevel)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestReadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, "passgen.toml", `format = "xml"`)

	_, err := ReadConfig(viper.New(), path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigValidation(t *testing.T) {
	valid := func() Config {
		return Config{
			AttackRate: 1,
			Precision:  2,
			Format:     "text",
			Count:      1,
			Log:        logger.Log{LogLevel: "info", AppName: AppName},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid config", func(_ *Config) {}, false},
		{"empty log level", func(c *Config) { c.Log.LogLevel = "" }, false},
		{"zero attack rate", func(c *Config) { c.AttackRate = 0 }, true},
		{"zero precision", func(c *Config) { c.Precision = 0 }, true},
		{"precision too high", func(c *Config) { c.Precision = 7 }, true},
		{"unknown format", func(c *Config) { c.Format = "yaml" }, true},
		{"zero count", func(c *Config) { c.Count = 0 }, true},
		{"unknown log level", func(c *Config) { c.Log.LogLevel = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := Validate(&c)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		AttackRate: 1000,
		Precision:  2,
		Format:     "text",
		Count:      1,
		Metrics:    Metrics{Textfile: "passgen.prom"},
	}

	tomlStr, err := DumpConfig(&cfg)
	require.NoError(t, err)

	assert.Contains(t, tomlStr, "attack_rate = 1000")
	assert.Contains(t, tomlStr, "[metrics]")
	assert.True(t, strings.Contains(tomlStr, "textfile = 'passgen.prom'") ||
		strings.Contains(tomlStr, `textfile = "passgen.prom"`), tomlStr)
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{AttackRate: 1000, Format: "json"}

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)

	assert.Contains(t, jsonStr, `"attack_rate": 1000`)
	assert.Contains(t, jsonStr, `"format": "json"`)
}
