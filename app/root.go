// Package app implements the command line interface.
package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/passgen/passgen/internal/charset"
	"github.com/passgen/passgen/internal/config"
	"github.com/passgen/passgen/internal/logger"
	"github.com/passgen/passgen/internal/metrics"
	"github.com/passgen/passgen/internal/strength"
)

// options carries flags and the loaded configuration of one invocation.
type options struct {
	configPath string
	quiet      bool
	noColor    bool
	sel        charset.Selection

	v       *viper.Viper
	cfg     config.Config
	metrics *metrics.Metrics
}

// flagKeys maps config keys to the flags overriding them.
var flagKeys = map[string]string{ //nolint:gochecknoglobals
	config.KeyAttackRate:      "attack-rate",
	config.KeyPrecision:       "precision",
	config.KeyFormat:          "format",
	config.KeyCount:           "count",
	config.KeyLogLevel:        "log-level",
	config.KeyMetricsTextfile: "metrics-file",
}

// NewRootCmd builds the passgen command tree.
func NewRootCmd() *cobra.Command {
	o := &options{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "passgen <length>",
		Short: "passgen generates a random password with the given length and parameters",
		Long: `passgen generates a random password from upper case letters, lower case letters,
numbers and symbols using a cryptographically secure random source, and estimates
how long a brute force attack against it would take.

Without any of -u, -l, -n or -s all four character classes are used.`,
		Example: `  passgen 16
  passgen 24 -l -n
  passgen 32 -q | pbcopy
  passgen 12 -c 5 --format json`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.setup,
		RunE:              o.generate,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "config file (default ./passgen.toml or $HOME/.config/passgen/passgen.toml)")
	pf.String("log-level", "warn", "log level: trace, debug, info, warn, error or disabled")
	pf.String("metrics-file", "", "write Prometheus metrics to this file")
	pf.BoolVar(&o.noColor, "no-color", false, "disable coloured output")

	f := rootCmd.Flags()
	f.BoolVarP(&o.sel.Upper, "upper-case", "u", false, "include upper case characters")
	f.BoolVarP(&o.sel.Lower, "lower-case", "l", false, "include lower case characters")
	f.BoolVarP(&o.sel.Numbers, "numbers", "n", false, "include numbers")
	f.BoolVarP(&o.sel.Symbols, "symbols", "s", false, "include symbols")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "only print the password")
	f.IntP("count", "c", 1, "number of passwords to generate")
	f.String("format", "text", "output format: text or json")
	f.Uint64("attack-rate", strength.DefaultAttackRate, "assumed brute force guesses per second")
	f.Int("precision", strength.DefaultPrecision, "number of time units in the crack time estimate")

	rootCmd.AddCommand(newConfigCmd(o))

	return rootCmd
}

// setup loads the configuration and initialises logging and metrics.
func (o *options) setup(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(o.v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.ReadConfig(o.v, o.configPath)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.metrics = metrics.New(cfg.Log.AppName)

	return logger.Init(cfg.Log, logger.NewPrometheusHook(o.metrics.LogStatements))
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", name)
		}
	}

	return nil
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	cmd := NewRootCmd()

	err := cmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Error: %s", err))
	}

	return err
}
