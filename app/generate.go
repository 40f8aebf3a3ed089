package app

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/passgen/passgen/internal/pwgen"
	"github.com/passgen/passgen/internal/report"
	"github.com/passgen/passgen/internal/strength"
)

const formatJSON = "json"

func (o *options) generate(cmd *cobra.Command, args []string) error {
	length, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(err, "length %q is not a number", args[0])
	}

	// nothing is printed for an invalid length
	if length < 1 {
		return pwgen.ErrInvalidLength
	}

	var (
		out      = cmd.OutOrStdout()
		jsonMode = o.cfg.Format == formatJSON
		p        = report.New(out, o.quiet || jsonMode, o.noColor)
	)

	p.Header()

	sel, defaulted := o.sel.WithDefaults()
	if defaulted {
		p.DefaultsNotice()
	}

	est, err := strength.NewEstimator(o.cfg.AttackRate, o.cfg.Precision).Estimate(sel, length)
	if err != nil {
		return err
	}

	p.Strength(est)

	gen := pwgen.New()
	passwords := make([]string, 0, o.cfg.Count)

	for range o.cfg.Count {
		pw, err := gen.GenerateFor(length, sel)
		if err != nil {
			return errors.Wrap(err, "failed to generate password")
		}

		passwords = append(passwords, pw)
	}

	log.Info().
		Int("length", length).
		Int("count", len(passwords)).
		Strs("classes", sel.Names()).
		Bool("defaults", defaulted).
		Msg("passwords generated")

	if jsonMode {
		if err := report.JSON(out, report.NewResult(passwords, sel, defaulted, o.cfg.AttackRate, est)); err != nil {
			return err
		}
	} else {
		p.Passwords(passwords)
	}

	o.metrics.Observe(est, len(passwords))

	if o.cfg.Metrics.Textfile != "" {
		return o.metrics.WriteTextfile(o.cfg.Metrics.Textfile)
	}

	return nil
}
