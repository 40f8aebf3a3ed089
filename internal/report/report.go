// Package report renders the result of a run for humans or machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/passgen/passgen/internal/charset"
	"github.com/passgen/passgen/internal/strength"
)

// Printer writes the report. In quiet mode only the passwords are written.
type Printer struct {
	out   io.Writer
	quiet bool

	bold  func(a ...any) string
	green func(a ...any) string
}

// New returns a Printer writing to out. Colours follow color.NoColor unless noColor is set.
func New(out io.Writer, quiet, noColor bool) *Printer {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	if noColor {
		bold.DisableColor()
		green.DisableColor()
	}

	return &Printer{
		out:   out,
		quiet: quiet,
		bold:  bold.SprintFunc(),
		green: green.SprintFunc(),
	}
}

func (p *Printer) println(a ...any) {
	if !p.quiet {
		_, _ = fmt.Fprintln(p.out, a...)
	}
}

// Header prints the banner.
func (p *Printer) Header() {
	p.println()
	p.println(p.bold("PASSWORD GENERATOR"))
	p.println("==================")
}

// DefaultsNotice tells the user that all character classes were selected for them.
func (p *Printer) DefaultsNotice() {
	p.println("No characters specified. Defaulting to upper case, lower case, numbers, and symbols.")
}

// Strength prints the size of the password space and the crack time estimate.
func (p *Printer) Strength(est strength.Estimate) {
	p.println(fmt.Sprintf(
		"With the given parameters, the generated password is one of %s possible passwords.", est.SpaceWords))
	p.println(fmt.Sprintf(
		"That is about %s bits of entropy.", humanize.FtoaWithDigits(est.EntropyBits, 1)))
	p.println(fmt.Sprintf(
		"It will take an attacker approx. %s to brute force the password.", est.CrackTime))
	p.println("It may be much less with more sophisticated attacks (e.g. rainbow tables).")
	p.println()
}

// Passwords prints the generated passwords. Quiet mode prints one bare password per line.
func (p *Printer) Passwords(passwords []string) {
	if p.quiet {
		for _, pw := range passwords {
			_, _ = fmt.Fprintln(p.out, pw)
		}

		return
	}

	if len(passwords) == 1 {
		p.println("The generated password is: ")
	} else {
		p.println("The generated passwords are: ")
	}

	p.println()

	for _, pw := range passwords {
		p.println(p.green(pw))
	}

	p.println()
}

// Result is the machine readable report.
type Result struct {
	Passwords       []string `json:"passwords"`
	Length          int      `json:"length"`
	Classes         []string `json:"classes"`
	DefaultsApplied bool     `json:"defaults_applied"`

	PossibleChars          int     `json:"possible_chars"`
	PossiblePasswords      string  `json:"possible_passwords"`
	PossiblePasswordsWords string  `json:"possible_passwords_words"`
	AttackRate             uint64  `json:"attack_rate"`
	CrackSeconds           string  `json:"crack_seconds"`
	CrackTime              string  `json:"crack_time"`
	EntropyBits            float64 `json:"entropy_bits"`
}

// NewResult combines the passwords with their estimate. Big numbers are kept
// as decimal strings since JSON numbers can not hold them.
func NewResult(
	passwords []string, sel charset.Selection, defaulted bool, attackRate uint64, est strength.Estimate,
) Result {
	return Result{
		Passwords:              passwords,
		Length:                 est.Length,
		Classes:                sel.Names(),
		DefaultsApplied:        defaulted,
		PossibleChars:          est.PossibleChars,
		PossiblePasswords:      est.SpaceSize.String(),
		PossiblePasswordsWords: est.SpaceWords,
		AttackRate:             attackRate,
		CrackSeconds:           est.CrackSeconds.String(),
		CrackTime:              est.CrackTime,
		EntropyBits:            est.EntropyBits,
	}
}

// JSON writes r as an indented JSON document.
func JSON(out io.Writer, r Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "failed to encode result")
	}

	return nil
}
