package strength

import (
	"math"
	"math/big"
	"time"

	"github.com/dustin/go-humanize/english"
)

const (
	// SecondsInYear is the length of a 365 day year.
	SecondsInYear = 365 * 24 * 60 * 60

	// AgeOfUniverseYears is the age of the universe, 13.8 billion years.
	AgeOfUniverseYears = 13_800_000_000

	// DefaultPrecision is the number of units a natural duration spans.
	DefaultPrecision = 2
)

// MaxDurationSeconds is the largest number of whole seconds a time.Duration holds.
const MaxDurationSeconds = math.MaxInt64 / int64(time.Second)

var (
	maxDuration   = big.NewInt(MaxDurationSeconds)
	secondsInYear = big.NewInt(SecondsInYear)
	ageOfUniverse = big.NewInt(AgeOfUniverseYears)
)

type unit struct {
	name string
	d    time.Duration
}

var units = []unit{
	{"year", SecondsInYear * time.Second},
	{"week", 7 * 24 * time.Hour},
	{"day", 24 * time.Hour},
	{"hour", time.Hour},
	{"minute", time.Minute},
	{"second", time.Second},
}

// Natural renders d as an approximate phrase such as "3 weeks and 2 days".
// The phrase starts at the largest non-zero unit and covers at most precision
// consecutive units; zero units inside that window are left out.
func Natural(d time.Duration, precision int) string {
	if d < time.Second {
		return "less than a second"
	}

	first := 0
	for d < units[first].d {
		first++
	}

	return english.WordSeries(window(d, first, precision), "and")
}

// window decomposes d, which must be less than units[first-1], into at most
// precision units starting at units[first].
func window(d time.Duration, first, precision int) []string {
	var parts []string

	for i := first; i < len(units) && i-first < max(precision, 1); i++ {
		n := d / units[i].d
		d %= units[i].d

		if n > 0 {
			parts = append(parts, english.Plural(int(n), units[i].name, ""))
		}
	}

	return parts
}

// RenderDuration renders a number of seconds with DefaultPrecision.
func RenderDuration(seconds *big.Int) string {
	return renderDuration(seconds, DefaultPrecision)
}

func renderDuration(seconds *big.Int, precision int) string {
	if seconds.Sign() <= 0 {
		return Natural(0, precision)
	}

	if seconds.Cmp(maxDuration) <= 0 {
		return Natural(time.Duration(seconds.Int64())*time.Second, precision)
	}

	years, rest := new(big.Int).QuoRem(seconds, secondsInYear, new(big.Int))

	if years.Cmp(ageOfUniverse) > 0 {
		multiple := new(big.Int).Quo(years, ageOfUniverse)

		return IntWord(multiple) + " times the age of the universe"
	}

	parts := []string{IntWord(years) + " years"}

	// counts below a million are exact, so the remainder continues the phrase
	// where Natural leaves off at the duration ceiling
	if years.Cmp(million) < 0 && precision > 1 {
		parts = append(parts, window(time.Duration(rest.Int64())*time.Second, 1, precision-1)...)
	}

	return english.WordSeries(parts, "and")
}
