package strength

import (
	"math"
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/passgen/passgen/internal/charset"
)

// DefaultAttackRate is the assumed number of guesses per second.
const DefaultAttackRate = 1_000_000_000

// SpaceSize returns possibleChars^length.
func SpaceSize(possibleChars, length int) (*big.Int, error) {
	if possibleChars < 1 {
		return nil, ErrNoPossibleChars
	}

	if length < 1 {
		return nil, ErrInvalidLength
	}

	return new(big.Int).Exp(big.NewInt(int64(possibleChars)), big.NewInt(int64(length)), nil), nil
}

// SpaceSizeFor returns the number of passwords of the given length sel can produce.
func SpaceSizeFor(sel charset.Selection, length int) (*big.Int, error) {
	return SpaceSize(sel.Size(), length)
}

// Estimate describes the brute force resistance of a password space.
type Estimate struct {
	Length        int
	PossibleChars int
	SpaceSize     *big.Int
	CrackSeconds  *big.Int
	EntropyBits   float64

	SpaceWords string // SpaceSize as words
	CrackTime  string // CrackSeconds as natural language
}

// Estimator computes estimates for a fixed attack rate.
type Estimator struct {
	attackRate *big.Int
	precision  int
}

// NewEstimator returns an Estimator. Zero values fall back to DefaultAttackRate
// and DefaultPrecision.
func NewEstimator(attackRate uint64, precision int) *Estimator {
	if attackRate == 0 {
		attackRate = DefaultAttackRate
	}

	if precision < 1 {
		precision = DefaultPrecision
	}

	return &Estimator{
		attackRate: new(big.Int).SetUint64(attackRate),
		precision:  precision,
	}
}

// CrackSeconds returns space divided by the attack rate, rounded down.
func (e *Estimator) CrackSeconds(space *big.Int) *big.Int {
	return new(big.Int).Quo(space, e.attackRate)
}

// Duration renders seconds as a phrase.
func (e *Estimator) Duration(seconds *big.Int) string {
	return renderDuration(seconds, e.precision)
}

// Estimate computes the estimate for passwords of the given length built from sel.
func (e *Estimator) Estimate(sel charset.Selection, length int) (Estimate, error) {
	space, err := SpaceSizeFor(sel, length)
	if err != nil {
		return Estimate{}, err
	}

	possible := sel.Size()
	seconds := e.CrackSeconds(space)

	est := Estimate{
		Length:        length,
		PossibleChars: possible,
		SpaceSize:     space,
		CrackSeconds:  seconds,
		EntropyBits:   float64(length) * math.Log2(float64(possible)),
		SpaceWords:    IntWord(space),
		CrackTime:     e.Duration(seconds),
	}

	log.Debug().
		Int("length", length).
		Int("possibleChars", possible).
		Int("spaceBits", space.BitLen()).
		Str("crackTime", est.CrackTime).
		Msg("estimated password strength")

	return est, nil
}
