package strength_test

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen/internal/charset"
	"github.com/passgen/passgen/internal/pwgen"
	"github.com/passgen/passgen/internal/strength"
)

// reference computes base^exp by repeated multiplication.
func reference(base, exp int) *big.Int {
	r := big.NewInt(1)
	b := big.NewInt(int64(base))

	for range exp {
		r.Mul(r, b)
	}

	return r
}

func TestSpaceSize(t *testing.T) {
	for _, possible := range []int{1, 10, 26, 52, 72} {
		for _, length := range []int{1, 8, 64, 1000} {
			got, err := strength.SpaceSize(possible, length)
			require.NoError(t, err)
			assert.Equal(t, 0, reference(possible, length).Cmp(got), "%d^%d", possible, length)
		}
	}
}

func TestSpaceSize_Errors(t *testing.T) {
	_, err := strength.SpaceSize(0, 8)
	require.ErrorIs(t, err, strength.ErrNoPossibleChars)

	_, err = strength.SpaceSize(26, 0)
	require.ErrorIs(t, err, strength.ErrInvalidLength)

	_, err = strength.SpaceSizeFor(charset.Selection{}, 8)
	require.ErrorIs(t, err, strength.ErrNoPossibleChars)
}

func TestSpaceSizeFor(t *testing.T) {
	got, err := strength.SpaceSizeFor(charset.Selection{Upper: true}, 8)
	require.NoError(t, err)
	assert.Equal(t, "208827064576", got.String())

	got, err = strength.SpaceSizeFor(charset.Everything(), 1000)
	require.NoError(t, err)
	assert.Equal(t, 0, reference(72, 1000).Cmp(got))
}

func TestEstimator_Estimate(t *testing.T) {
	est, err := strength.NewEstimator(0, 0).Estimate(charset.Selection{Upper: true}, 8)
	require.NoError(t, err)

	assert.Equal(t, 8, est.Length)
	assert.Equal(t, 26, est.PossibleChars)
	assert.Equal(t, "208827064576", est.SpaceSize.String())
	assert.Equal(t, "208", est.CrackSeconds.String())
	assert.Equal(t, "208.8 billion", est.SpaceWords)
	assert.Equal(t, "3 minutes and 28 seconds", est.CrackTime)
	assert.InDelta(t, 37.6, est.EntropyBits, 0.01)
}

func TestEstimator_AttackRateAndPrecision(t *testing.T) {
	est, err := strength.NewEstimator(1000, 1).Estimate(charset.Selection{Numbers: true}, 6)
	require.NoError(t, err)

	// 10^6 / 1000 = 1000 seconds
	assert.Equal(t, "1000", est.CrackSeconds.String())
	assert.Equal(t, "16 minutes", est.CrackTime)
}

func TestEstimator_FloorDivision(t *testing.T) {
	e := strength.NewEstimator(strength.DefaultAttackRate, strength.DefaultPrecision)

	assert.Equal(t, "0", e.CrackSeconds(big.NewInt(999_999_999)).String())
	assert.Equal(t, "1", e.CrackSeconds(big.NewInt(1_999_999_999)).String())
}

func TestEstimator_Magnitudes(t *testing.T) {
	e := strength.NewEstimator(0, 0)

	years, err := e.Estimate(charset.Everything(), 12)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(years.CrackTime, "615,436 years"), years.CrackTime)
	assert.NotContains(t, years.CrackTime, "universe")

	universe, err := e.Estimate(charset.Everything(), 20)
	require.NoError(t, err)
	assert.Contains(t, universe.CrackTime, "times the age of the universe")

	huge, err := e.Estimate(charset.Everything(), 1000)
	require.NoError(t, err)
	assert.Contains(t, huge.CrackTime, "times the age of the universe")
	assert.Contains(t, huge.SpaceWords, "x 10^")
}

func TestEstimator_Errors(t *testing.T) {
	e := strength.NewEstimator(0, 0)

	_, err := e.Estimate(charset.Everything(), 0)
	require.ErrorIs(t, err, strength.ErrInvalidLength)

	_, err = e.Estimate(charset.Everything(), -4)
	require.ErrorIs(t, err, strength.ErrInvalidLength)
}

func TestInvalidLength_SameSentinel(t *testing.T) {
	_, estErr := strength.NewEstimator(0, 0).Estimate(charset.Everything(), 0)
	_, genErr := pwgen.New().GenerateFor(0, charset.Everything())

	for _, err := range []error{estErr, genErr} {
		require.ErrorIs(t, err, charset.ErrInvalidLength)
		require.ErrorIs(t, err, strength.ErrInvalidLength)
		require.ErrorIs(t, err, pwgen.ErrInvalidLength)
	}
}

func TestEstimator_DebugLogsSpaceBits(t *testing.T) {
	var buf bytes.Buffer

	level := zerolog.GlobalLevel()
	logger := log.Logger

	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	_, err := strength.NewEstimator(0, 0).Estimate(charset.Selection{Upper: true}, 8)
	require.NoError(t, err)

	// 26^8 = 208,827,064,576 needs 38 bits
	assert.Contains(t, buf.String(), `"spaceBits":38`)
}
