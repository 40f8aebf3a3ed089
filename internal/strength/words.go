package strength

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
)

type scale struct {
	exp  int
	name string
}

// scales are the short scale names, ordered by size.
var scales = []scale{
	{6, "million"},
	{9, "billion"},
	{12, "trillion"},
	{15, "quadrillion"},
	{18, "quintillion"},
	{21, "sextillion"},
	{24, "septillion"},
	{27, "octillion"},
	{30, "nonillion"},
	{33, "decillion"},
}

var (
	ten      = big.NewInt(10)
	million  = pow10(scales[0].exp)
	sciLimit = pow10(scales[len(scales)-1].exp + 3)
)

func pow10(exp int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(exp)), nil)
}

// IntWord converts n into a short phrase like "208.8 billion".
// Numbers below one million are comma grouped, numbers past the decillion
// range are written as "2.3 x 10^45". Fractions are truncated, never rounded up.
func IntWord(n *big.Int) string {
	if n.Sign() < 0 {
		return "-" + IntWord(new(big.Int).Neg(n))
	}

	if n.Cmp(million) < 0 {
		return humanize.BigComma(n)
	}

	digits := n.String()
	exp := len(digits) - 1

	if n.Cmp(sciLimit) >= 0 {
		return fmt.Sprintf("%c.%c x 10^%d", digits[0], digits[1], exp)
	}

	s := scales[(exp-scales[0].exp)/3]

	// one decimal place: floor(n * 10 / 10^exp)
	tenths := new(big.Int).Mul(n, ten)
	tenths.Quo(tenths, pow10(s.exp))

	whole, frac := new(big.Int).QuoRem(tenths, ten, new(big.Int))

	return fmt.Sprintf("%d.%d %s", whole, frac, s.name)
}
