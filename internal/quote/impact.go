package quote

import (
	"math/big"
)

// impactScale is the fixed-point precision used for the price ratio. The
// ratio stays in integer arithmetic and only becomes a percentage string at
// the final step.
var impactScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

const impactDecimals = 6

// PriceImpactPct computes |((priceAfter/priceBefore) - 1)| * 100 where
// price = sqrtPriceX96 squared. Returns a decimal percentage string.
func PriceImpactPct(sqrtBefore, sqrtAfter *big.Int) string {
	if sqrtBefore == nil || sqrtBefore.Sign() == 0 || sqrtAfter == nil {
		return "0"
	}

	priceBefore := new(big.Int).Mul(sqrtBefore, sqrtBefore)
	priceAfter := new(big.Int).Mul(sqrtAfter, sqrtAfter)

	diff := new(big.Int).Sub(priceAfter, priceBefore)
	diff.Abs(diff)

	// scaled = |diff| * 1e18 / priceBefore, percent = scaled * 100 / 1e18
	scaled := new(big.Int).Mul(diff, impactScale)
	scaled.Quo(scaled, priceBefore)
	scaled.Mul(scaled, big.NewInt(100))

	pct := new(big.Rat).SetFrac(scaled, impactScale)
	return trimTrailingZeros(pct.FloatString(impactDecimals))
}

func trimTrailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	if i == 0 {
		return "0"
	}
	return s[:i]
}
