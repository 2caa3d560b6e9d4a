package model

import "math/big"

// Quote is the preview of a trade's on-chain outcome plus the platform fee
// split. For multi-hop routes SqrtPriceX96After is the final pool's value and
// InitializedTicksCrossed is summed across hops.
type Quote struct {
	AmountOut               *big.Int
	SqrtPriceX96After       *big.Int
	InitializedTicksCrossed uint32
	GasEstimate             *big.Int
	FeeAmount               *big.Int
	UserReceives            *big.Int
	// PriceImpactPct is a decimal percentage string. Multi-hop quotes report
	// "0": no aggregate multi-hop impact model is computed.
	PriceImpactPct string
}

// ZeroQuote returns the quote for a zero input amount.
func ZeroQuote() Quote {
	return Quote{
		AmountOut:         new(big.Int),
		SqrtPriceX96After: new(big.Int),
		GasEstimate:       new(big.Int),
		FeeAmount:         new(big.Int),
		UserReceives:      new(big.Int),
		PriceImpactPct:    "0",
	}
}
