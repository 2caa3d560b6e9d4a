package quote

import (
	"math/big"

	"swapVerify/internal/registry"
)

// SplitFee divides amountOut into the platform fee and the user share using
// exact integer arithmetic. The fee truncates toward zero, so
// feeAmount + userReceives == amountOut holds for every input.
func SplitFee(amountOut *big.Int, feeBips uint32) (feeAmount, userReceives *big.Int) {
	if amountOut == nil {
		return new(big.Int), new(big.Int)
	}
	feeAmount = new(big.Int).Mul(amountOut, new(big.Int).SetUint64(uint64(feeBips)))
	feeAmount.Quo(feeAmount, big.NewInt(registry.FeeDenominator))
	userReceives = new(big.Int).Sub(amountOut, feeAmount)
	return feeAmount, userReceives
}
