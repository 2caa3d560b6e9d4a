package verify

import (
	"fmt"
	"math/big"

	"swapVerify/internal/model"
)

// ResolveFlow maps a decoded Swap event onto the hop's token identities. The
// pool sign convention is defined here and nowhere else: a positive amount
// flowed into the pool, a negative amount flowed out of it.
func ResolveFlow(hop model.Hop, event model.SwapEvent) (model.HopFlow, error) {
	if event.Amount0 == nil || event.Amount1 == nil {
		return model.HopFlow{}, fmt.Errorf("swap event has nil amounts")
	}

	switch {
	case event.Amount0.Sign() > 0 && event.Amount1.Sign() < 0:
		return model.HopFlow{
			Pool:      hop.Pool,
			TokenIn:   hop.Token0,
			AmountIn:  new(big.Int).Set(event.Amount0),
			TokenOut:  hop.Token1,
			AmountOut: new(big.Int).Abs(event.Amount1),
		}, nil
	case event.Amount1.Sign() > 0 && event.Amount0.Sign() < 0:
		return model.HopFlow{
			Pool:      hop.Pool,
			TokenIn:   hop.Token1,
			AmountIn:  new(big.Int).Set(event.Amount1),
			TokenOut:  hop.Token0,
			AmountOut: new(big.Int).Abs(event.Amount0),
		}, nil
	default:
		return model.HopFlow{}, fmt.Errorf("swap event in pool %s has no in/out flow (amount0=%s amount1=%s)",
			hop.Pool.Hex(), event.Amount0.String(), event.Amount1.String())
	}
}
