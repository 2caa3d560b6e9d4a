package verify

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"swapVerify/internal/model"
)

// ErrRouteMismatch reports that the decoded per-hop flows do not form the
// declared route. Touching the right pools is not enough: each hop must move
// the expected token in the expected direction.
var ErrRouteMismatch = errors.New("reconstructed route does not match declared direction")

// ReconstructRoute chains the decoded swaps along the pair's hops in the
// traversal order implied by direction. Each hop must have at least one event
// whose resolved flow matches the expected tokenIn/tokenOut for its position;
// amounts are summed when a pool swapped more than once in the transaction.
func ReconstructRoute(pair model.TradingPair, direction model.Direction, swapsByPool map[common.Address][]model.SwapEvent) (model.ReconstructedRoute, error) {
	tokens, err := pair.PathTokens()
	if err != nil {
		return model.ReconstructedRoute{}, err
	}

	hops := make([]model.Hop, len(pair.Hops))
	copy(hops, pair.Hops)

	if direction == model.DirectionBToA {
		reverseTokens(tokens)
		reverseHops(hops)
	}

	flows := make([]model.HopFlow, 0, len(hops))
	for i, hop := range hops {
		expectedIn := tokens[i]
		expectedOut := tokens[i+1]

		total := model.HopFlow{
			Pool:      hop.Pool,
			TokenIn:   expectedIn,
			AmountIn:  new(big.Int),
			TokenOut:  expectedOut,
			AmountOut: new(big.Int),
		}

		matched := false
		for _, event := range swapsByPool[hop.Pool] {
			flow, err := ResolveFlow(hop, event)
			if err != nil {
				// No net flow through the pool; not part of a coherent route.
				continue
			}
			if flow.TokenIn != expectedIn || flow.TokenOut != expectedOut {
				continue
			}
			total.AmountIn.Add(total.AmountIn, flow.AmountIn)
			total.AmountOut.Add(total.AmountOut, flow.AmountOut)
			matched = true
		}

		if !matched {
			return model.ReconstructedRoute{}, fmt.Errorf("hop %d (pool %s): %w", i, hop.Pool.Hex(), ErrRouteMismatch)
		}
		flows = append(flows, total)
	}

	return model.ReconstructedRoute{Hops: flows}, nil
}

func reverseTokens(tokens []common.Address) {
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
}

func reverseHops(hops []model.Hop) {
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
}
