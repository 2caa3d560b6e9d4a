package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// HopFlow is the resolved economic flow through one hop: which token entered
// the pool, which left, and how much of each.
type HopFlow struct {
	Pool      common.Address
	TokenIn   common.Address
	AmountIn  *big.Int
	TokenOut  common.Address
	AmountOut *big.Int
}

// ReconstructedRoute is the per-hop flow actually executed by a transaction,
// in traversal order for the declared direction. Computed fresh per
// verification call and discarded afterwards.
type ReconstructedRoute struct {
	Hops []HopFlow
}

// AmountIn is the total input at the first hop.
func (r ReconstructedRoute) AmountIn() *big.Int {
	if len(r.Hops) == 0 {
		return new(big.Int)
	}
	return r.Hops[0].AmountIn
}

// AmountOut is the total output at the last hop.
func (r ReconstructedRoute) AmountOut() *big.Int {
	if len(r.Hops) == 0 {
		return new(big.Int)
	}
	return r.Hops[len(r.Hops)-1].AmountOut
}
