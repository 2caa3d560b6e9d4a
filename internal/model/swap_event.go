package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SwapEvent is a decoded pool Swap emission. Amount0 and Amount1 keep the
// pool's sign convention: positive means the token flowed into the pool,
// negative means the pool paid it out.
type SwapEvent struct {
	Pool         common.Address
	LogIndex     uint64
	Sender       common.Address
	Recipient    common.Address
	Amount0      *big.Int
	Amount1      *big.Int
	SqrtPriceX96 *big.Int
	Liquidity    *big.Int
	Tick         int32
}
