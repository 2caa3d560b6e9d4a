package quote

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"swapVerify/internal/dex"
	"swapVerify/internal/model"
	"swapVerify/internal/registry"
)

// ContractCaller is the read-only chain access the engine needs.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Engine previews trade outcomes through a QuoterV2 contract. Stateless: each
// quote is one simulation call. Simulation and transport errors propagate to
// the caller unmodified.
type Engine struct {
	caller ContractCaller
	quoter common.Address
	fee    registry.FeeConfig
	logger *zap.Logger
}

// NewEngine validates the fee configuration and builds an Engine.
func NewEngine(caller ContractCaller, quoter common.Address, fee registry.FeeConfig, logger *zap.Logger) (*Engine, error) {
	if caller == nil {
		return nil, fmt.Errorf("contract caller is nil")
	}
	if quoter == (common.Address{}) {
		return nil, fmt.Errorf("quoter address is required")
	}
	if err := registry.ValidateFeeConfig(fee); err != nil {
		return nil, fmt.Errorf("fee config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{caller: caller, quoter: quoter, fee: fee, logger: logger}, nil
}

// ExactInputSingleParams identifies a single-hop trade to preview.
type ExactInputSingleParams struct {
	TokenIn  common.Address
	TokenOut common.Address
	Fee      uint32
	AmountIn *big.Int
}

// QuoteExactInputSingle simulates a single-hop exact-input trade. A zero
// amountIn returns a zero quote without touching the chain.
func (e *Engine) QuoteExactInputSingle(ctx context.Context, p ExactInputSingleParams) (model.Quote, error) {
	if p.AmountIn == nil || p.AmountIn.Sign() < 0 {
		return model.Quote{}, fmt.Errorf("amount in must be >= 0")
	}
	if p.AmountIn.Sign() == 0 {
		return model.ZeroQuote(), nil
	}

	quoterABI, err := dex.QuoterV2ABI()
	if err != nil {
		return model.Quote{}, err
	}

	params := struct {
		TokenIn           common.Address
		TokenOut          common.Address
		AmountIn          *big.Int
		Fee               *big.Int
		SqrtPriceLimitX96 *big.Int
	}{p.TokenIn, p.TokenOut, p.AmountIn, new(big.Int).SetUint64(uint64(p.Fee)), new(big.Int)}

	data, err := quoterABI.Pack("quoteExactInputSingle", params)
	if err != nil {
		return model.Quote{}, fmt.Errorf("pack quoteExactInputSingle: %w", err)
	}

	resp, err := e.caller.CallContract(ctx, ethereum.CallMsg{To: &e.quoter, Data: data}, nil)
	if err != nil {
		return model.Quote{}, err
	}

	values, err := quoterABI.Unpack("quoteExactInputSingle", resp)
	if err != nil {
		return model.Quote{}, fmt.Errorf("unpack quoteExactInputSingle: %w", err)
	}
	if len(values) != 4 {
		return model.Quote{}, fmt.Errorf("unexpected quote values: %d", len(values))
	}

	amountOut, ok := values[0].(*big.Int)
	if !ok {
		return model.Quote{}, fmt.Errorf("unexpected amountOut type %T", values[0])
	}
	sqrtAfter, ok := values[1].(*big.Int)
	if !ok {
		return model.Quote{}, fmt.Errorf("unexpected sqrtPriceX96After type %T", values[1])
	}
	ticksCrossed, ok := values[2].(uint32)
	if !ok {
		return model.Quote{}, fmt.Errorf("unexpected initializedTicksCrossed type %T", values[2])
	}
	gasEstimate, ok := values[3].(*big.Int)
	if !ok {
		return model.Quote{}, fmt.Errorf("unexpected gasEstimate type %T", values[3])
	}

	feeAmount, userReceives := SplitFee(amountOut, e.fee.Bips)
	return model.Quote{
		AmountOut:               amountOut,
		SqrtPriceX96After:       sqrtAfter,
		InitializedTicksCrossed: ticksCrossed,
		GasEstimate:             gasEstimate,
		FeeAmount:               feeAmount,
		UserReceives:            userReceives,
		PriceImpactPct:          "0",
	}, nil
}

// QuoteExactInput simulates a multi-hop exact-input trade over an encoded
// path. The quoter returns per-hop lists; the final sqrtPriceX96 and the sum
// of crossed ticks describe the whole route.
func (e *Engine) QuoteExactInput(ctx context.Context, path []byte, amountIn *big.Int) (model.Quote, error) {
	if amountIn == nil || amountIn.Sign() < 0 {
		return model.Quote{}, fmt.Errorf("amount in must be >= 0")
	}
	if amountIn.Sign() == 0 {
		return model.ZeroQuote(), nil
	}
	if len(path) == 0 {
		return model.Quote{}, fmt.Errorf("path is required")
	}

	quoterABI, err := dex.QuoterV2ABI()
	if err != nil {
		return model.Quote{}, err
	}

	data, err := quoterABI.Pack("quoteExactInput", path, amountIn)
	if err != nil {
		return model.Quote{}, fmt.Errorf("pack quoteExactInput: %w", err)
	}

	resp, err := e.caller.CallContract(ctx, ethereum.CallMsg{To: &e.quoter, Data: data}, nil)
	if err != nil {
		return model.Quote{}, err
	}

	values, err := quoterABI.Unpack("quoteExactInput", resp)
	if err != nil {
		return model.Quote{}, fmt.Errorf("unpack quoteExactInput: %w", err)
	}
	if len(values) != 4 {
		return model.Quote{}, fmt.Errorf("unexpected quote values: %d", len(values))
	}

	amountOut, ok := values[0].(*big.Int)
	if !ok {
		return model.Quote{}, fmt.Errorf("unexpected amountOut type %T", values[0])
	}
	sqrtAfterList, ok := values[1].([]*big.Int)
	if !ok {
		return model.Quote{}, fmt.Errorf("unexpected sqrtPriceX96AfterList type %T", values[1])
	}
	ticksCrossedList, ok := values[2].([]uint32)
	if !ok {
		return model.Quote{}, fmt.Errorf("unexpected initializedTicksCrossedList type %T", values[2])
	}
	gasEstimate, ok := values[3].(*big.Int)
	if !ok {
		return model.Quote{}, fmt.Errorf("unexpected gasEstimate type %T", values[3])
	}

	sqrtAfter := new(big.Int)
	if len(sqrtAfterList) > 0 {
		sqrtAfter = sqrtAfterList[len(sqrtAfterList)-1]
	}
	var totalTicks uint32
	for _, crossed := range ticksCrossedList {
		totalTicks += crossed
	}

	feeAmount, userReceives := SplitFee(amountOut, e.fee.Bips)
	return model.Quote{
		AmountOut:               amountOut,
		SqrtPriceX96After:       sqrtAfter,
		InitializedTicksCrossed: totalTicks,
		GasEstimate:             gasEstimate,
		FeeAmount:               feeAmount,
		UserReceives:            userReceives,
		PriceImpactPct:          "0",
	}, nil
}

// QuotePair previews a trade over a configured pair. Single-hop quotes read
// the pool's slot0 first and report price impact; multi-hop price impact is
// reported as zero.
func (e *Engine) QuotePair(ctx context.Context, pair model.TradingPair, direction model.Direction, amountIn *big.Int) (model.Quote, error) {
	tokens, err := pair.PathTokens()
	if err != nil {
		return model.Quote{}, err
	}
	fees := make([]uint32, len(pair.Hops))
	for i, hop := range pair.Hops {
		fees[i] = hop.Fee
	}

	if direction == model.DirectionBToA {
		reverse(tokens)
		reverseFees(fees)
	}

	if len(pair.Hops) == 1 {
		sqrtBefore, err := e.poolSqrtPrice(ctx, pair.Hops[0].Pool)
		if err != nil {
			return model.Quote{}, err
		}

		q, err := e.QuoteExactInputSingle(ctx, ExactInputSingleParams{
			TokenIn:  tokens[0],
			TokenOut: tokens[1],
			Fee:      fees[0],
			AmountIn: amountIn,
		})
		if err != nil {
			return model.Quote{}, err
		}
		if q.AmountOut.Sign() > 0 {
			q.PriceImpactPct = PriceImpactPct(sqrtBefore, q.SqrtPriceX96After)
		}
		return q, nil
	}

	path, err := EncodePath(tokens, fees)
	if err != nil {
		return model.Quote{}, err
	}
	return e.QuoteExactInput(ctx, path, amountIn)
}

func (e *Engine) poolSqrtPrice(ctx context.Context, pool common.Address) (*big.Int, error) {
	poolABI, err := dex.V3PoolABI()
	if err != nil {
		return nil, err
	}
	data, err := poolABI.Pack("slot0")
	if err != nil {
		return nil, fmt.Errorf("pack slot0: %w", err)
	}
	resp, err := e.caller.CallContract(ctx, ethereum.CallMsg{To: &pool, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call slot0: %w", err)
	}
	values, err := poolABI.Unpack("slot0", resp)
	if err != nil {
		return nil, fmt.Errorf("unpack slot0: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("empty slot0 response")
	}
	sqrtPrice, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected sqrtPriceX96 type %T", values[0])
	}
	return sqrtPrice, nil
}

func reverse(tokens []common.Address) {
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
}

func reverseFees(fees []uint32) {
	for i, j := 0, len(fees)-1; i < j; i, j = i+1, j-1 {
		fees[i], fees[j] = fees[j], fees[i]
	}
}
