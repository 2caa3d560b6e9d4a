package verify

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"swapVerify/internal/dex"
	"swapVerify/internal/model"
	"swapVerify/internal/registry"
)

// ErrChainMismatch reports that the RPC endpoint serves a different chain
// than the registry was built for. A configuration error, not a rejection.
var ErrChainMismatch = errors.New("rpc chain id does not match registry")

// ChainReader is the read-only chain access the strategy needs.
type ChainReader interface {
	GetChainID(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*model.Receipt, error)
}

// Request carries one verification attempt.
type Request struct {
	TaskType        string
	TransactionHash string
	UserID          string
	WalletAddress   string
	TaskConfig      *model.TaskConfig
}

// Strategy decides whether a submitted transaction satisfies a declared swap
// task. Stateless and deterministic: the same finalized receipt always yields
// the same result. Rejections are values carrying a stable code; transport
// failures return as errors so callers can tell "decisively rejected" from
// "could not attempt".
type Strategy struct {
	chain   ChainReader
	routes  *registry.Registry
	decoder *dex.SwapDecoder
	logger  *zap.Logger
}

// NewStrategy builds a Strategy over a chain reader and a route registry.
func NewStrategy(chain ChainReader, routes *registry.Registry, logger *zap.Logger) (*Strategy, error) {
	if chain == nil {
		return nil, fmt.Errorf("chain reader is nil")
	}
	if routes == nil {
		return nil, fmt.Errorf("registry is nil")
	}
	decoder, err := dex.NewSwapDecoder()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Strategy{chain: chain, routes: routes, decoder: decoder, logger: logger}, nil
}

// Verify runs the validation pipeline. Static checks run before any network
// call; sender and router checks run before log decoding so the common
// wrong-transaction case fails fast. The order is load-bearing: pool presence
// alone is exploitable, so route reconstruction always follows it.
func (s *Strategy) Verify(ctx context.Context, req Request) (model.VerificationResult, error) {
	if strings.TrimSpace(req.TransactionHash) == "" {
		return model.Rejected(model.CodeTxHashRequired), nil
	}
	if req.TaskConfig == nil {
		return model.Rejected(model.CodeTaskConfigMissing), nil
	}

	pair, ok := s.routes.Pair(req.TaskConfig.Pair)
	if !ok {
		return model.Rejected(model.CodeInvalidTaskConfig), nil
	}
	direction, err := model.ParseDirection(req.TaskConfig.Direction)
	if err != nil {
		return model.Rejected(model.CodeInvalidTaskConfig), nil
	}
	requiredIn, ok := new(big.Int).SetString(req.TaskConfig.RequiredAmountIn, 10)
	if !ok || requiredIn.Sign() < 0 {
		return model.Rejected(model.CodeInvalidTaskConfig), nil
	}

	chainID, err := s.chain.GetChainID(ctx)
	if err != nil {
		return model.VerificationResult{}, fmt.Errorf("get chain id: %w", err)
	}
	if !chainID.IsUint64() || chainID.Uint64() != s.routes.ChainID() {
		return model.VerificationResult{}, fmt.Errorf("%w: got %s, want %d", ErrChainMismatch, chainID, s.routes.ChainID())
	}

	txHash := common.HexToHash(req.TransactionHash)
	receipt, err := s.chain.TransactionReceipt(ctx, txHash)
	if err != nil {
		return model.VerificationResult{}, fmt.Errorf("fetch receipt %s: %w", txHash.Hex(), err)
	}
	if receipt == nil {
		return model.Rejected(model.CodeTxNotFound), nil
	}
	if !receipt.Succeeded() {
		return model.Rejected(model.CodeTxFailed), nil
	}

	if !common.IsHexAddress(req.WalletAddress) || receipt.From != common.HexToAddress(req.WalletAddress) {
		return model.Rejected(model.CodeSenderMismatch), nil
	}
	if receipt.To == nil || *receipt.To != s.routes.Router() {
		return model.Rejected(model.CodeWrongRouter), nil
	}

	swapsByPool, err := s.collectSwaps(receipt, pair)
	if err != nil {
		return model.VerificationResult{}, err
	}
	for _, hop := range pair.Hops {
		if len(swapsByPool[hop.Pool]) == 0 {
			return model.Rejected(model.CodeMissingRequiredPoolSwaps), nil
		}
	}

	route, err := ReconstructRoute(pair, direction, swapsByPool)
	if err != nil {
		if errors.Is(err, ErrRouteMismatch) {
			s.logger.Debug("route mismatch",
				zap.String("tx", txHash.Hex()),
				zap.String("pair", pair.Name),
				zap.String("direction", string(direction)),
				zap.Error(err),
			)
			return model.Rejected(model.CodeRouteMismatch), nil
		}
		return model.VerificationResult{}, err
	}

	if route.AmountIn().Cmp(requiredIn) < 0 {
		return model.Rejected(model.CodeAmountTooLow), nil
	}

	return model.Verified(model.SwapMetadata{
		Pair:            pair.Name,
		Direction:       direction,
		AmountIn:        route.AmountIn().String(),
		AmountOut:       route.AmountOut().String(),
		TransactionHash: txHash.Hex(),
		BlockNumber:     receipt.BlockNumberUint64(),
	}), nil
}

// collectSwaps decodes the receipt's Swap logs for the pair's pools. A log
// from a required pool that fails to decode is surfaced, never skipped.
func (s *Strategy) collectSwaps(receipt *model.Receipt, pair model.TradingPair) (map[common.Address][]model.SwapEvent, error) {
	swaps := make(map[common.Address][]model.SwapEvent)
	for _, hop := range pair.Hops {
		for _, log := range receipt.Logs {
			if !s.decoder.IsSwapLog(log, hop.Pool) {
				continue
			}
			event, err := s.decoder.Decode(log, receipt.TxHash)
			if err != nil {
				return nil, err
			}
			swaps[hop.Pool] = append(swaps[hop.Pool], event)
		}
	}
	return swaps, nil
}
