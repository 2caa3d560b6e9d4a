package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"swapVerify/internal/model"
)

// ClientConfig tunes transport-level retry behavior. Retries live here, at the
// collaborator that owns the transport; the verification pipeline never
// retries a logically-failed result.
type ClientConfig struct {
	MaxRetries   int
	RetryBackoff time.Duration
}

// Client wraps go-ethereum RPC and provides helper methods.
type Client struct {
	rpcClient *rpc.Client
	ethClient *ethclient.Client
	cfg       ClientConfig
}

// NewClient creates a new chain client from the RPC URL.
func NewClient(ctx context.Context, rpcURL string, cfg ClientConfig) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		rpcClient: rpcClient,
		ethClient: ethclient.NewClient(rpcClient),
		cfg:       cfg,
	}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

// GetChainID returns the chain ID.
func (c *Client) GetChainID(ctx context.Context) (*big.Int, error) {
	var id *big.Int
	err := withRetry(ctx, c.cfg.MaxRetries, c.cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		id, err = c.ethClient.ChainID(ctx)
		return err
	})
	return id, err
}

// TransactionReceipt fetches a receipt over raw RPC so the sender and target
// addresses are available. Returns (nil, nil) when the transaction is unknown
// or not yet mined.
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*model.Receipt, error) {
	var receipt *model.Receipt
	err := withRetry(ctx, c.cfg.MaxRetries, c.cfg.RetryBackoff, func(ctx context.Context) error {
		receipt = nil
		return c.rpcClient.CallContext(ctx, &receipt, "eth_getTransactionReceipt", txHash)
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// CallContract performs an eth_call for a contract method. Call errors are
// not retried: a reverted simulation reverts deterministically and must reach
// the caller unmodified.
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return c.ethClient.CallContract(ctx, msg, blockNumber)
}
