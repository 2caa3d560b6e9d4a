package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapVerify/internal/chain"
	"swapVerify/internal/config"
	"swapVerify/internal/model"
	"swapVerify/internal/quote"
	"swapVerify/internal/registry"
)

func runQuote(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadQuote(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	if cfg.Registry == "" {
		return fmt.Errorf("registry path is required")
	}
	if cfg.Pair == "" {
		return fmt.Errorf("pair is required")
	}
	if !common.IsHexAddress(cfg.FeeRecipient) {
		return fmt.Errorf("fee recipient is required")
	}

	amountIn, ok := new(big.Int).SetString(cfg.AmountIn, 10)
	if !ok || amountIn.Sign() < 0 {
		return fmt.Errorf("invalid amount-in: %q", cfg.AmountIn)
	}

	direction, err := model.ParseDirection(cfg.Direction)
	if err != nil {
		return err
	}

	routes, err := registry.LoadFile(cfg.Registry)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	pair, ok := routes.Pair(cfg.Pair)
	if !ok {
		return fmt.Errorf("unknown pair: %s", cfg.Pair)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL, chain.ClientConfig{
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	})
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	engine, err := quote.NewEngine(chainClient, routes.Quoter(), registry.FeeConfig{
		Bips:      cfg.FeeBips,
		Recipient: common.HexToAddress(cfg.FeeRecipient),
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("quote start",
		zap.String("pair", pair.Name),
		zap.String("direction", string(direction)),
		zap.String("amount_in", amountIn.String()),
		zap.Uint32("fee_bips", cfg.FeeBips),
	)

	result, err := engine.QuotePair(ctx, pair, direction, amountIn)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(quoteView(result), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

type quoteOutput struct {
	AmountOut               string `json:"amount_out"`
	SqrtPriceX96After       string `json:"sqrt_price_x96_after"`
	InitializedTicksCrossed uint32 `json:"initialized_ticks_crossed"`
	GasEstimate             string `json:"gas_estimate"`
	FeeAmount               string `json:"fee_amount"`
	UserReceives            string `json:"user_receives"`
	PriceImpactPct          string `json:"price_impact_pct"`
}

func quoteView(q model.Quote) quoteOutput {
	return quoteOutput{
		AmountOut:               q.AmountOut.String(),
		SqrtPriceX96After:       q.SqrtPriceX96After.String(),
		InitializedTicksCrossed: q.InitializedTicksCrossed,
		GasEstimate:             q.GasEstimate.String(),
		FeeAmount:               q.FeeAmount.String(),
		UserReceives:            q.UserReceives.String(),
		PriceImpactPct:          q.PriceImpactPct,
	}
}
