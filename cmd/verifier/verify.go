package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapVerify/internal/chain"
	"swapVerify/internal/config"
	"swapVerify/internal/model"
	"swapVerify/internal/registry"
	"swapVerify/internal/storage"
	"swapVerify/internal/storage/postgres"
	"swapVerify/internal/verify"
)

func runVerify(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadVerify(cfgFile, cmd.Flags())
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

	routes, err := registry.LoadFile(cfg.Registry)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
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

	strategy, err := verify.NewStrategy(chainClient, routes, logger)
	if err != nil {
		return err
	}

	logger.Info("verify start",
		zap.String("tx", cfg.TxHash),
		zap.String("wallet", cfg.Wallet),
		zap.String("pair", cfg.Pair),
		zap.String("direction", cfg.Direction),
		zap.String("min_amount_in", cfg.RequiredAmountIn),
		zap.Uint64("chain_id", routes.ChainID()),
	)

	result, err := strategy.Verify(ctx, verify.Request{
		TransactionHash: cfg.TxHash,
		UserID:          cfg.UserID,
		WalletAddress:   cfg.Wallet,
		TaskConfig: &model.TaskConfig{
			Pair:             cfg.Pair,
			Direction:        cfg.Direction,
			RequiredAmountIn: cfg.RequiredAmountIn,
		},
	})
	if err != nil {
		return err
	}

	if err := recordResult(ctx, cfg, routes, result, logger); err != nil {
		logger.Warn("audit record failed", zap.Error(err))
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if !result.Success {
		return fmt.Errorf("verification rejected: %s", result.Code)
	}
	return nil
}

func recordResult(ctx context.Context, cfg config.VerifyConfig, routes *registry.Registry, result model.VerificationResult, logger *zap.Logger) error {
	if cfg.PGDSN == "" && cfg.Out == "" {
		return nil
	}

	record := model.VerificationRecord{
		ChainID:    routes.ChainID(),
		TxHash:     cfg.TxHash,
		Pair:       cfg.Pair,
		Direction:  model.Direction(cfg.Direction),
		Wallet:     cfg.Wallet,
		UserID:     cfg.UserID,
		Success:    result.Success,
		Code:       result.Code,
		VerifiedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if result.Metadata != nil {
		record.AmountIn = result.Metadata.AmountIn
		record.AmountOut = result.Metadata.AmountOut
		record.BlockNum = result.Metadata.BlockNumber
		record.TxHash = result.Metadata.TransactionHash
	}

	var sinks []storage.Sink
	if cfg.Out != "" {
		sinks = append(sinks, storage.NewJsonlSink(cfg.Out))
	}
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		sinks = append(sinks, store)
	}

	for _, sink := range sinks {
		if err := sink.PutVerification(ctx, record); err != nil {
			return err
		}
	}

	logger.Debug("audit record written", zap.String("tx", record.TxHash), zap.Bool("success", record.Success))
	return nil
}
