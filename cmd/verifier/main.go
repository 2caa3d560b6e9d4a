package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "verifier",
		Short:        "On-chain swap verification and quoting",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a submitted swap transaction against a task config",
		RunE:  runVerify,
	}

	verifyCmd.Flags().String("rpc", "", "RPC URL")
	verifyCmd.Flags().String("registry", "", "route registry file path")
	verifyCmd.Flags().String("tx", "", "transaction hash to verify")
	verifyCmd.Flags().String("wallet", "", "wallet address the swap must originate from")
	verifyCmd.Flags().String("user", "", "user id for the audit record")
	verifyCmd.Flags().String("pair", "", "trading pair name (e.g. ETH_UP)")
	verifyCmd.Flags().String("direction", "", "swap direction (A_TO_B or B_TO_A)")
	verifyCmd.Flags().String("min-amount-in", "", "required minimum input amount in native token units")
	verifyCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for the audit store")
	verifyCmd.Flags().String("out", "", "optional JSONL audit file path")
	verifyCmd.Flags().Int("max-retries", 3, "maximum transport retry attempts")
	verifyCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial transport retry backoff")
	verifyCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(verifyCmd)

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Preview a swap's output and fee split without submitting it",
		RunE:  runQuote,
	}

	quoteCmd.Flags().String("rpc", "", "RPC URL")
	quoteCmd.Flags().String("registry", "", "route registry file path")
	quoteCmd.Flags().String("pair", "", "trading pair name (e.g. ETH_UP)")
	quoteCmd.Flags().String("direction", "A_TO_B", "swap direction (A_TO_B or B_TO_A)")
	quoteCmd.Flags().String("amount-in", "", "input amount in native token units")
	quoteCmd.Flags().Uint32("fee-bips", 25, "platform fee in basis points")
	quoteCmd.Flags().String("fee-recipient", "", "platform fee recipient address")
	quoteCmd.Flags().Int("max-retries", 3, "maximum transport retry attempts")
	quoteCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial transport retry backoff")
	quoteCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(quoteCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
