package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// VerifyConfig holds configuration for the verify command.
type VerifyConfig struct {
	RPCURL           string
	Registry         string
	TxHash           string
	Wallet           string
	UserID           string
	Pair             string
	Direction        string
	RequiredAmountIn string
	PGDSN            string
	Out              string
	MaxRetries       int
	RetryBackoff     time.Duration
	LogLevel         string
}

// LoadVerify merges config file, environment variables, and flags into VerifyConfig.
func LoadVerify(cfgFile string, flags *pflag.FlagSet) (VerifyConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"max-retries":   3,
		"retry-backoff": 500 * time.Millisecond,
		"log-level":     "info",
	})
	if err != nil {
		return VerifyConfig{}, err
	}

	cfg := VerifyConfig{
		RPCURL:           v.GetString("rpc"),
		Registry:         v.GetString("registry"),
		TxHash:           v.GetString("tx"),
		Wallet:           v.GetString("wallet"),
		UserID:           v.GetString("user"),
		Pair:             v.GetString("pair"),
		Direction:        v.GetString("direction"),
		RequiredAmountIn: v.GetString("min-amount-in"),
		PGDSN:            v.GetString("pg-dsn"),
		Out:              v.GetString("out"),
		MaxRetries:       v.GetInt("max-retries"),
		RetryBackoff:     v.GetDuration("retry-backoff"),
		LogLevel:         v.GetString("log-level"),
	}

	return cfg, nil
}

// QuoteConfig holds configuration for the quote command.
type QuoteConfig struct {
	RPCURL       string
	Registry     string
	Pair         string
	Direction    string
	AmountIn     string
	FeeBips      uint32
	FeeRecipient string
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

// LoadQuote merges config file, environment variables, and flags into QuoteConfig.
func LoadQuote(cfgFile string, flags *pflag.FlagSet) (QuoteConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"direction":     "A_TO_B",
		"fee-bips":      25,
		"max-retries":   3,
		"retry-backoff": 500 * time.Millisecond,
		"log-level":     "info",
	})
	if err != nil {
		return QuoteConfig{}, err
	}

	cfg := QuoteConfig{
		RPCURL:       v.GetString("rpc"),
		Registry:     v.GetString("registry"),
		Pair:         v.GetString("pair"),
		Direction:    v.GetString("direction"),
		AmountIn:     v.GetString("amount-in"),
		FeeBips:      v.GetUint32("fee-bips"),
		FeeRecipient: v.GetString("fee-recipient"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet, defaults map[string]interface{}) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("VERIFIER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}
