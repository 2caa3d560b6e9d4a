package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"swapVerify/internal/model"
)

type rawHop struct {
	Pool   string `mapstructure:"pool"`
	Token0 string `mapstructure:"token0"`
	Token1 string `mapstructure:"token1"`
	Fee    uint32 `mapstructure:"fee"`
}

type rawPair struct {
	Name   string   `mapstructure:"name"`
	TokenA string   `mapstructure:"token-a"`
	Hops   []rawHop `mapstructure:"hops"`
}

type rawRegistry struct {
	ChainID uint64    `mapstructure:"chain-id"`
	Router  string    `mapstructure:"router"`
	Quoter  string    `mapstructure:"quoter"`
	Pairs   []rawPair `mapstructure:"pairs"`
}

// LoadFile reads a registry definition from a YAML/JSON/TOML file.
func LoadFile(path string) (*Registry, error) {
	if path == "" {
		return nil, fmt.Errorf("registry path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var raw rawRegistry
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}

	router, err := parseAddress(raw.Router, "router")
	if err != nil {
		return nil, err
	}
	quoter, err := parseAddress(raw.Quoter, "quoter")
	if err != nil {
		return nil, err
	}

	pairs := make([]model.TradingPair, 0, len(raw.Pairs))
	for _, rp := range raw.Pairs {
		tokenA, err := parseAddress(rp.TokenA, fmt.Sprintf("pair %s token-a", rp.Name))
		if err != nil {
			return nil, err
		}
		hops := make([]model.Hop, 0, len(rp.Hops))
		for i, rh := range rp.Hops {
			pool, err := parseAddress(rh.Pool, fmt.Sprintf("pair %s hop %d pool", rp.Name, i))
			if err != nil {
				return nil, err
			}
			token0, err := parseAddress(rh.Token0, fmt.Sprintf("pair %s hop %d token0", rp.Name, i))
			if err != nil {
				return nil, err
			}
			token1, err := parseAddress(rh.Token1, fmt.Sprintf("pair %s hop %d token1", rp.Name, i))
			if err != nil {
				return nil, err
			}
			hops = append(hops, model.Hop{Pool: pool, Token0: token0, Token1: token1, Fee: rh.Fee})
		}
		pairs = append(pairs, model.TradingPair{Name: rp.Name, TokenA: tokenA, Hops: hops})
	}

	return NewRegistry(Config{
		ChainID: raw.ChainID,
		Router:  router,
		Quoter:  quoter,
		Pairs:   pairs,
	})
}

func parseAddress(input, field string) (common.Address, error) {
	if !common.IsHexAddress(input) {
		return common.Address{}, fmt.Errorf("invalid %s address: %q", field, input)
	}
	return common.HexToAddress(input), nil
}
