package registry

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"swapVerify/internal/model"
)

// FeeDenominator is the basis-point denominator for the platform fee split.
const FeeDenominator = 10000

// Registry holds the static route configuration: known pairs, the router and
// quoter contracts, and the chain they live on. Immutable after construction.
type Registry struct {
	chainID uint64
	router  common.Address
	quoter  common.Address
	pairs   map[string]model.TradingPair
}

// Config is the input to NewRegistry.
type Config struct {
	ChainID uint64
	Router  common.Address
	Quoter  common.Address
	Pairs   []model.TradingPair
}

// NewRegistry validates the configuration and builds a Registry.
func NewRegistry(cfg Config) (*Registry, error) {
	if cfg.ChainID == 0 {
		return nil, fmt.Errorf("chain id is required")
	}
	if cfg.Router == (common.Address{}) {
		return nil, fmt.Errorf("router address is required")
	}
	if cfg.Quoter == (common.Address{}) {
		return nil, fmt.Errorf("quoter address is required")
	}
	if len(cfg.Pairs) == 0 {
		return nil, fmt.Errorf("at least one trading pair is required")
	}

	pairs := make(map[string]model.TradingPair, len(cfg.Pairs))
	for _, pair := range cfg.Pairs {
		if pair.Name == "" {
			return nil, fmt.Errorf("pair name is required")
		}
		if _, exists := pairs[pair.Name]; exists {
			return nil, fmt.Errorf("duplicate pair: %s", pair.Name)
		}
		if len(pair.Hops) == 0 {
			return nil, fmt.Errorf("pair %s has no hops", pair.Name)
		}
		if !pair.Hops[0].HasToken(pair.TokenA) {
			return nil, fmt.Errorf("pair %s: token_a %s not held by first pool", pair.Name, pair.TokenA.Hex())
		}
		// PathTokens walks every hop and fails on a broken link.
		if _, err := pair.PathTokens(); err != nil {
			return nil, err
		}
		pairs[pair.Name] = pair
	}

	return &Registry{
		chainID: cfg.ChainID,
		router:  cfg.Router,
		quoter:  cfg.Quoter,
		pairs:   pairs,
	}, nil
}

// ChainID returns the configured chain id.
func (r *Registry) ChainID() uint64 { return r.chainID }

// Router returns the configured router contract address.
func (r *Registry) Router() common.Address { return r.router }

// Quoter returns the configured quoter contract address.
func (r *Registry) Quoter() common.Address { return r.quoter }

// Pair looks up a trading pair by name.
func (r *Registry) Pair(name string) (model.TradingPair, bool) {
	pair, ok := r.pairs[name]
	return pair, ok
}

// PairNames lists all configured pair names in sorted order.
func (r *Registry) PairNames() []string {
	names := make([]string, 0, len(r.pairs))
	for name := range r.pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FeeConfig is the platform fee split configuration.
type FeeConfig struct {
	Bips      uint32
	Recipient common.Address
}

// ValidateFeeConfig fails fast when the fee split is unusable. Every quote or
// swap flow must pass this before proceeding.
func ValidateFeeConfig(cfg FeeConfig) error {
	if cfg.Bips > FeeDenominator {
		return fmt.Errorf("fee bips %d exceeds denominator %d", cfg.Bips, FeeDenominator)
	}
	if cfg.Recipient == (common.Address{}) {
		return fmt.Errorf("fee recipient is not set")
	}
	return nil
}
