package model

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Direction declares which symbolic end of a trading pair is the input.
type Direction string

const (
	DirectionAToB Direction = "A_TO_B"
	DirectionBToA Direction = "B_TO_A"
)

// ParseDirection validates a direction string.
func ParseDirection(input string) (Direction, error) {
	switch Direction(input) {
	case DirectionAToB:
		return DirectionAToB, nil
	case DirectionBToA:
		return DirectionBToA, nil
	default:
		return "", fmt.Errorf("unknown direction: %s", input)
	}
}

// Hop is one pool leg of a configured route. Token0 and Token1 follow the
// pool's canonical address ordering, not economic roles.
type Hop struct {
	Pool   common.Address `json:"pool"`
	Token0 common.Address `json:"token0"`
	Token1 common.Address `json:"token1"`
	Fee    uint32         `json:"fee"`
}

// HasToken reports whether the hop holds the given token.
func (h Hop) HasToken(token common.Address) bool {
	return token == h.Token0 || token == h.Token1
}

// OtherToken returns the hop token that is not the given one.
func (h Hop) OtherToken(token common.Address) (common.Address, error) {
	switch token {
	case h.Token0:
		return h.Token1, nil
	case h.Token1:
		return h.Token0, nil
	default:
		return common.Address{}, fmt.Errorf("token %s not in pool %s", token.Hex(), h.Pool.Hex())
	}
}

// TradingPair is a configured route identified by a symbolic name. Hops are
// listed in A-to-B order and TokenA names the A-end token explicitly, since
// pool token ordering carries no economic meaning.
type TradingPair struct {
	Name   string         `json:"name"`
	TokenA common.Address `json:"token_a"`
	Hops   []Hop          `json:"hops"`
}

// PathTokens resolves the ordered token path from the A end through every hop.
func (p TradingPair) PathTokens() ([]common.Address, error) {
	if len(p.Hops) == 0 {
		return nil, fmt.Errorf("pair %s has no hops", p.Name)
	}

	tokens := make([]common.Address, 0, len(p.Hops)+1)
	tokens = append(tokens, p.TokenA)
	current := p.TokenA
	for i, hop := range p.Hops {
		next, err := hop.OtherToken(current)
		if err != nil {
			return nil, fmt.Errorf("pair %s hop %d: %w", p.Name, i, err)
		}
		tokens = append(tokens, next)
		current = next
	}
	return tokens, nil
}

// TokenB returns the B-end token of the pair.
func (p TradingPair) TokenB() (common.Address, error) {
	tokens, err := p.PathTokens()
	if err != nil {
		return common.Address{}, err
	}
	return tokens[len(tokens)-1], nil
}
