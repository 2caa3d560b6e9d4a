package quote

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// EncodePath packs a multi-hop route into the router/quoter path format:
// token (20 bytes) followed by fee (3 bytes big-endian) per hop.
func EncodePath(tokens []common.Address, fees []uint32) ([]byte, error) {
	if len(tokens) < 2 {
		return nil, fmt.Errorf("path needs at least two tokens, got %d", len(tokens))
	}
	if len(fees) != len(tokens)-1 {
		return nil, fmt.Errorf("path needs %d fees, got %d", len(tokens)-1, len(fees))
	}

	path := make([]byte, 0, len(tokens)*20+len(fees)*3)
	for i, fee := range fees {
		if fee > 0xffffff {
			return nil, fmt.Errorf("fee %d does not fit in uint24", fee)
		}
		path = append(path, tokens[i].Bytes()...)
		path = append(path, byte(fee>>16), byte(fee>>8), byte(fee))
	}
	path = append(path, tokens[len(tokens)-1].Bytes()...)
	return path, nil
}
