package model

import "fmt"

// DecodeError records a Swap log decode failure. Decode failures are explicit
// results, never a silently wrong event.
type DecodeError struct {
	TxHash   string `json:"tx_hash"`
	LogIndex uint64 `json:"log_index"`
	Address  string `json:"address"`
	Topic0   string `json:"topic0"`
	Reason   string `json:"reason"`
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode log %d of %s (pool %s): %s", e.LogIndex, e.TxHash, e.Address, e.Reason)
}
