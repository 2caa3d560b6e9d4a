package model

// VerificationRecord is the persisted outcome of one verification call, used
// by the audit sinks.
type VerificationRecord struct {
	ChainID    uint64        `json:"chain_id"`
	TxHash     string        `json:"tx_hash"`
	Pair       string        `json:"pair"`
	Direction  Direction     `json:"direction"`
	Wallet     string        `json:"wallet"`
	UserID     string        `json:"user_id,omitempty"`
	Success    bool          `json:"success"`
	Code       RejectionCode `json:"code,omitempty"`
	AmountIn   string        `json:"amount_in,omitempty"`
	AmountOut  string        `json:"amount_out,omitempty"`
	BlockNum   uint64        `json:"block_number,omitempty"`
	VerifiedAt string        `json:"verified_at"`
}
