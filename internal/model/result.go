package model

// RejectionCode identifies why a verification was rejected. Codes are stable
// and machine-readable; the calling workflow maps them to user-facing copy.
type RejectionCode string

const (
	CodeTxHashRequired           RejectionCode = "TX_HASH_REQUIRED"
	CodeTaskConfigMissing        RejectionCode = "TASK_CONFIG_MISSING"
	CodeInvalidTaskConfig        RejectionCode = "INVALID_TASK_CONFIG"
	CodeTxNotFound               RejectionCode = "TX_NOT_FOUND"
	CodeTxFailed                 RejectionCode = "TX_FAILED"
	CodeSenderMismatch           RejectionCode = "SENDER_MISMATCH"
	CodeWrongRouter              RejectionCode = "WRONG_ROUTER"
	CodeMissingRequiredPoolSwaps RejectionCode = "MISSING_REQUIRED_POOL_SWAPS"
	CodeRouteMismatch            RejectionCode = "ROUTE_MISMATCH"
	CodeAmountTooLow             RejectionCode = "AMOUNT_TOO_LOW"
)

// SwapMetadata describes the verified swap on success. Amounts are decimal
// strings in the token's native integer units.
type SwapMetadata struct {
	Pair            string    `json:"pair"`
	Direction       Direction `json:"direction"`
	AmountIn        string    `json:"amount_in"`
	AmountOut       string    `json:"amount_out"`
	TransactionHash string    `json:"transaction_hash"`
	BlockNumber     uint64    `json:"block_number"`
}

// VerificationResult is the sole externally observable output of verification.
type VerificationResult struct {
	Success  bool          `json:"success"`
	Code     RejectionCode `json:"code,omitempty"`
	Metadata *SwapMetadata `json:"metadata,omitempty"`
}

// Rejected builds a failed result carrying a rejection code.
func Rejected(code RejectionCode) VerificationResult {
	return VerificationResult{Success: false, Code: code}
}

// Verified builds a successful result with swap metadata.
func Verified(meta SwapMetadata) VerificationResult {
	return VerificationResult{Success: true, Metadata: &meta}
}
