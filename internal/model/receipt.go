package model

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ReceiptStatusSuccess is the status value of a successfully executed transaction.
const ReceiptStatusSuccess = 1

// Receipt is the result of eth_getTransactionReceipt, fetched over raw RPC so
// the sender and target addresses are retained.
type Receipt struct {
	TxHash      common.Hash     `json:"transactionHash"`
	Status      hexutil.Uint64  `json:"status"`
	From        common.Address  `json:"from"`
	To          *common.Address `json:"to"`
	BlockNumber *hexutil.Big    `json:"blockNumber"`
	Logs        []ReceiptLog    `json:"logs"`
}

// Succeeded reports whether the transaction executed successfully.
func (r *Receipt) Succeeded() bool {
	return uint64(r.Status) == ReceiptStatusSuccess
}

// BlockNumberUint64 returns the block number, or zero when unset.
func (r *Receipt) BlockNumberUint64() uint64 {
	if r.BlockNumber == nil {
		return 0
	}
	return r.BlockNumber.ToInt().Uint64()
}

// ReceiptLog is a raw event emission within a receipt.
type ReceiptLog struct {
	Address common.Address `json:"address"`
	Topics  []common.Hash  `json:"topics"`
	Data    hexutil.Bytes  `json:"data"`
	Index   hexutil.Uint   `json:"logIndex"`
}
