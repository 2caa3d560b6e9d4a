package dex

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"swapVerify/internal/model"
)

func TestSwapDecoderDecode(t *testing.T) {
	poolABI, err := V3PoolABI()
	if err != nil {
		t.Fatalf("abi parse: %v", err)
	}

	decoder, err := NewSwapDecoder()
	if err != nil {
		t.Fatalf("decoder: %v", err)
	}

	pool := common.HexToAddress("0x1111111111111111111111111111111111111111")
	sender := common.HexToAddress("0x2222222222222222222222222222222222222222")
	recipient := common.HexToAddress("0x3333333333333333333333333333333333333333")

	data, err := poolABI.Events["Swap"].Inputs.NonIndexed().Pack(
		big.NewInt(-1000),
		big.NewInt(2000),
		big.NewInt(123456789),
		big.NewInt(987654321),
		big.NewInt(-15),
	)
	if err != nil {
		t.Fatalf("pack swap: %v", err)
	}

	log := model.ReceiptLog{
		Address: pool,
		Topics: []common.Hash{
			decoder.SwapTopic0(),
			topicFromAddress(sender),
			topicFromAddress(recipient),
		},
		Data:  data,
		Index: 4,
	}

	event, err := decoder.Decode(log, common.HexToHash("0xdeadbeef"))
	if err != nil {
		t.Fatalf("decode swap: %v", err)
	}

	if event.Amount0.Cmp(big.NewInt(-1000)) != 0 || event.Amount1.Cmp(big.NewInt(2000)) != 0 {
		t.Fatalf("amounts mismatch: %+v", event)
	}
	if event.Tick != -15 {
		t.Fatalf("tick mismatch: %d", event.Tick)
	}
	if event.Sender != sender || event.Recipient != recipient {
		t.Fatalf("address mismatch")
	}
	if event.Pool != pool || event.LogIndex != 4 {
		t.Fatalf("log identity mismatch: %+v", event)
	}
}

func TestSwapDecoderRejectsMalformedLog(t *testing.T) {
	decoder, err := NewSwapDecoder()
	if err != nil {
		t.Fatalf("decoder: %v", err)
	}

	pool := common.HexToAddress("0x1111111111111111111111111111111111111111")
	txHash := common.HexToHash("0xdeadbeef")

	cases := []struct {
		name string
		log  model.ReceiptLog
	}{
		{"no topics", model.ReceiptLog{Address: pool}},
		{"wrong topic0", model.ReceiptLog{Address: pool, Topics: []common.Hash{common.HexToHash("0x01")}}},
		{"missing indexed topics", model.ReceiptLog{Address: pool, Topics: []common.Hash{decoder.SwapTopic0()}}},
		{"truncated data", model.ReceiptLog{
			Address: pool,
			Topics: []common.Hash{
				decoder.SwapTopic0(),
				topicFromAddress(pool),
				topicFromAddress(pool),
			},
			Data: []byte{0x01, 0x02},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decoder.Decode(tc.log, txHash)
			if err == nil {
				t.Fatalf("expected decode error")
			}
			var decodeErr *model.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *model.DecodeError, got %T", err)
			}
			if decodeErr.TxHash != txHash.Hex() {
				t.Fatalf("decode error tx mismatch: %s", decodeErr.TxHash)
			}
		})
	}
}

func TestIsSwapLog(t *testing.T) {
	decoder, err := NewSwapDecoder()
	if err != nil {
		t.Fatalf("decoder: %v", err)
	}

	pool := common.HexToAddress("0x1111111111111111111111111111111111111111")
	other := common.HexToAddress("0x2222222222222222222222222222222222222222")
	log := model.ReceiptLog{Address: pool, Topics: []common.Hash{decoder.SwapTopic0()}}

	if !decoder.IsSwapLog(log, pool) {
		t.Fatalf("expected swap log match")
	}
	if decoder.IsSwapLog(log, other) {
		t.Fatalf("must not match a different pool")
	}

	log.Topics = []common.Hash{common.HexToHash("0x01")}
	if decoder.IsSwapLog(log, pool) {
		t.Fatalf("must not match a different topic0")
	}
}

func topicFromAddress(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}
