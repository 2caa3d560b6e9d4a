package dex

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"swapVerify/internal/model"
)

// SwapDecoder decodes Uniswap V3 / PancakeSwap V3 pool Swap logs.
type SwapDecoder struct {
	poolABI abi.ABI
	topic0  common.Hash
}

// NewSwapDecoder builds a Swap log decoder.
func NewSwapDecoder() (*SwapDecoder, error) {
	poolABI, err := V3PoolABI()
	if err != nil {
		return nil, err
	}
	return &SwapDecoder{
		poolABI: poolABI,
		topic0:  poolABI.Events["Swap"].ID,
	}, nil
}

// SwapTopic0 returns the Swap event signature hash.
func (d *SwapDecoder) SwapTopic0() common.Hash {
	return d.topic0
}

// IsSwapLog reports whether the log is a Swap emission from the given pool.
func (d *SwapDecoder) IsSwapLog(log model.ReceiptLog, pool common.Address) bool {
	return log.Address == pool && len(log.Topics) > 0 && log.Topics[0] == d.topic0
}

// Decode converts a receipt log into a SwapEvent. Failures return a
// *model.DecodeError; a decoded event is never partially filled.
func (d *SwapDecoder) Decode(log model.ReceiptLog, txHash common.Hash) (model.SwapEvent, error) {
	event := d.poolABI.Events["Swap"]

	fail := func(reason string) (model.SwapEvent, error) {
		topic0 := ""
		if len(log.Topics) > 0 {
			topic0 = log.Topics[0].Hex()
		}
		return model.SwapEvent{}, &model.DecodeError{
			TxHash:   txHash.Hex(),
			LogIndex: uint64(log.Index),
			Address:  log.Address.Hex(),
			Topic0:   topic0,
			Reason:   reason,
		}
	}

	if len(log.Topics) == 0 {
		return fail("missing topics")
	}
	if log.Topics[0] != d.topic0 {
		return fail(fmt.Sprintf("unexpected topic0: %s", log.Topics[0].Hex()))
	}
	if len(log.Topics) != 3 {
		return fail(fmt.Sprintf("expected 3 topics, got %d", len(log.Topics)))
	}

	var indexed struct {
		Sender    common.Address
		Recipient common.Address
	}
	if err := abi.ParseTopics(&indexed, indexedArguments(event.Inputs), log.Topics[1:]); err != nil {
		return fail(fmt.Sprintf("parse topics: %v", err))
	}

	values, err := event.Inputs.NonIndexed().Unpack(log.Data)
	if err != nil {
		return fail(fmt.Sprintf("unpack data: %v", err))
	}
	if len(values) != 5 {
		return fail(fmt.Sprintf("unexpected swap values: %d", len(values)))
	}

	amount0, err := asBigInt(values[0])
	if err != nil {
		return fail(err.Error())
	}
	amount1, err := asBigInt(values[1])
	if err != nil {
		return fail(err.Error())
	}
	sqrtPrice, err := asBigInt(values[2])
	if err != nil {
		return fail(err.Error())
	}
	liquidity, err := asBigInt(values[3])
	if err != nil {
		return fail(err.Error())
	}
	tickInt, err := asBigInt(values[4])
	if err != nil {
		return fail(err.Error())
	}
	tick, err := int24FromBig(tickInt)
	if err != nil {
		return fail(err.Error())
	}

	return model.SwapEvent{
		Pool:         log.Address,
		LogIndex:     uint64(log.Index),
		Sender:       indexed.Sender,
		Recipient:    indexed.Recipient,
		Amount0:      amount0,
		Amount1:      amount1,
		SqrtPriceX96: sqrtPrice,
		Liquidity:    liquidity,
		Tick:         tick,
	}, nil
}

func indexedArguments(args abi.Arguments) abi.Arguments {
	indexed := make(abi.Arguments, 0, len(args))
	for _, arg := range args {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return indexed
}

func asBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	default:
		return nil, fmt.Errorf("unsupported int type %T", value)
	}
}

func int24FromBig(value *big.Int) (int32, error) {
	min := big.NewInt(-1 << 23)
	max := big.NewInt((1 << 23) - 1)
	if value.Cmp(min) < 0 || value.Cmp(max) > 0 {
		return 0, fmt.Errorf("int24 overflow: %s", value.String())
	}
	return int32(value.Int64()), nil
}
