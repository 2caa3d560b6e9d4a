package quote

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"swapVerify/internal/dex"
	"swapVerify/internal/model"
	"swapVerify/internal/registry"
)

var (
	quoterAddr   = common.HexToAddress("0x5555555555555555555555555555555555555555")
	feeRecipient = common.HexToAddress("0x6666666666666666666666666666666666666666")
	testFee      = registry.FeeConfig{Bips: 25, Recipient: feeRecipient}
)

type fakeCaller struct {
	handler func(msg ethereum.CallMsg) ([]byte, error)
	calls   int
}

func (f *fakeCaller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls++
	return f.handler(msg)
}

func packSingleOutputs(t *testing.T, amountOut, sqrtAfter *big.Int, ticks uint32, gas *big.Int) []byte {
	t.Helper()
	quoterABI, err := dex.QuoterV2ABI()
	if err != nil {
		t.Fatalf("abi: %v", err)
	}
	data, err := quoterABI.Methods["quoteExactInputSingle"].Outputs.Pack(amountOut, sqrtAfter, ticks, gas)
	if err != nil {
		t.Fatalf("pack outputs: %v", err)
	}
	return data
}

func packMultiOutputs(t *testing.T, amountOut *big.Int, sqrtList []*big.Int, tickList []uint32, gas *big.Int) []byte {
	t.Helper()
	quoterABI, err := dex.QuoterV2ABI()
	if err != nil {
		t.Fatalf("abi: %v", err)
	}
	data, err := quoterABI.Methods["quoteExactInput"].Outputs.Pack(amountOut, sqrtList, tickList, gas)
	if err != nil {
		t.Fatalf("pack outputs: %v", err)
	}
	return data
}

func TestQuoteExactInputSingle(t *testing.T) {
	caller := &fakeCaller{handler: func(msg ethereum.CallMsg) ([]byte, error) {
		if msg.To == nil || *msg.To != quoterAddr {
			t.Fatalf("unexpected call target: %v", msg.To)
		}
		return packSingleOutputs(t, big.NewInt(1000000), big.NewInt(123456), 7, big.NewInt(90000)), nil
	}}

	engine, err := NewEngine(caller, quoterAddr, testFee, nil)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	q, err := engine.QuoteExactInputSingle(context.Background(), ExactInputSingleParams{
		TokenIn:  common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		TokenOut: common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"),
		Fee:      3000,
		AmountIn: big.NewInt(500),
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	if q.AmountOut.Cmp(big.NewInt(1000000)) != 0 {
		t.Fatalf("amount out mismatch: %s", q.AmountOut)
	}
	if q.SqrtPriceX96After.Cmp(big.NewInt(123456)) != 0 {
		t.Fatalf("sqrt price mismatch: %s", q.SqrtPriceX96After)
	}
	if q.InitializedTicksCrossed != 7 {
		t.Fatalf("ticks crossed mismatch: %d", q.InitializedTicksCrossed)
	}
	if q.GasEstimate.Cmp(big.NewInt(90000)) != 0 {
		t.Fatalf("gas estimate mismatch: %s", q.GasEstimate)
	}
	if q.FeeAmount.Cmp(big.NewInt(2500)) != 0 || q.UserReceives.Cmp(big.NewInt(997500)) != 0 {
		t.Fatalf("fee split mismatch: fee=%s user=%s", q.FeeAmount, q.UserReceives)
	}
}

func TestQuoteExactInputMultiHopAggregation(t *testing.T) {
	sqrtA := big.NewInt(111111)
	sqrtB := big.NewInt(222222)

	caller := &fakeCaller{handler: func(msg ethereum.CallMsg) ([]byte, error) {
		return packMultiOutputs(t, big.NewInt(5000), []*big.Int{sqrtA, sqrtB}, []uint32{1, 2}, big.NewInt(150000)), nil
	}}

	engine, err := NewEngine(caller, quoterAddr, testFee, nil)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	path, err := EncodePath([]common.Address{
		common.HexToAddress("0x1111111111111111111111111111111111111111"),
		common.HexToAddress("0x2222222222222222222222222222222222222222"),
		common.HexToAddress("0x3333333333333333333333333333333333333333"),
	}, []uint32{3000, 500})
	if err != nil {
		t.Fatalf("path: %v", err)
	}

	q, err := engine.QuoteExactInput(context.Background(), path, big.NewInt(100))
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	if q.SqrtPriceX96After.Cmp(sqrtB) != 0 {
		t.Fatalf("must take last sqrtPriceX96After, got %s", q.SqrtPriceX96After)
	}
	if q.InitializedTicksCrossed != 3 {
		t.Fatalf("must sum ticks crossed, got %d", q.InitializedTicksCrossed)
	}
	if q.PriceImpactPct != "0" {
		t.Fatalf("multi-hop price impact must be 0, got %s", q.PriceImpactPct)
	}
}

func TestQuoteZeroAmount(t *testing.T) {
	caller := &fakeCaller{handler: func(msg ethereum.CallMsg) ([]byte, error) {
		t.Fatalf("zero amount must not reach the chain")
		return nil, nil
	}}

	engine, err := NewEngine(caller, quoterAddr, testFee, nil)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	q, err := engine.QuoteExactInputSingle(context.Background(), ExactInputSingleParams{AmountIn: new(big.Int)})
	if err != nil {
		t.Fatalf("zero amount quote errored: %v", err)
	}
	if q.AmountOut.Sign() != 0 || q.FeeAmount.Sign() != 0 || q.UserReceives.Sign() != 0 {
		t.Fatalf("zero amount must yield zero quote: %+v", q)
	}
	if caller.calls != 0 {
		t.Fatalf("unexpected chain calls: %d", caller.calls)
	}
}

func TestQuoteSimulationErrorPropagates(t *testing.T) {
	simErr := errors.New("execution reverted")
	caller := &fakeCaller{handler: func(msg ethereum.CallMsg) ([]byte, error) {
		return nil, simErr
	}}

	engine, err := NewEngine(caller, quoterAddr, testFee, nil)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	_, err = engine.QuoteExactInputSingle(context.Background(), ExactInputSingleParams{AmountIn: big.NewInt(1)})
	if !errors.Is(err, simErr) {
		t.Fatalf("simulation error must propagate unmodified, got %v", err)
	}
}

func TestQuotePairSingleHopPriceImpact(t *testing.T) {
	pool := common.HexToAddress("0x9999999999999999999999999999999999999999")
	weth := common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	up := common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	pair := model.TradingPair{
		Name:   "ETH_UP",
		TokenA: weth,
		Hops:   []model.Hop{{Pool: pool, Token0: weth, Token1: up, Fee: 3000}},
	}

	poolABI, err := dex.V3PoolABI()
	if err != nil {
		t.Fatalf("abi: %v", err)
	}
	slot0, err := poolABI.Methods["slot0"].Outputs.Pack(
		big.NewInt(1000000), big.NewInt(0), uint16(0), uint16(0), uint16(0), uint8(0), false,
	)
	if err != nil {
		t.Fatalf("pack slot0: %v", err)
	}

	caller := &fakeCaller{handler: func(msg ethereum.CallMsg) ([]byte, error) {
		switch *msg.To {
		case pool:
			return slot0, nil
		case quoterAddr:
			return packSingleOutputs(t, big.NewInt(4000), big.NewInt(2000000), 1, big.NewInt(80000)), nil
		default:
			t.Fatalf("unexpected call target: %s", msg.To.Hex())
			return nil, nil
		}
	}}

	engine, err := NewEngine(caller, quoterAddr, testFee, nil)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	q, err := engine.QuotePair(context.Background(), pair, model.DirectionAToB, big.NewInt(100))
	if err != nil {
		t.Fatalf("quote pair: %v", err)
	}

	// sqrt price doubled: impact 300%.
	if q.PriceImpactPct != "300" {
		t.Fatalf("price impact mismatch: %s", q.PriceImpactPct)
	}
	if q.AmountOut.Cmp(big.NewInt(4000)) != 0 {
		t.Fatalf("amount out mismatch: %s", q.AmountOut)
	}
}

func TestNewEngineRejectsBadFeeConfig(t *testing.T) {
	caller := &fakeCaller{handler: func(msg ethereum.CallMsg) ([]byte, error) { return nil, nil }}

	if _, err := NewEngine(caller, quoterAddr, registry.FeeConfig{Bips: 25}, nil); err == nil {
		t.Fatalf("expected error for unset fee recipient")
	}
	if _, err := NewEngine(caller, quoterAddr, registry.FeeConfig{Bips: 10001, Recipient: feeRecipient}, nil); err == nil {
		t.Fatalf("expected error for fee bips over denominator")
	}
}
