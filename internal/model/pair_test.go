package model

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("A_TO_B"); err != nil || d != DirectionAToB {
		t.Fatalf("A_TO_B parse failed: %v %v", d, err)
	}
	if d, err := ParseDirection("B_TO_A"); err != nil || d != DirectionBToA {
		t.Fatalf("B_TO_A parse failed: %v %v", d, err)
	}
	if _, err := ParseDirection("a_to_b"); err == nil {
		t.Fatalf("directions are case-sensitive")
	}
	if _, err := ParseDirection(""); err == nil {
		t.Fatalf("empty direction must fail")
	}
}

func TestPathTokens(t *testing.T) {
	weth := common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	up := common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	usdc := common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc")

	pair := TradingPair{
		Name:   "UP_USDC",
		TokenA: up,
		Hops: []Hop{
			{Pool: common.HexToAddress("0x01"), Token0: weth, Token1: up},
			{Pool: common.HexToAddress("0x02"), Token0: weth, Token1: usdc},
		},
	}

	tokens, err := pair.PathTokens()
	if err != nil {
		t.Fatalf("path tokens: %v", err)
	}
	want := []common.Address{up, weth, usdc}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("token %d mismatch: %s", i, tokens[i].Hex())
		}
	}

	tokenB, err := pair.TokenB()
	if err != nil {
		t.Fatalf("token b: %v", err)
	}
	if tokenB != usdc {
		t.Fatalf("token b mismatch: %s", tokenB.Hex())
	}
}

func TestPathTokensBrokenLink(t *testing.T) {
	weth := common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	up := common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	usdc := common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc")
	dai := common.HexToAddress("0xdddddddddddddddddddddddddddddddddddddddd")

	pair := TradingPair{
		Name:   "BROKEN",
		TokenA: up,
		Hops: []Hop{
			{Pool: common.HexToAddress("0x01"), Token0: weth, Token1: up},
			// Second hop does not hold WETH: the chain is broken.
			{Pool: common.HexToAddress("0x02"), Token0: dai, Token1: usdc},
		},
	}

	if _, err := pair.PathTokens(); err == nil {
		t.Fatalf("expected error for broken hop link")
	}
}
