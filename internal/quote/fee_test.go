package quote

import (
	"math/big"
	"testing"
)

func TestSplitFeeExample(t *testing.T) {
	feeAmount, userReceives := SplitFee(big.NewInt(1000000), 25)
	if feeAmount.Cmp(big.NewInt(2500)) != 0 {
		t.Fatalf("fee amount mismatch: %s", feeAmount)
	}
	if userReceives.Cmp(big.NewInt(997500)) != 0 {
		t.Fatalf("user receives mismatch: %s", userReceives)
	}
}

func TestSplitFeeTruncatesTowardZero(t *testing.T) {
	// 999 * 25 / 10000 = 2.4975, must truncate to 2.
	feeAmount, userReceives := SplitFee(big.NewInt(999), 25)
	if feeAmount.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("fee amount mismatch: %s", feeAmount)
	}
	if userReceives.Cmp(big.NewInt(997)) != 0 {
		t.Fatalf("user receives mismatch: %s", userReceives)
	}
}

func TestSplitFeeInvariant(t *testing.T) {
	amounts := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(9999),
		big.NewInt(10000),
		new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil),
	}
	bips := []uint32{0, 1, 25, 100, 9999, 10000}

	for _, amount := range amounts {
		for _, bp := range bips {
			feeAmount, userReceives := SplitFee(amount, bp)
			sum := new(big.Int).Add(feeAmount, userReceives)
			if sum.Cmp(amount) != 0 {
				t.Fatalf("invariant broken: amount=%s bips=%d fee=%s user=%s", amount, bp, feeAmount, userReceives)
			}

			want := new(big.Int).Mul(amount, new(big.Int).SetUint64(uint64(bp)))
			want.Quo(want, big.NewInt(10000))
			if feeAmount.Cmp(want) != 0 {
				t.Fatalf("fee mismatch: amount=%s bips=%d got=%s want=%s", amount, bp, feeAmount, want)
			}
		}
	}
}

func TestSplitFeeNil(t *testing.T) {
	feeAmount, userReceives := SplitFee(nil, 25)
	if feeAmount.Sign() != 0 || userReceives.Sign() != 0 {
		t.Fatalf("nil amount must split to zero: fee=%s user=%s", feeAmount, userReceives)
	}
}
