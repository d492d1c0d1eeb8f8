// Package partialfill maps a cumulative fill amount to the unique
// admissible secret index for a Wallet in partial-fill mode, and enforces
// strictly monotonic index progression across fills (spec.md §4.4,
// component C4).
package partialfill

import (
	"math/big"

	"github.com/crossswap/escrowcore/protocol"
)

// Admissible reports whether secretIndex is the admissible index for a fill
// that brings the cumulative filled amount to cumulative, against a Wallet
// with partsAmount buckets, total size makingAmount, and the given
// lastUsedIndex (protocol.LastUsedIndexNone if no fill has succeeded yet).
func Admissible(partsAmount uint8, lastUsedIndex uint8, secretIndex uint8, cumulative, makingAmount uint64) bool {
	if secretIndex > partsAmount {
		return false
	}
	if lastUsedIndex != protocol.LastUsedIndexNone && secretIndex <= lastUsedIndex {
		return false
	}
	return inBucket(secretIndex, partsAmount, cumulative, makingAmount)
}

// inBucket checks the bucket containment rule of spec.md §4.4: bucket k is
// [k*S/N, (k+1)*S/N) for k < N, and the reserved last bucket B_N = {S} for
// the exact 100% fill.
func inBucket(index, partsAmount uint8, cumulative, makingAmount uint64) bool {
	if index == partsAmount {
		return cumulative == makingAmount
	}

	n := new(big.Int).SetUint64(uint64(partsAmount))
	k := new(big.Int).SetUint64(uint64(index))
	amount := new(big.Int).SetUint64(makingAmount)

	lower := new(big.Int).Quo(new(big.Int).Mul(k, amount), n)
	upper := new(big.Int).Quo(new(big.Int).Mul(new(big.Int).Add(k, big.NewInt(1)), amount), n)

	c := new(big.Int).SetUint64(cumulative)
	return c.Cmp(lower) >= 0 && c.Cmp(upper) < 0
}

// ValidateSingleFill enforces the single-fill-mode rule of spec.md §4.4:
// index must be 0 and the fill must consume the wallet's entire remaining
// balance.
func ValidateSingleFill(secretIndex uint8, makingAmount, walletBalance uint64) bool {
	return secretIndex == 0 && makingAmount == walletBalance
}
