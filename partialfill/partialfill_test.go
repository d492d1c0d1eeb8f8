package partialfill

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crossswap/escrowcore/protocol"
)

func TestAdmissibleFourPartProgression(t *testing.T) {
	const parts = 4
	const making = 1000

	require.True(t, Admissible(parts, protocol.LastUsedIndexNone, 1, 250, making))
	require.True(t, Admissible(parts, 1, 2, 500, making))
	require.True(t, Admissible(parts, 2, 3, 750, making))
	require.True(t, Admissible(parts, 3, 4, 1000, making))
}

func TestAdmissibleRejectsNonIncreasingIndex(t *testing.T) {
	const parts = 4
	const making = 1000

	require.False(t, Admissible(parts, 2, 2, 750, making))
	require.False(t, Admissible(parts, 2, 1, 750, making))
}

func TestAdmissibleRejectsIndexAboveParts(t *testing.T) {
	require.False(t, Admissible(4, protocol.LastUsedIndexNone, 5, 1000, 1000))
}

func TestAdmissibleRejectsWrongBucket(t *testing.T) {
	// cumulative 500 lands in bucket k=2 ([500,750)), not k=1.
	require.False(t, Admissible(4, protocol.LastUsedIndexNone, 1, 500, 1000))
}

func TestAdmissibleFinalBucketRequiresExactTotal(t *testing.T) {
	require.False(t, Admissible(4, 3, 4, 999, 1000))
	require.True(t, Admissible(4, 3, 4, 1000, 1000))
}

func TestAdmissibleHighIndexDoesNotOverflowWithLargeAmount(t *testing.T) {
	// makingAmount near the uint64 range such that index*makingAmount would
	// wrap a plain uint64 multiply (protocol.MaxPartsAmount * makingAmount
	// exceeds 2^64 here); the bucket math must widen before multiplying.
	const parts = protocol.MaxPartsAmount
	const making = uint64(1) << 62

	k := uint64(200)
	n := uint64(parts)
	// k*(making/n) can fall up to k-1 below bucket k's lower bound
	// floor(k*making/n), so add k to land a point inside bucket k.
	cumulative := k*(making/n) + k

	require.True(t, Admissible(parts, protocol.LastUsedIndexNone, uint8(k), cumulative, making))
	require.False(t, Admissible(parts, protocol.LastUsedIndexNone, uint8(k+1), cumulative, making))
}

func TestValidateSingleFill(t *testing.T) {
	require.True(t, ValidateSingleFill(0, 1000, 1000))
	require.False(t, ValidateSingleFill(1, 1000, 1000))
	require.False(t, ValidateSingleFill(0, 500, 1000))
}
