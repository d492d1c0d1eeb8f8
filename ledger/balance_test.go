package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitDecrementsSource(t *testing.T) {
	b := NewBalance("USDC", 1000)

	part, err := b.Split(400)
	require.NoError(t, err)
	require.Equal(t, uint64(400), part.Value())
	require.Equal(t, uint64(600), b.Value())
}

func TestSplitRejectsOverdraw(t *testing.T) {
	b := NewBalance("USDC", 100)

	_, err := b.Split(101)
	require.Error(t, err)
	require.Equal(t, uint64(100), b.Value(), "failed split must not mutate the source")
}

func TestMergeAccumulates(t *testing.T) {
	a := NewBalance("USDC", 100)
	b := NewBalance("USDC", 50)

	a.Merge(b)
	require.Equal(t, uint64(150), a.Value())
}

func TestMergeIntoZeroAdoptsAsset(t *testing.T) {
	var a Balance[string]
	b := NewBalance("USDC", 50)

	a.Merge(b)
	require.Equal(t, uint64(50), a.Value())
	require.Equal(t, "USDC", a.Asset())
}

func TestMergeMismatchedAssetPanics(t *testing.T) {
	a := NewBalance("USDC", 100)
	b := NewBalance("DAI", 50)

	require.Panics(t, func() { a.Merge(b) })
}

func TestMergeZeroValueIsNoop(t *testing.T) {
	a := NewBalance("USDC", 100)
	var zero Balance[string]

	a.Merge(zero)
	require.Equal(t, uint64(100), a.Value())
}

func TestWithdrawAllZeroesSource(t *testing.T) {
	a := NewBalance("USDC", 250)

	out := a.WithdrawAll()
	require.Equal(t, uint64(250), out.Value())
	require.Equal(t, uint64(0), a.Value())
}

func TestDestroyZero(t *testing.T) {
	var zero Balance[string]
	require.NoError(t, DestroyZero(zero))

	nonZero := NewBalance("USDC", 1)
	require.Error(t, DestroyZero(nonZero))
}
