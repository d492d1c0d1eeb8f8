package escrow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crossswap/escrowcore/escrowerrs"
	"github.com/crossswap/escrowcore/hashlock"
	"github.com/crossswap/escrowcore/ledger"
	"github.com/crossswap/escrowcore/protocol"
)

func baseDstRequest(secret []byte, amount uint64) CreateEscrowDstRequest {
	return CreateEscrowDstRequest{
		OrderHash:     hashBytes(hashlock.Keccak256([]byte("dst-order"))),
		Hashlock:      hashBytes(hashlock.LeafHash(secret)),
		Maker:         "maker-addr",
		Taker:         "resolver-1",
		TokenType:     usdc,
		Amount:        ledger.NewBalance(usdc, amount),
		SafetyDeposit: ledger.NewBalance(NativeGas, 1_000_000),
		Timelocks:     fullTimelocks(),
	}
}

func TestCreateEscrowDstHappyPath(t *testing.T) {
	c, _, rec := newTestCore(0)
	secret := makeSecret(0x11)

	id, err := c.CreateEscrowDst(baseDstRequest(secret, 500_000))
	require.NoError(t, err)
	require.Len(t, rec.EscrowCreated, 1)

	esc, _, err := c.EscrowDstStore().Borrow(id)
	require.NoError(t, err)
	require.Equal(t, protocol.StatusActive, esc.Status)
	require.Equal(t, uint64(500_000), esc.TokenBalance.Value())
}

func TestCreateEscrowDstRejectsLowSafetyDeposit(t *testing.T) {
	c, _, _ := newTestCore(0)
	req := baseDstRequest(makeSecret(0x11), 500_000)
	req.SafetyDeposit = ledger.NewBalance(NativeGas, 1)

	_, err := c.CreateEscrowDst(req)
	require.Error(t, err)
	var asErr *escrowerrs.Error
	require.ErrorAs(t, err, &asErr)
	require.Equal(t, escrowerrs.CodeSafetyDepositTooLow, asErr.Code)
}

func TestCreateEscrowDstRejectsZeroAmount(t *testing.T) {
	c, _, _ := newTestCore(0)
	req := baseDstRequest(makeSecret(0x11), 0)

	_, err := c.CreateEscrowDst(req)
	require.Error(t, err)
}

func TestWithdrawDstPaysMaker(t *testing.T) {
	c, clock, _ := newTestCore(0)
	secret := makeSecret(0x22)

	id, err := c.CreateEscrowDst(baseDstRequest(secret, 500_000))
	require.NoError(t, err)

	tl := fullTimelocks()
	clock.SetMs(tl.DstWithdrawal)

	err = c.WithdrawDst(id, secret, "not-the-taker")
	require.Error(t, err)

	err = c.WithdrawDst(id, secret, "resolver-1")
	require.NoError(t, err)

	esc, _, err := c.EscrowDstStore().Borrow(id)
	require.NoError(t, err)
	require.Equal(t, protocol.StatusWithdrawn, esc.Status)
}

func TestWithdrawDstPublicWindow(t *testing.T) {
	c, clock, _ := newTestCore(0)
	secret := makeSecret(0x33)

	id, err := c.CreateEscrowDst(baseDstRequest(secret, 500_000))
	require.NoError(t, err)

	clock.SetMs(fullTimelocks().DstPublicWithdrawal)
	err = c.WithdrawDst(id, secret, "anyone")
	require.NoError(t, err)
}

func TestCancelDstHasNoPublicWindow(t *testing.T) {
	c, clock, _ := newTestCore(0)
	secret := makeSecret(0x44)

	id, err := c.CreateEscrowDst(baseDstRequest(secret, 500_000))
	require.NoError(t, err)

	tl := fullTimelocks()

	// Resolver-exclusive cancel: only the taker.
	clock.SetMs(tl.DstCancellation)
	err = c.CancelDst(id, "not-the-taker")
	require.Error(t, err)

	// Far beyond cancellation: still resolver-exclusive, never public, so a
	// non-taker caller is still rejected.
	clock.SetMs(tl.DstCancellation + 1_000_000)
	err = c.CancelDst(id, "not-the-taker")
	require.Error(t, err)

	err = c.CancelDst(id, "resolver-1")
	require.NoError(t, err)
}

func TestRescueDstPaysTakerAndDeletesObject(t *testing.T) {
	c, clock, rec := newTestCore(0)
	secret := makeSecret(0x55)

	id, err := c.CreateEscrowDst(baseDstRequest(secret, 500_000))
	require.NoError(t, err)

	tl := fullTimelocks()
	rescueAt := tl.DstCancellation + c.cfg.RescueDelayMs
	clock.SetMs(rescueAt - 1)
	err = c.RescueDst(id, "rescuer")
	require.Error(t, err)

	clock.SetMs(rescueAt)
	err = c.RescueDst(id, "rescuer")
	require.NoError(t, err)

	_, _, err = c.EscrowDstStore().Borrow(id)
	require.ErrorIs(t, err, ledger.ErrNotFound)

	// The residual token goes to the immutables-declared taker, not the
	// (possibly third-party) caller who triggered the rescue; only the
	// safety deposit, the rescue incentive, goes to the caller.
	require.Len(t, rec.EscrowRescued, 1)
	require.Equal(t, Address("resolver-1"), rec.EscrowRescued[0].Taker)
	require.Equal(t, Address("rescuer"), rec.EscrowRescued[0].RescuedBy)
}
