package escrow

import (
	"math/big"

	"github.com/crossswap/escrowcore/escrowerrs"
	"github.com/crossswap/escrowcore/events"
	"github.com/crossswap/escrowcore/hashlock"
	"github.com/crossswap/escrowcore/ledger"
	"github.com/crossswap/escrowcore/protocol"
	"github.com/crossswap/escrowcore/timelock"
)

// CreateWalletRequest bundles the inputs to CreateWallet. OrderHash and
// Hashlock are raw byte slices — not the internal hashlock.Hash type — so
// the size checks spec.md §4.5 requires (exactly 32 bytes) happen at the
// API boundary rather than being silently guaranteed away by the type
// system.
type CreateWalletRequest struct {
	OrderHash  []byte
	Salt       *big.Int
	Maker      Address
	MakerAsset Asset
	TakerAsset Asset

	MakingAmount uint64
	TakingAmount uint64
	DurationMs   uint64

	Hashlock []byte

	SrcSafetyDepositAmount uint64
	DstSafetyDepositAmount uint64

	AllowPartialFills bool
	PartsAmount       uint8

	Timelocks timelock.Timelocks

	// Funding is the maker's funding balance, split off by the caller
	// from their own on-chain balance before this call. Its value must
	// equal MakingAmount exactly (spec.md §3, invariant 2).
	Funding ledger.Balance[Asset]
}

// CreateWallet validates req and, on success, publishes a new shared
// Wallet, returning its object ID. It is the Go realization of
// create_wallet (spec.md §4.5).
func (c *Core) CreateWallet(req CreateWalletRequest) (ledger.ID, error) {
	orderHash, err := toHash(req.OrderHash)
	if err != nil {
		return 0, escrowerrs.InvalidOrderHash(err.Error())
	}

	hl, err := toHash(req.Hashlock)
	if err != nil {
		return 0, escrowerrs.InvalidHashlock(err.Error())
	}

	if req.MakingAmount == 0 {
		return 0, escrowerrs.InvalidAmount("making_amount must be > 0")
	}
	if req.TakingAmount == 0 {
		return 0, escrowerrs.InvalidAmount("taking_amount must be > 0")
	}
	if req.DurationMs == 0 {
		return 0, escrowerrs.InvalidAmount("duration must be > 0")
	}
	if req.Funding.Value() != req.MakingAmount {
		return 0, escrowerrs.InvalidAmount("funding balance must equal making_amount")
	}
	if req.Maker == "" {
		return 0, escrowerrs.InvalidAddress("maker must be set")
	}

	if err := req.Timelocks.Validate(); err != nil {
		return 0, err
	}

	// Partial-fill shape rule (spec.md §3, invariant 1): a Wallet is
	// either single-fill (flag unset, parts_amount == 0) or partial-fill
	// (flag set, parts_amount > 1). No other combination is legal.
	switch {
	case !req.AllowPartialFills && req.PartsAmount != 0:
		return 0, escrowerrs.InvalidAmount("parts_amount must be 0 when partial fills are disabled")
	case req.AllowPartialFills && req.PartsAmount <= 1:
		return 0, escrowerrs.InvalidAmount("parts_amount must be > 1 when partial fills are enabled")
	case req.AllowPartialFills && req.PartsAmount > protocol.MaxPartsAmount:
		return 0, escrowerrs.InvalidAmount("parts_amount exceeds the maximum")
	}

	now := c.now()

	wallet := Wallet{
		OrderHash:              orderHash,
		Salt:                   req.Salt,
		Maker:                  req.Maker,
		MakerAsset:             req.MakerAsset,
		TakerAsset:             req.TakerAsset,
		MakingAmount:           req.MakingAmount,
		TakingAmount:           req.TakingAmount,
		DurationMs:             req.DurationMs,
		Hashlock:               hl,
		Timelocks:              req.Timelocks,
		SrcSafetyDepositAmount: req.SrcSafetyDepositAmount,
		DstSafetyDepositAmount: req.DstSafetyDepositAmount,
		AllowPartialFills:      req.AllowPartialFills,
		PartsAmount:            req.PartsAmount,
		LastUsedIndex:          protocol.LastUsedIndexNone,
		Balance:                req.Funding,
		CreatedAt:              now,
		IsActive:               true,
	}

	id := c.wallets.New(wallet)
	c.wallets.Share(id)

	c.sink.EmitWalletCreated(events.WalletCreated{
		WalletID:          uint64(id),
		OrderHash:         orderHash,
		Salt:              req.Salt,
		Maker:             req.Maker,
		MakerAsset:        string(req.MakerAsset),
		TakerAsset:        string(req.TakerAsset),
		MakingAmount:      req.MakingAmount,
		TakingAmount:      req.TakingAmount,
		DurationMs:        req.DurationMs,
		Hashlock:          hl,
		Timelocks:         flattenTimelocks(req.Timelocks),
		SrcSafetyDeposit:  req.SrcSafetyDepositAmount,
		DstSafetyDeposit:  req.DstSafetyDepositAmount,
		AllowPartialFills: req.AllowPartialFills,
		PartsAmount:       req.PartsAmount,
		CreatedAt:         now,
	})

	log.Debugf("CreateWallet: wallet=%d order=%x making=%d taking=%d "+
		"duration=%dms partial=%v parts=%d", id, orderHash,
		req.MakingAmount, req.TakingAmount, req.DurationMs,
		req.AllowPartialFills, req.PartsAmount)

	return id, nil
}

// debitForEscrow splits amount off wallet's balance if it is active and
// funded enough. It is internal to C6: there is no public DebitForEscrow
// operation, only create_escrow_src calling into it under the hood
// (spec.md §4.5).
func debitForEscrow(wallet *Wallet, amount uint64) (ledger.Balance[Asset], error) {
	if !wallet.IsActive {
		return ledger.Balance[Asset]{}, escrowerrs.WalletInactive()
	}
	if wallet.Balance.Value() < amount {
		return ledger.Balance[Asset]{}, escrowerrs.InsufficientBalance()
	}
	return wallet.Balance.Split(amount)
}

// RescueWallet transfers a Wallet's residual balance to its maker and
// destroys the object, regardless of prior state, once the rescue window
// has opened. lastCancelOffset is the Wallet's own SrcPublicCancellation
// offset: a Wallet's rescue window tracks the source side's final
// cancellation deadline, since a Wallet only ever funds source-side
// escrows.
func (c *Core) RescueWallet(id ledger.ID, caller Address) error {
	wallet, version, err := c.wallets.Borrow(id)
	if err != nil {
		return err
	}

	rescueAt := timelock.RescueStage(wallet.CreatedAt, wallet.Timelocks.SrcPublicCancellation, c.cfg.RescueDelayMs)
	now := c.now()
	if now < rescueAt {
		return escrowerrs.NotWithdrawable("rescue window has not opened")
	}

	residual := wallet.Balance.WithdrawAll()

	if err := c.wallets.Delete(id, version); err != nil {
		return err
	}

	_ = payout(wallet.Maker, residual)

	c.sink.EmitWalletRescued(events.WalletRescued{
		WalletID:  uint64(id),
		OrderHash: wallet.OrderHash,
		Maker:     wallet.Maker,
		RescuedBy: caller,
		Amount:    residual.Value(),
		RescuedAt: now,
	})

	log.Infof("RescueWallet: wallet=%d by=%s amount=%d", id, caller, residual.Value())

	return nil
}

func toHash(b []byte) (hashlock.Hash, error) {
	var h hashlock.Hash
	if len(b) != hashlock.Size {
		return h, errWrongHashSize(len(b))
	}
	copy(h[:], b)
	return h, nil
}

func flattenTimelocks(t timelock.Timelocks) events.Timelocks {
	return events.Timelocks{
		SrcWithdrawal:         t.SrcWithdrawal,
		SrcPublicWithdrawal:   t.SrcPublicWithdrawal,
		SrcCancellation:       t.SrcCancellation,
		SrcPublicCancellation: t.SrcPublicCancellation,
		DstWithdrawal:         t.DstWithdrawal,
		DstPublicWithdrawal:   t.DstPublicWithdrawal,
		DstCancellation:       t.DstCancellation,
	}
}
