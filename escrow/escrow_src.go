package escrow

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/crossswap/escrowcore/auction"
	"github.com/crossswap/escrowcore/escrowerrs"
	"github.com/crossswap/escrowcore/events"
	"github.com/crossswap/escrowcore/hashlock"
	"github.com/crossswap/escrowcore/ledger"
	"github.com/crossswap/escrowcore/partialfill"
	"github.com/crossswap/escrowcore/protocol"
	"github.com/crossswap/escrowcore/timelock"
)

// CreateEscrowSrcRequest bundles the inputs to CreateEscrowSrc.
type CreateEscrowSrcRequest struct {
	WalletID ledger.ID

	// SecretHashlock is the leaf hash for this specific fill (or
	// keccak(secret) directly, for a full single fill).
	SecretHashlock []byte
	SecretIndex    uint8
	MerkleProof    [][]byte

	Taker         Address
	MakingAmount  uint64
	TakingAmount  uint64
	SafetyDeposit ledger.Balance[Asset]
}

// CreateEscrowSrc validates req against the Wallet named by req.WalletID
// and, on success, debits the Wallet and mints a shared EscrowSrc
// (spec.md §4.6.1).
func (c *Core) CreateEscrowSrc(req CreateEscrowSrcRequest) (ledger.ID, error) {
	leafHash, err := toHash(req.SecretHashlock)
	if err != nil {
		return 0, escrowerrs.InvalidHashlock(err.Error())
	}

	if req.MakingAmount == 0 {
		return 0, escrowerrs.InvalidAmount("making_amount must be > 0")
	}
	if req.TakingAmount == 0 {
		return 0, escrowerrs.InvalidAmount("taking_amount must be > 0")
	}
	if req.Taker == "" {
		return 0, escrowerrs.InvalidAddress("taker must be set")
	}

	wallet, version, err := c.wallets.Borrow(req.WalletID)
	if err != nil {
		return 0, err
	}

	if req.SafetyDeposit.Value() < wallet.SrcSafetyDepositAmount {
		return 0, escrowerrs.SafetyDepositTooLow()
	}

	if !wallet.IsActive {
		return 0, escrowerrs.WalletInactive()
	}
	if wallet.Balance.Value() < req.MakingAmount {
		return 0, escrowerrs.InsufficientBalance()
	}

	now := c.now()
	params := auction.Params{
		StartHigh: wallet.MakingAmount,
		EndLow:    wallet.TakingAmount,
		StartTime: wallet.CreatedAt,
		Duration:  wallet.DurationMs,
	}
	expected := params.ExpectedTakingAmount(req.MakingAmount, now)
	if req.TakingAmount < expected {
		return 0, escrowerrs.AuctionViolated()
	}

	proof, err := toHashes(req.MerkleProof)
	if err != nil {
		return 0, escrowerrs.InvalidMerkleProof()
	}

	switch {
	case wallet.partialFillMode():
		cumulative := wallet.filledAmount() + req.MakingAmount
		if !partialfill.Admissible(wallet.PartsAmount, wallet.LastUsedIndex, req.SecretIndex, cumulative, wallet.MakingAmount) {
			return 0, escrowerrs.SecretIndexUsed()
		}
		if !hashlock.Verify(leafHash, proof, wallet.Hashlock) {
			return 0, escrowerrs.InvalidMerkleProof()
		}
		wallet.LastUsedIndex = req.SecretIndex

	case wallet.singleFillMode():
		if len(proof) != 0 {
			return 0, escrowerrs.InvalidMerkleProof()
		}
		if req.SecretIndex != 0 {
			return 0, escrowerrs.SecretIndexUsed()
		}
		if !partialfill.ValidateSingleFill(req.SecretIndex, req.MakingAmount, wallet.Balance.Value()) {
			return 0, escrowerrs.InvalidAmount("single-fill making_amount must equal wallet balance")
		}

	default:
		// Unreachable if CreateWallet's shape validation held, but kept
		// as a defensive guard rather than a silent fallthrough.
		return 0, escrowerrs.InvalidAmount("wallet is in neither single- nor partial-fill mode")
	}

	tokenBalance, err := debitForEscrow(&wallet, req.MakingAmount)
	if err != nil {
		return 0, err
	}

	if err := c.wallets.CAS(req.WalletID, wallet, version); err != nil {
		return 0, err
	}

	immutables := Immutables{
		OrderHash:           wallet.OrderHash,
		Hashlock:            leafHash,
		Maker:               wallet.Maker,
		Taker:               req.Taker,
		TokenType:           wallet.MakerAsset,
		Amount:              req.MakingAmount,
		SafetyDepositAmount: req.SafetyDeposit.Value(),
		Timelocks:           wallet.Timelocks,
	}

	escrowObj := EscrowSrc{
		Immutables:    immutables,
		TokenBalance:  tokenBalance,
		SafetyDeposit: req.SafetyDeposit,
		CreatedAt:     now,
		Status:        protocol.StatusActive,
	}

	id := c.escrowSrcs.New(escrowObj)
	c.escrowSrcs.Share(id)

	c.sink.EmitEscrowCreated(events.EscrowCreated{
		EscrowID:      uint64(id),
		OrderHash:     wallet.OrderHash,
		Hashlock:      leafHash,
		Maker:         wallet.Maker,
		Taker:         req.Taker,
		Amount:        req.MakingAmount,
		SafetyDeposit: req.SafetyDeposit.Value(),
		CreatedAt:     now,
		LastUsedIndex: wallet.LastUsedIndex,
	})

	log.Debugf("CreateEscrowSrc: escrow=%d wallet=%d amount=%d index=%d "+
		"immutables=%v", id, req.WalletID, req.MakingAmount, req.SecretIndex,
		spew.Sdump(immutables))

	return id, nil
}

// WithdrawSrc redeems an EscrowSrc with the revealed secret, paying the
// locked token to the taker and the safety deposit to whoever executed the
// transition (spec.md §4.6.3).
func (c *Core) WithdrawSrc(id ledger.ID, secret []byte, caller Address) error {
	esc, version, err := c.escrowSrcs.Borrow(id)
	if err != nil {
		return err
	}

	if esc.Status != protocol.StatusActive {
		return escrowerrs.AlreadyWithdrawn()
	}

	if err := checkSecret(secret, esc.Immutables.Hashlock); err != nil {
		return err
	}

	now := c.now()
	stage := esc.Immutables.Timelocks.SrcStage(esc.CreatedAt, now)
	if err := authorizeWithdraw(stage, caller, esc.Immutables.Taker); err != nil {
		return err
	}

	// Status is set before balances move so that a replay of this call
	// (however the host might permit it) cannot double-spend within the
	// same logical transition (spec.md §5, §9).
	esc.Status = protocol.StatusWithdrawn
	token := esc.TokenBalance.WithdrawAll()
	deposit := esc.SafetyDeposit.WithdrawAll()

	if err := c.escrowSrcs.CAS(id, esc, version); err != nil {
		return err
	}

	_ = payout(esc.Immutables.Taker, token)
	_ = payout(caller, deposit)

	c.sink.EmitEscrowWithdrawn(events.EscrowWithdrawn{
		EscrowID:    uint64(id),
		OrderHash:   esc.Immutables.OrderHash,
		Hashlock:    esc.Immutables.Hashlock,
		Secret:      append([]byte(nil), secret...),
		WithdrawnBy: caller,
		Maker:       esc.Immutables.Maker,
		Taker:       esc.Immutables.Taker,
		Amount:      token.Value(),
		WithdrawnAt: now,
	})

	log.Infof("WithdrawSrc: escrow=%d by=%s amount=%d", id, caller, token.Value())

	return nil
}

// CancelSrc refunds a source escrow's token to the maker once the
// cancellation window has opened (spec.md §4.6.4).
func (c *Core) CancelSrc(id ledger.ID, caller Address) error {
	esc, version, err := c.escrowSrcs.Borrow(id)
	if err != nil {
		return err
	}

	if esc.Status != protocol.StatusActive {
		return escrowerrs.AlreadyWithdrawn()
	}

	now := c.now()
	stage := esc.Immutables.Timelocks.SrcStage(esc.CreatedAt, now)
	if err := authorizeCancel(stage, caller, esc.Immutables.Taker, true); err != nil {
		return err
	}

	esc.Status = protocol.StatusCancelled
	token := esc.TokenBalance.WithdrawAll()
	deposit := esc.SafetyDeposit.WithdrawAll()

	if err := c.escrowSrcs.CAS(id, esc, version); err != nil {
		return err
	}

	_ = payout(esc.Immutables.Maker, token)
	_ = payout(caller, deposit)

	c.sink.EmitEscrowCancelled(events.EscrowCancelled{
		EscrowID:    uint64(id),
		OrderHash:   esc.Immutables.OrderHash,
		Maker:       esc.Immutables.Maker,
		Taker:       esc.Immutables.Taker,
		CancelledBy: caller,
		Amount:      token.Value(),
		CancelledAt: now,
	})

	log.Infof("CancelSrc: escrow=%d by=%s amount=%d", id, caller, token.Value())

	return nil
}

// RescueSrc destroys a source escrow at or past its rescue stage,
// regardless of status, refunding any residual token to the maker and the
// residual safety deposit to caller (spec.md §4.6.5).
func (c *Core) RescueSrc(id ledger.ID, caller Address) error {
	esc, version, err := c.escrowSrcs.Borrow(id)
	if err != nil {
		return err
	}

	now := c.now()
	if !timelock.IsRescuable(esc.CreatedAt, esc.Immutables.Timelocks.SrcPublicCancellation, c.cfg.RescueDelayMs, now) {
		return escrowerrs.NotWithdrawable("rescue window has not opened")
	}

	token := esc.TokenBalance.WithdrawAll()
	deposit := esc.SafetyDeposit.WithdrawAll()

	if err := c.escrowSrcs.Delete(id, version); err != nil {
		return err
	}

	_ = payout(esc.Immutables.Maker, token)
	_ = payout(caller, deposit)

	c.sink.EmitEscrowRescued(events.EscrowRescued{
		EscrowID:   uint64(id),
		OrderHash:  esc.Immutables.OrderHash,
		Hashlock:   esc.Immutables.Hashlock,
		Maker:      esc.Immutables.Maker,
		Taker:      esc.Immutables.Taker,
		RescuedBy:  caller,
		Amount:     token.Value(),
		RescuedAt:  now,
		EscrowType: events.EscrowTypeSource,
	})

	log.Infof("RescueSrc: escrow=%d by=%s amount=%d", id, caller, token.Value())

	return nil
}

func toHashes(raw [][]byte) ([]hashlock.Hash, error) {
	out := make([]hashlock.Hash, len(raw))
	for i, b := range raw {
		h, err := toHash(b)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

func checkSecret(secret []byte, want hashlock.Hash) error {
	if len(secret) < hashlock.MinSecretLen {
		return escrowerrs.InvalidSecret("secret shorter than 32 bytes")
	}
	if hashlock.Keccak256(secret) != want {
		return escrowerrs.InvalidSecret("secret does not match hashlock")
	}
	return nil
}

// payout models the host's transfer(balance, address) primitive: the
// settlement core's job ends at computing who gets what and how much: the
// actual asset movement across the host's ledger is the host's concern, not
// this module's (spec.md §1, §6). A real host integration replaces this
// with the chain's native transfer call; for tests, it is enough that the
// Balance has already been split off its source object by this point.
func payout(_ Address, _ ledger.Balance[Asset]) error {
	return nil
}
