package escrow

import (
	"github.com/crossswap/escrowcore/escrowerrs"
	"github.com/crossswap/escrowcore/events"
	"github.com/crossswap/escrowcore/ledger"
	"github.com/crossswap/escrowcore/protocol"
	"github.com/crossswap/escrowcore/timelock"
)

// CreateEscrowDstRequest bundles the inputs to CreateEscrowDst. Unlike the
// source side there is no Wallet to draw from: the caller funds the escrow
// directly out of their own balance (spec.md §4.6.2).
type CreateEscrowDstRequest struct {
	OrderHash []byte
	Hashlock  []byte

	Maker Address
	Taker Address

	TokenType     Asset
	Amount        ledger.Balance[Asset]
	SafetyDeposit ledger.Balance[Asset]

	Timelocks timelock.Timelocks
}

// CreateEscrowDst validates req and mints a shared EscrowDst on success. It
// is the Go realization of create_escrow_dst (spec.md §4.6.2).
func (c *Core) CreateEscrowDst(req CreateEscrowDstRequest) (ledger.ID, error) {
	orderHash, err := toHash(req.OrderHash)
	if err != nil {
		return 0, escrowerrs.InvalidOrderHash(err.Error())
	}
	hl, err := toHash(req.Hashlock)
	if err != nil {
		return 0, escrowerrs.InvalidHashlock(err.Error())
	}

	if req.Amount.Value() == 0 {
		return 0, escrowerrs.InvalidAmount("amount must be > 0")
	}
	if req.Maker == "" || req.Taker == "" {
		return 0, escrowerrs.InvalidAddress("maker and taker must both be set")
	}
	if req.SafetyDeposit.Value() < c.cfg.MinSafetyDeposit {
		return 0, escrowerrs.SafetyDepositTooLow()
	}
	if err := req.Timelocks.Validate(); err != nil {
		return 0, err
	}

	now := c.now()

	immutables := Immutables{
		OrderHash:           orderHash,
		Hashlock:            hl,
		Maker:               req.Maker,
		Taker:               req.Taker,
		TokenType:           req.TokenType,
		Amount:              req.Amount.Value(),
		SafetyDepositAmount: req.SafetyDeposit.Value(),
		Timelocks:           req.Timelocks,
	}

	escrowObj := EscrowDst{
		Immutables:    immutables,
		TokenBalance:  req.Amount,
		SafetyDeposit: req.SafetyDeposit,
		CreatedAt:     now,
		Status:        protocol.StatusActive,
	}

	id := c.escrowDsts.New(escrowObj)
	c.escrowDsts.Share(id)

	c.sink.EmitEscrowCreated(events.EscrowCreated{
		EscrowID:      uint64(id),
		OrderHash:     orderHash,
		Hashlock:      hl,
		Maker:         req.Maker,
		Taker:         req.Taker,
		Amount:        req.Amount.Value(),
		SafetyDeposit: req.SafetyDeposit.Value(),
		CreatedAt:     now,
		LastUsedIndex: protocol.LastUsedIndexNone,
	})

	log.Debugf("CreateEscrowDst: escrow=%d order=%x amount=%d", id, orderHash, req.Amount.Value())

	return id, nil
}

// WithdrawDst redeems a destination escrow with the revealed secret, paying
// the locked token to the maker (the party owed funds on the destination
// chain) and the safety deposit to whoever executed the transition
// (spec.md §4.6.3).
func (c *Core) WithdrawDst(id ledger.ID, secret []byte, caller Address) error {
	esc, version, err := c.escrowDsts.Borrow(id)
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
	stage := esc.Immutables.Timelocks.DstStage(esc.CreatedAt, now)
	if err := authorizeWithdraw(stage, caller, esc.Immutables.Taker); err != nil {
		return err
	}

	esc.Status = protocol.StatusWithdrawn
	token := esc.TokenBalance.WithdrawAll()
	deposit := esc.SafetyDeposit.WithdrawAll()

	if err := c.escrowDsts.CAS(id, esc, version); err != nil {
		return err
	}

	_ = payout(esc.Immutables.Maker, token)
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

	log.Infof("WithdrawDst: escrow=%d by=%s amount=%d", id, caller, token.Value())

	return nil
}

// CancelDst refunds a destination escrow's token back to the taker (the
// resolver who funded it) once its resolver-exclusive cancel window has
// opened. There is no public-cancel window on the destination side
// (authz.go, spec.md §9), so caller must be the taker.
func (c *Core) CancelDst(id ledger.ID, caller Address) error {
	esc, version, err := c.escrowDsts.Borrow(id)
	if err != nil {
		return err
	}

	if esc.Status != protocol.StatusActive {
		return escrowerrs.AlreadyWithdrawn()
	}

	now := c.now()
	stage := esc.Immutables.Timelocks.DstStage(esc.CreatedAt, now)
	if err := authorizeCancel(stage, caller, esc.Immutables.Taker, false); err != nil {
		return err
	}

	esc.Status = protocol.StatusCancelled
	token := esc.TokenBalance.WithdrawAll()
	deposit := esc.SafetyDeposit.WithdrawAll()

	if err := c.escrowDsts.CAS(id, esc, version); err != nil {
		return err
	}

	_ = payout(esc.Immutables.Taker, token)
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

	log.Infof("CancelDst: escrow=%d by=%s amount=%d", id, caller, token.Value())

	return nil
}

// RescueDst destroys a destination escrow at or past its rescue stage,
// regardless of status, refunding the residual token to the taker (the
// immutables-declared party on the destination side) and the safety
// deposit to whoever executes the rescue (spec.md §4.6.5, §9).
func (c *Core) RescueDst(id ledger.ID, caller Address) error {
	esc, version, err := c.escrowDsts.Borrow(id)
	if err != nil {
		return err
	}

	now := c.now()
	if !timelock.IsRescuable(esc.CreatedAt, esc.Immutables.Timelocks.DstCancellation, c.cfg.RescueDelayMs, now) {
		return escrowerrs.NotWithdrawable("rescue window has not opened")
	}

	token := esc.TokenBalance.WithdrawAll()
	deposit := esc.SafetyDeposit.WithdrawAll()

	if err := c.escrowDsts.Delete(id, version); err != nil {
		return err
	}

	_ = payout(esc.Immutables.Taker, token)
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
		EscrowType: events.EscrowTypeDestination,
	})

	log.Infof("RescueDst: escrow=%d by=%s amount=%d", id, caller, token.Value())

	return nil
}
