// Package escrow implements the Escrow Settlement Core: Wallet lifecycle
// (component C5), source/destination Escrow lifecycle (C6), the
// authorization gate (C7), wired together with the hashlock, timelock,
// auction, and partialfill packages (C1-C4) and emitting through the events
// package (C8). See spec.md §3-§4 for the data model and component design
// this package implements, and SPEC_FULL.md §2 for the package-to-component
// mapping.
package escrow

import (
	"math/big"

	"github.com/crossswap/escrowcore/events"
	"github.com/crossswap/escrowcore/hashlock"
	"github.com/crossswap/escrowcore/ledger"
	"github.com/crossswap/escrowcore/protocol"
	"github.com/crossswap/escrowcore/timelock"
)

// Address is the settlement core's address representation, re-exported from
// the events package so callers don't need to import two packages for one
// opaque identifier type.
type Address = events.Address

// Asset identifies a token by its human-readable symbol. The core never
// interprets an Asset beyond equality comparison — conversion rates,
// decimals, and transport are all host/orchestration concerns (spec.md §1).
type Asset string

// NativeGas is the Asset tag used for safety-deposit balances, which are
// always denominated in the host's native gas asset, separate from the
// swap's maker/taker tokens (spec.md §3, invariant 8).
const NativeGas Asset = "<native-gas>"

// Immutables is the snapshot captured into an Escrow at mint time. Every
// field is a value, never a pointer back into the Wallet that produced it,
// so it can outlive the Wallet's own mutation history unchanged (spec.md
// §3).
type Immutables struct {
	OrderHash           hashlock.Hash
	Hashlock            hashlock.Hash
	Maker               Address
	Taker               Address
	TokenType           Asset
	Amount              uint64
	SafetyDepositAmount uint64
	Timelocks           timelock.Timelocks
}

// Wallet is the order-scoped funding buffer created by create_wallet and
// drained by one or more create_escrow_src calls (spec.md §3).
type Wallet struct {
	OrderHash hashlock.Hash
	Salt      *big.Int
	Maker     Address

	MakerAsset Asset
	TakerAsset Asset

	MakingAmount uint64
	TakingAmount uint64
	DurationMs   uint64

	// Hashlock is keccak(secret) in single-fill mode, or the Merkle root
	// over the ordered leaves keccak(secret_i) in partial-fill mode.
	Hashlock hashlock.Hash

	Timelocks timelock.Timelocks

	SrcSafetyDepositAmount uint64
	DstSafetyDepositAmount uint64

	AllowPartialFills bool
	PartsAmount       uint8
	LastUsedIndex     uint8

	Balance ledger.Balance[Asset]

	CreatedAt uint64
	IsActive  bool
}

// filledAmount returns how much of MakingAmount has already been committed
// to escrows: MakingAmount minus whatever remains in Balance (invariant 2:
// balance only decreases, and only via escrow creation).
func (w *Wallet) filledAmount() uint64 {
	return w.MakingAmount - w.Balance.Value()
}

// singleFillMode and partialFillMode implement the shape rule of spec.md
// §3, invariant 1: a Wallet is in exactly one of these two modes.
func (w *Wallet) singleFillMode() bool {
	return !w.AllowPartialFills && w.PartsAmount == 0
}

func (w *Wallet) partialFillMode() bool {
	return w.AllowPartialFills && w.PartsAmount > 1
}

// EscrowSrc is minted by a resolver against a Wallet on the source chain.
type EscrowSrc struct {
	Immutables    Immutables
	TokenBalance  ledger.Balance[Asset]
	SafetyDeposit ledger.Balance[Asset]
	CreatedAt     uint64
	Status        protocol.Status
}

// EscrowDst is minted directly by a resolver who deposits the destination
// asset; there is no Wallet on the destination side.
type EscrowDst struct {
	Immutables    Immutables
	TokenBalance  ledger.Balance[Asset]
	SafetyDeposit ledger.Balance[Asset]
	CreatedAt     uint64
	Status        protocol.Status
}
