// Package events defines the structured records the settlement core emits
// at each state transition (spec.md §4.8 / §6, component C8) and the Sink
// interface that receives them. Records are copy-only: none of them embed a
// pointer back into a live Wallet or Escrow, so a sink can retain them past
// the transaction that produced them without observing further mutation.
package events

import (
	"math/big"

	"github.com/crossswap/escrowcore/hashlock"
)

// Address is the settlement core's address representation: an opaque,
// chain-native identifier. The core never inspects its structure beyond
// equality, matching §1's treatment of addresses as an external concern.
type Address string

// Timelocks is the flattened seven-offset record carried in WalletCreated.
type Timelocks struct {
	SrcWithdrawal         uint64
	SrcPublicWithdrawal   uint64
	SrcCancellation       uint64
	SrcPublicCancellation uint64
	DstWithdrawal         uint64
	DstPublicWithdrawal   uint64
	DstCancellation       uint64
}

// WalletCreated is emitted once, when create_wallet publishes a new Wallet.
type WalletCreated struct {
	WalletID             uint64
	OrderHash            hashlock.Hash
	Salt                 *big.Int
	Maker                Address
	MakerAsset           string
	TakerAsset           string
	MakingAmount         uint64
	TakingAmount         uint64
	DurationMs           uint64
	Hashlock             hashlock.Hash
	Timelocks            Timelocks
	SrcSafetyDeposit     uint64
	DstSafetyDeposit     uint64
	AllowPartialFills    bool
	PartsAmount          uint8
	CreatedAt            uint64
}

// EscrowCreated is emitted by both create_escrow_src and create_escrow_dst.
type EscrowCreated struct {
	EscrowID      uint64
	OrderHash     hashlock.Hash
	Hashlock      hashlock.Hash
	Maker         Address
	Taker         Address
	Amount        uint64
	SafetyDeposit uint64
	CreatedAt     uint64
	LastUsedIndex uint8
}

// EscrowWithdrawn is emitted by withdraw_src/withdraw_dst. It carries the
// revealed secret: this is the mechanism by which the counterparty chain
// learns the preimage (spec.md §4.6.3).
type EscrowWithdrawn struct {
	EscrowID    uint64
	OrderHash   hashlock.Hash
	Hashlock    hashlock.Hash
	Secret      []byte
	WithdrawnBy Address
	Maker       Address
	Taker       Address
	Amount      uint64
	WithdrawnAt uint64
}

// EscrowCancelled is emitted by cancel_src/cancel_dst.
type EscrowCancelled struct {
	EscrowID    uint64
	OrderHash   hashlock.Hash
	Maker       Address
	Taker       Address
	CancelledBy Address
	Amount      uint64
	CancelledAt uint64
}

// WalletRescued is emitted by rescue_wallet.
type WalletRescued struct {
	WalletID  uint64
	OrderHash hashlock.Hash
	Maker     Address
	RescuedBy Address
	Amount    uint64
	RescuedAt uint64
}

// EscrowType distinguishes which side of the swap an EscrowRescued record
// describes.
type EscrowType string

const (
	EscrowTypeSource      EscrowType = "source"
	EscrowTypeDestination EscrowType = "destination"
)

// EscrowRescued is emitted by rescue_src/rescue_dst.
type EscrowRescued struct {
	EscrowID   uint64
	OrderHash  hashlock.Hash
	Hashlock   hashlock.Hash
	Maker      Address
	Taker      Address
	RescuedBy  Address
	Amount     uint64
	RescuedAt  uint64
	EscrowType EscrowType
}

// Sink is the event emission surface the settlement core writes to. It is
// the sole channel by which off-chain orchestration observes progress
// (spec.md §4.8); the core never emits on a failed operation.
type Sink interface {
	EmitWalletCreated(WalletCreated)
	EmitEscrowCreated(EscrowCreated)
	EmitEscrowWithdrawn(EscrowWithdrawn)
	EmitEscrowCancelled(EscrowCancelled)
	EmitWalletRescued(WalletRescued)
	EmitEscrowRescued(EscrowRescued)
}
