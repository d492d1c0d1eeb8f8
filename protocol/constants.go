// Package protocol holds the normative constants and status/stage codes of
// the settlement core (spec.md §6). They are collected in one leaf package
// so every other package — and escrowcfg's overridable demo configuration —
// depends on a single source of truth instead of re-declaring magic numbers.
package protocol

// MinSafetyDeposit is the minimum safety deposit, in native-asset base
// units, create_escrow_dst enforces.
const MinSafetyDeposit = 1_000_000

// RescueDelayMs is the delay, in milliseconds, added after an object's last
// cancellation offset before its rescue path becomes reachable.
const RescueDelayMs = 36_000_000

// MaxPartsAmount is the largest legal value of parts_amount. It must stay
// below the sentinel value LastUsedIndexNone so that every legal index fits
// in the u8 domain alongside the sentinel.
const MaxPartsAmount = 254

// LastUsedIndexNone is the sentinel last_used_index value meaning "this
// Wallet has never completed a partial fill". It encodes "never used" for a
// u8-valued index whose legal range is [0, parts_amount]; a reimplementation
// targeting a wider index domain should use a tagged Option instead of
// overloading a sentinel (spec.md §9).
const LastUsedIndexNone uint8 = 255

// Status is the lifecycle state of an EscrowSrc or EscrowDst.
type Status uint8

const (
	StatusActive Status = iota
	StatusWithdrawn
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusWithdrawn:
		return "Withdrawn"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Stage is a discrete window in an object's lifetime, derived from its
// created_at timestamp, the current clock, and its timelock offsets.
type Stage uint8

const (
	StageFinalityLock Stage = iota
	StageResolverExclusiveWithdraw
	StagePublicWithdraw
	StageResolverExclusiveCancel
	StagePublicCancel
	StageRescue
)

func (s Stage) String() string {
	switch s {
	case StageFinalityLock:
		return "FinalityLock"
	case StageResolverExclusiveWithdraw:
		return "ResolverExclusiveWithdraw"
	case StagePublicWithdraw:
		return "PublicWithdraw"
	case StageResolverExclusiveCancel:
		return "ResolverExclusiveCancel"
	case StagePublicCancel:
		return "PublicCancel"
	case StageRescue:
		return "Rescue"
	default:
		return "Unknown"
	}
}
