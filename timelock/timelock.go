// Package timelock validates the seven relative offsets that govern an
// order's staged withdraw/cancel windows and derives the current stage from
// an object's created_at timestamp and the host clock (spec.md §4.2,
// component C2).
package timelock

import (
	"github.com/crossswap/escrowcore/escrowerrs"
	"github.com/crossswap/escrowcore/protocol"
)

// Timelocks holds the seven offsets, in milliseconds relative to an object's
// created_at, that govern its staged lifecycle.
type Timelocks struct {
	SrcWithdrawal       uint64
	SrcPublicWithdrawal uint64
	SrcCancellation     uint64
	SrcPublicCancellation uint64
	DstWithdrawal       uint64
	DstPublicWithdrawal uint64
	DstCancellation     uint64
}

// Validate rejects any structure violating the monotonicity and cross-chain
// ordering rules of spec.md §4.2.
func (t Timelocks) Validate() error {
	offsets := []uint64{
		t.SrcWithdrawal, t.SrcPublicWithdrawal, t.SrcCancellation,
		t.SrcPublicCancellation, t.DstWithdrawal, t.DstPublicWithdrawal,
		t.DstCancellation,
	}
	for _, o := range offsets {
		if o == 0 {
			return escrowerrs.InvalidTimelock("all offsets must be > 0")
		}
	}

	if !(t.SrcWithdrawal < t.SrcPublicWithdrawal &&
		t.SrcPublicWithdrawal < t.SrcCancellation &&
		t.SrcCancellation < t.SrcPublicCancellation) {
		return escrowerrs.InvalidTimelock("source offsets not strictly increasing")
	}

	if !(t.DstWithdrawal < t.DstPublicWithdrawal &&
		t.DstPublicWithdrawal < t.DstCancellation) {
		return escrowerrs.InvalidTimelock("destination offsets not strictly increasing")
	}

	if t.DstWithdrawal >= t.SrcWithdrawal {
		return escrowerrs.InvalidTimelock("dst withdrawal must precede src withdrawal")
	}
	if t.DstPublicWithdrawal >= t.SrcPublicWithdrawal {
		return escrowerrs.InvalidTimelock("dst public withdrawal must precede src public withdrawal")
	}
	if t.DstCancellation >= t.SrcCancellation {
		return escrowerrs.InvalidTimelock("dst cancellation must precede src cancellation")
	}

	return nil
}

// SrcStage derives the current source-side stage from an object's
// created_at and the host clock's current reading.
func (t Timelocks) SrcStage(createdAt, nowMs uint64) protocol.Stage {
	elapsed := saturatingSub(nowMs, createdAt)

	switch {
	case elapsed < t.SrcWithdrawal:
		return protocol.StageFinalityLock
	case elapsed < t.SrcPublicWithdrawal:
		return protocol.StageResolverExclusiveWithdraw
	case elapsed < t.SrcCancellation:
		return protocol.StagePublicWithdraw
	case elapsed < t.SrcPublicCancellation:
		return protocol.StageResolverExclusiveCancel
	default:
		return protocol.StagePublicCancel
	}
}

// DstStage derives the current destination-side stage. There is no public
// cancel window on the destination side: destination cancels should never
// be adversarial, since the maker already controls the src-side refund path
// and a dst cancel only refunds the taker who funded the escrow. This
// asymmetry is intentional (spec.md §9).
func (t Timelocks) DstStage(createdAt, nowMs uint64) protocol.Stage {
	elapsed := saturatingSub(nowMs, createdAt)

	switch {
	case elapsed < t.DstWithdrawal:
		return protocol.StageFinalityLock
	case elapsed < t.DstPublicWithdrawal:
		return protocol.StageResolverExclusiveWithdraw
	case elapsed < t.DstCancellation:
		return protocol.StagePublicWithdraw
	default:
		return protocol.StageResolverExclusiveCancel
	}
}

// RescueStage returns the millisecond timestamp at or after which an
// object's rescue path becomes reachable, regardless of its status. lastCancelOffset
// is SrcPublicCancellation for a source object and DstCancellation for a
// destination object — its own last line of defense before rescue.
func RescueStage(createdAt, lastCancelOffset, rescueDelayMs uint64) uint64 {
	return createdAt + lastCancelOffset + rescueDelayMs
}

// IsRescuable reports whether nowMs has reached an object's rescue stage.
func IsRescuable(createdAt, lastCancelOffset, rescueDelayMs, nowMs uint64) bool {
	return nowMs >= RescueStage(createdAt, lastCancelOffset, rescueDelayMs)
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
