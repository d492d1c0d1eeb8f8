package escrow

import (
	"github.com/crossswap/escrowcore/escrowerrs"
	"github.com/crossswap/escrowcore/protocol"
)

// authorizeWithdraw implements the authorization gate (C7) for withdraw
// transitions: the resolver-exclusive window requires caller == taker, the
// public window admits anyone, and every other stage is simply not a
// withdraw stage at all (spec.md §4.7).
func authorizeWithdraw(stage protocol.Stage, caller, taker Address) error {
	switch stage {
	case protocol.StageResolverExclusiveWithdraw:
		if caller != taker {
			return escrowerrs.Unauthorised("resolver-exclusive withdraw requires caller == taker")
		}
		return nil
	case protocol.StagePublicWithdraw:
		return nil
	default:
		return escrowerrs.NotWithdrawable(stage.String())
	}
}

// authorizeCancel implements the authorization gate for cancel transitions.
// allowPublicCancel is true only for the source side: the destination side
// has no public-cancel stage (spec.md §4.2, §9) because destination cancels
// should never be adversarial — the maker already controls the src-side
// refund path, so there is no incentive to race a dst cancel open to
// anyone.
func authorizeCancel(stage protocol.Stage, caller, taker Address, allowPublicCancel bool) error {
	switch stage {
	case protocol.StageResolverExclusiveCancel:
		if caller != taker {
			return escrowerrs.Unauthorised("resolver-exclusive cancel requires caller == taker")
		}
		return nil
	case protocol.StagePublicCancel:
		if !allowPublicCancel {
			return escrowerrs.NotCancellable(stage.String())
		}
		return nil
	default:
		return escrowerrs.NotCancellable(stage.String())
	}
}
