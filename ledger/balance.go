// Package ledger supplies the two host-environment primitives the
// settlement core consumes without implementing itself (spec.md §6): a
// typed balance with split/merge/withdraw semantics, and a versioned object
// store that serialises concurrent mutation the way a shared on-chain
// object would.
package ledger

import "fmt"

// Balance is a typed quantity of asset T (a source/destination token symbol,
// or the host's native gas asset for safety deposits). It has no copy
// constructor and no public field access: the only way to split value off a
// Balance is Split, and the only way to combine two is Merge, matching the
// no-aliasing discipline spec.md §5 requires of host balance primitives.
type Balance[T comparable] struct {
	asset T
	value uint64
}

// NewBalance creates a Balance of the given asset and value. It is the
// entry point a funding call (e.g. create_wallet) uses to mint the initial
// buffer from host-verified funds.
func NewBalance[T comparable](asset T, value uint64) Balance[T] {
	return Balance[T]{asset: asset, value: value}
}

// Asset returns the balance's asset tag.
func (b *Balance[T]) Asset() T { return b.asset }

// Value returns the balance's current quantity.
func (b *Balance[T]) Value() uint64 { return b.value }

// Split extracts amount from b and returns it as a new Balance of the same
// asset, decrementing b in place. Ownership of the extracted value transfers
// fully to the caller; b never observes the split-off value again.
func (b *Balance[T]) Split(amount uint64) (Balance[T], error) {
	if amount > b.value {
		return Balance[T]{}, fmt.Errorf("ledger: split %d exceeds balance %d", amount, b.value)
	}
	b.value -= amount
	return Balance[T]{asset: b.asset, value: amount}, nil
}

// Merge folds other into b. Merging a zero-valued other is a no-op, and a
// zero-valued b adopts other's asset; otherwise it panics on an asset
// mismatch: merging balances of different assets is a caller bug, not a recoverable
// settlement-core failure, the same way the teacher's wire-format decoders
// panic on buffer invariants that should never be violated by a well-formed
// caller.
func (b *Balance[T]) Merge(other Balance[T]) {
	if other.value == 0 {
		return
	}
	if b.value != 0 && b.asset != other.asset {
		panic(fmt.Sprintf("ledger: merge asset mismatch %v != %v", b.asset, other.asset))
	}
	b.asset = other.asset
	b.value += other.value
}

// WithdrawAll extracts the entirety of b, leaving b at zero value.
func (b *Balance[T]) WithdrawAll() Balance[T] {
	out := Balance[T]{asset: b.asset, value: b.value}
	b.value = 0
	return out
}

// DestroyZero consumes a zero-value Balance. It is an error to destroy a
// Balance that still holds value: the caller must merge or withdraw it
// first.
func DestroyZero[T comparable](b Balance[T]) error {
	if b.value != 0 {
		return fmt.Errorf("ledger: destroy_zero called on non-zero balance (%d)", b.value)
	}
	return nil
}
