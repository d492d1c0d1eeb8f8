package escrow

import (
	"github.com/crossswap/escrowcore/chainclock"
	"github.com/crossswap/escrowcore/escrowcfg"
	"github.com/crossswap/escrowcore/events"
	"github.com/crossswap/escrowcore/ledger"
)

// Core wires the settlement engine's components (C1-C8) against one set of
// object stores, a clock, a config, and an event sink. It has no background
// goroutines: every method runs to completion synchronously, the Go
// realization of spec.md §5's "each operation is a transaction executed
// atomically" model.
type Core struct {
	wallets    *ledger.Store[Wallet]
	escrowSrcs *ledger.Store[EscrowSrc]
	escrowDsts *ledger.Store[EscrowDst]

	clock chainclock.Clock
	sink  events.Sink
	cfg   *escrowcfg.Config
}

// New constructs a Core. A nil sink is replaced with a fresh in-memory
// events.Recorder so callers that don't care about events don't have to
// supply one; a nil
// clock defaults to chainclock.Default{}; a nil cfg defaults to the
// protocol's normative constants.
func New(clock chainclock.Clock, sink events.Sink, cfg *escrowcfg.Config) *Core {
	if clock == nil {
		clock = chainclock.Default{}
	}
	if sink == nil {
		sink = events.NewRecorder()
	}
	if cfg == nil {
		cfg = escrowcfg.Default()
	}

	return &Core{
		wallets:    ledger.NewStore[Wallet](),
		escrowSrcs: ledger.NewStore[EscrowSrc](),
		escrowDsts: ledger.NewStore[EscrowDst](),
		clock:      clock,
		sink:       sink,
		cfg:        cfg,
	}
}

// WalletStore exposes the underlying Wallet object store for callers that
// need to Borrow a Wallet directly (e.g. to inspect Balance or
// LastUsedIndex between calls). The escrow lifecycle methods are the only
// sanctioned way to mutate it.
func (c *Core) WalletStore() *ledger.Store[Wallet] { return c.wallets }

// EscrowSrcStore exposes the underlying EscrowSrc object store.
func (c *Core) EscrowSrcStore() *ledger.Store[EscrowSrc] { return c.escrowSrcs }

// EscrowDstStore exposes the underlying EscrowDst object store.
func (c *Core) EscrowDstStore() *ledger.Store[EscrowDst] { return c.escrowDsts }

// now is a small convenience wrapper so call sites read like the spec's own
// "now = host_clock_ms()".
func (c *Core) now() uint64 { return c.clock.NowMs() }
