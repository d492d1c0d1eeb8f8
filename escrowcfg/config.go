// Package escrowcfg exposes the settlement core's tunable constants as an
// overridable options struct, parsed with go-flags the way the teacher's
// cmd/lncli parses its subcommand flags. The settlement core itself never
// reads package-level global state for these values — escrow.New takes a
// *Config explicitly and falls back to Default() when given nil — so a demo
// harness or test binary can run the core against non-default constants
// without recompiling it.
package escrowcfg

import "github.com/crossswap/escrowcore/protocol"

// Config holds the protocol constants a demo harness may override. The
// zero value is invalid; use Default() to get the spec's normative values.
type Config struct {
	MinSafetyDeposit uint64 `long:"min-safety-deposit" description:"minimum safety deposit, in native-asset base units, create_escrow_dst will accept"`
	RescueDelayMs    uint64 `long:"rescue-delay-ms" description:"delay in milliseconds, added after an object's last cancellation offset, before its rescue path opens"`
}

// Default returns the protocol's normative constants (spec.md §6).
func Default() *Config {
	return &Config{
		MinSafetyDeposit: protocol.MinSafetyDeposit,
		RescueDelayMs:    protocol.RescueDelayMs,
	}
}

// Validate rejects a Config with a zero rescue delay: a zero delay would
// make every terminal escrow immediately rescuable, collapsing the refund
// safety cascade the staged timelocks exist to guarantee.
func (c *Config) Validate() error {
	if c.RescueDelayMs == 0 {
		return errZeroRescueDelay
	}
	return nil
}
