package events

import "github.com/btcsuite/btclog"

// log is the package-level subsystem logger, following the same
// disabled-by-default / UseLogger wiring convention used throughout the
// teacher daemon's subsystems (htlcswitch, tor, healthcheck).
var log = btclog.Disabled

// UseLogger sets the subsystem logger for the events package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
