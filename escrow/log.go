package escrow

import "github.com/btcsuite/btclog"

var log = btclog.Disabled

// UseLogger sets the subsystem logger for the escrow package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
