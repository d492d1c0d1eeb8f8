package escrowcfg

import "errors"

var errZeroRescueDelay = errors.New("escrowcfg: rescue delay must be > 0")
