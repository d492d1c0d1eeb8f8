package hashlock

import "errors"

var errIndexRange = errors.New("hashlock: leaf index out of range")
