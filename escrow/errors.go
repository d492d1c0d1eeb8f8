package escrow

import "fmt"

func errWrongHashSize(n int) error {
	return fmt.Errorf("expected 32 bytes, got %d", n)
}
